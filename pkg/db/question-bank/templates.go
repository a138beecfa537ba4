package questionbank

import (
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

var indexesForQuestionTemplatesCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("name_1"),
	},
}

func (dbService *QuestionBankDBService) CreateDefaultIndexesForQuestionTemplatesCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionQuestionTemplates(instanceID).Indexes().CreateMany(ctx, indexesForQuestionTemplatesCollection)
	if err != nil {
		slog.Error("Error creating index for questionTemplates", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
	}
}

func (dbService *QuestionBankDBService) SaveQuestionTemplate(instanceID string, template *questionTypes.QuestionTemplate) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	template.CreatedAt = time.Now()
	_, err := dbService.collectionQuestionTemplates(instanceID).InsertOne(ctx, template)
	return err
}

func (dbService *QuestionBankDBService) GetQuestionTemplates(instanceID string) (templates []questionTypes.QuestionTemplate, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	sortByCreatedAt := bson.D{
		primitive.E{Key: "createdAt", Value: -1},
	}

	cursor, err := dbService.collectionQuestionTemplates(instanceID).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(sortByCreatedAt),
	)
	if err != nil {
		return templates, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (dbService *QuestionBankDBService) DeleteQuestionTemplate(instanceID string, templateID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionQuestionTemplates(instanceID).DeleteOne(ctx, bson.M{"_id": templateID})
	return err
}
