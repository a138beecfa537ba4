package questionbank

import (
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

var indexesForSurveysCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "published", Value: -1},
		},
		Options: options.Index().SetName("published_-1"),
	},
	{
		Keys: bson.D{
			{Key: "unpublished", Value: 1},
		},
		Options: options.Index().SetName("unpublished_1"),
	},
}

func (dbService *QuestionBankDBService) CreateDefaultIndexesForSurveysCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionSurveys(instanceID).Indexes().CreateMany(ctx, indexesForSurveysCollection)
	if err != nil {
		slog.Error("Error creating index for surveys", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
	}
}

func (dbService *QuestionBankDBService) CreateSurvey(instanceID string, survey *questionTypes.Survey) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionSurveys(instanceID).InsertOne(ctx, survey)
	if err != nil {
		return err
	}
	survey.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *QuestionBankDBService) GetSurveyByID(instanceID string, surveyID string) (survey questionTypes.Survey, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return survey, questionTypes.ErrNotFound
	}

	err = dbService.collectionSurveys(instanceID).FindOne(ctx, bson.M{"_id": _id}).Decode(&survey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return survey, questionTypes.ErrNotFound
		}
		return survey, err
	}
	return survey, nil
}

func (dbService *QuestionBankDBService) GetSurveys(instanceID string, includeUnpublished bool) (surveys []questionTypes.Survey, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{}
	if !includeUnpublished {
		filter["published"] = bson.M{"$gt": 0}
		filter["unpublished"] = 0
	}

	sortByUpdatedAt := bson.D{
		primitive.E{Key: "updatedAt", Value: -1},
	}

	cursor, err := dbService.collectionSurveys(instanceID).Find(
		ctx,
		filter,
		options.Find().SetSort(sortByUpdatedAt),
	)
	if err != nil {
		return surveys, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// ReplaceSurvey overwrites the stored survey document with the given one.
func (dbService *QuestionBankDBService) ReplaceSurvey(instanceID string, survey *questionTypes.Survey) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	survey.UpdatedAt = time.Now()
	res, err := dbService.collectionSurveys(instanceID).ReplaceOne(ctx, bson.M{"_id": survey.ID}, survey)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return questionTypes.ErrNotFound
	}
	return nil
}

func (dbService *QuestionBankDBService) DeleteSurvey(instanceID string, surveyID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return nil
	}

	_, err = dbService.collectionSurveys(instanceID).DeleteOne(ctx, bson.M{"_id": _id})
	return err
}
