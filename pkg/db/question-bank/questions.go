package questionbank

import (
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

var indexesForQuestionsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "createdBy", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("createdBy_1_createdAt_-1"),
	},
	{
		Keys: bson.D{
			{Key: "versions.categoryTags", Value: 1},
		},
		Options: options.Index().SetName("versions.categoryTags_1"),
	},
}

func (dbService *QuestionBankDBService) CreateDefaultIndexesForQuestionsCollection(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionQuestions(instanceID).Indexes().CreateMany(ctx, indexesForQuestionsCollection)
	if err != nil {
		slog.Error("Error creating index for questions", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
	}
}

// CreateQuestion inserts a new question aggregate and sets its assigned id.
func (dbService *QuestionBankDBService) CreateQuestion(instanceID string, question *questionTypes.Question) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionQuestions(instanceID).InsertOne(ctx, question)
	if err != nil {
		return err
	}
	question.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *QuestionBankDBService) GetQuestionByID(instanceID string, questionID string) (question questionTypes.Question, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return question, questionTypes.ErrNotFound
	}

	err = dbService.collectionQuestions(instanceID).FindOne(ctx, bson.M{"_id": _id}).Decode(&question)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return question, questionTypes.ErrNotFound
		}
		return question, err
	}
	return question, nil
}

// AppendQuestionVersion pushes the new version and advances the current
// version pointer in one conditional write. The filter requires the
// previously observed currentVersion, so a concurrent writer that got there
// first makes this call report no match instead of silently losing their
// version.
func (dbService *QuestionBankDBService) AppendQuestionVersion(
	instanceID string,
	questionID string,
	observedVersion int,
	newVersion questionTypes.QuestionVersion,
) (matched bool, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return false, questionTypes.ErrNotFound
	}

	res, err := dbService.collectionQuestions(instanceID).UpdateOne(
		ctx,
		bson.M{
			"_id":            _id,
			"currentVersion": observedVersion,
		},
		bson.M{
			"$push": bson.M{"versions": newVersion},
			"$set":  bson.M{"currentVersion": newVersion.Version},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// DeleteQuestion removes the whole aggregate. Deleting a non-existent id is
// not an error.
func (dbService *QuestionBankDBService) DeleteQuestion(instanceID string, questionID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return nil
	}

	_, err = dbService.collectionQuestions(instanceID).DeleteOne(ctx, bson.M{"_id": _id})
	return err
}

// GetQuestionsByIDs fetches the aggregates for the given ids. Missing ids
// are silently omitted from the result.
func (dbService *QuestionBankDBService) GetQuestionsByIDs(instanceID string, questionIDs []string) (questions []questionTypes.Question, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objIDs := make([]primitive.ObjectID, 0, len(questionIDs))
	for _, id := range questionIDs {
		_id, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			// malformed ids behave like missing ones
			continue
		}
		objIDs = append(objIDs, _id)
	}

	cursor, err := dbService.collectionQuestions(instanceID).Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return questions, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
