package questionbank

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_QUESTIONS          = "questions"
	COLLECTION_NAME_QUESTION_TEMPLATES = "questionTemplates"
	COLLECTION_NAME_SURVEYS            = "surveys"
)

type QuestionBankDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	InstanceIDs  []string
}

func NewQuestionBankDBService(configs db.DBConfig) (*QuestionBankDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	qbDBSc := &QuestionBankDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		InstanceIDs:  configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		qbDBSc.ensureIndexes()
	}

	return qbDBSc, nil
}

func (dbService *QuestionBankDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_questionBankDB"
}

func (dbService *QuestionBankDBService) collectionQuestions(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_QUESTIONS)
}

func (dbService *QuestionBankDBService) collectionQuestionTemplates(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_QUESTION_TEMPLATES)
}

func (dbService *QuestionBankDBService) collectionSurveys(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_SURVEYS)
}

func (dbService *QuestionBankDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *QuestionBankDBService) ensureIndexes() {
	slog.Debug("Ensuring indexes for question bank DB")
	for _, instanceID := range dbService.InstanceIDs {
		dbService.CreateDefaultIndexesForQuestionsCollection(instanceID)
		dbService.CreateDefaultIndexesForQuestionTemplatesCollection(instanceID)
		dbService.CreateDefaultIndexesForSurveysCollection(instanceID)
	}
}
