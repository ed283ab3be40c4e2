package submissions

import (
	"context"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type journalMongoRepository struct {
	collection *mongo.Collection
}

func NewJournalMongoRepository(client *mongo.Client, dbName string) contracts.JournalRepository {
	return &journalMongoRepository{
		collection: client.Database(dbName).Collection(constvars.MongoCollectionJournal),
	}
}

func (r *journalMongoRepository) CreateEntry(ctx context.Context, entry *models.SubmissionJournalEntry) error {
	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *journalMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.SubmissionJournalEntry, error) {
	filter := bson.M{"patientId": patientID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	entries := []models.SubmissionJournalEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}
