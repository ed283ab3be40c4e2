package auth

import (
	"context"
	"errors"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userMongoRepository struct {
	collection *mongo.Collection
}

func NewUserMongoRepository(client *mongo.Client, dbName string) contracts.UserRepository {
	return &userMongoRepository{
		collection: client.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return user.ID, nil
}

func (r *userMongoRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

// findOne maps a missing document to nil, nil; absence is not a storage
// failure and callers decide what it means.
func (r *userMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	user := new(models.User)
	err := r.collection.FindOne(ctx, filter).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return user, nil
}
