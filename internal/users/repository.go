package users

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/devfolio/backend/go-services/internal/models"
)

// UserRepository defines persistence operations for admin accounts
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpsertByUsername(ctx context.Context, u *models.User) (*models.User, error)
}

// MongoUserRepository implements UserRepository using MongoDB
type MongoUserRepository struct {
	col *mongo.Collection
}

// NewMongoUserRepository creates a new repository for the given collection
func NewMongoUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

func (r *MongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// UpsertByUsername creates or replaces the credential for a username.
// Ids are stored as hex strings so the model decodes without a custom codec.
func (r *MongoUserRepository) UpsertByUsername(ctx context.Context, u *models.User) (*models.User, error) {
	now := time.Now().UTC()
	filter := bson.M{"username": u.Username}
	update := bson.M{
		"$set": bson.M{
			"password":  u.PasswordHash,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"username":  u.Username,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated models.User
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
