package repository

import (
	"context"
	"errors"
	"fmt"

	"topildim/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	PushToBucket(ctx context.Context, id, productID primitive.ObjectID) ([]primitive.ObjectID, error)
	PullFromBucket(ctx context.Context, id, productID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

// Create inserts a new user. The unique index on email turns concurrent
// duplicate registrations into ErrUserAlreadyExists.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.Bucket == nil {
		user.Bucket = []primitive.ObjectID{}
	}

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByEmail retrieves a user by exact, case-sensitive email match
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return user, nil
}

// FindByID retrieves a user by ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user := &domain.User{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return user, nil
}

// PushToBucket appends a product reference to the user's bucket in a single
// atomic update (no read-modify-write) and returns the updated bucket.
// Duplicates are allowed.
func (r *userRepository) PushToBucket(ctx context.Context, id, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return r.updateBucket(ctx, id, bson.M{"$push": bson.M{"bucket": productID}})
}

// PullFromBucket removes every occurrence of the product reference from the
// user's bucket atomically and returns the updated bucket.
func (r *userRepository) PullFromBucket(ctx context.Context, id, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return r.updateBucket(ctx, id, bson.M{"$pull": bson.M{"bucket": productID}})
}

func (r *userRepository) updateBucket(ctx context.Context, id primitive.ObjectID, update bson.M) ([]primitive.ObjectID, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	user := &domain.User{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update bucket: %w", err)
	}

	if user.Bucket == nil {
		user.Bucket = []primitive.ObjectID{}
	}
	return user.Bucket, nil
}
