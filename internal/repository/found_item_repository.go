package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"topildim/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrFoundItemNotFound = errors.New("found item not found")
)

// FoundItemRepository defines the interface for found item data access
type FoundItemRepository interface {
	Create(ctx context.Context, item *domain.FoundItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.FoundItem, error)
	List(ctx context.Context, q ListQuery) ([]*domain.FoundItem, *Pagination, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.FoundItemPatch) (*domain.FoundItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type foundItemRepository struct {
	coll *mongo.Collection
}

// NewFoundItemRepository creates a new instance of FoundItemRepository
func NewFoundItemRepository(db *mongo.Database) FoundItemRepository {
	return &foundItemRepository{coll: db.Collection("topilganlar")}
}

// Create inserts a new found item
func (r *foundItemRepository) Create(ctx context.Context, item *domain.FoundItem) error {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create found item: %w", err)
	}

	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID retrieves a found item by ID
func (r *foundItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.FoundItem, error) {
	item := &domain.FoundItem{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFoundItemNotFound
		}
		return nil, fmt.Errorf("failed to find found item by ID: %w", err)
	}

	return item, nil
}

// List returns one page of found items matching the query, newest first by
// found date, plus pagination metadata computed from the full match count.
func (r *foundItemRepository) List(ctx context.Context, q ListQuery) ([]*domain.FoundItem, *Pagination, error) {
	q = q.normalized()
	filter := q.filter("isClaimed")

	cursor, err := r.coll.Find(ctx, filter, q.findOptions("foundDate"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list found items: %w", err)
	}

	items := make([]*domain.FoundItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, nil, fmt.Errorf("failed to decode found items: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count found items: %w", err)
	}

	return items, q.pagination(total), nil
}

// Update applies a partial merge: only the supplied fields change.
func (r *foundItemRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.FoundItemPatch) (*domain.FoundItem, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Img != nil {
		set["img"] = *patch.Img
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Country != nil {
		set["country"] = *patch.Country
	}
	if patch.Region != nil {
		set["viloyat"] = *patch.Region
	}
	if patch.Coordinates != nil {
		set["coordinates"] = *patch.Coordinates
	}
	if patch.ContactInfo != nil {
		set["contactInfo"] = *patch.ContactInfo
	}
	if patch.IsClaimed != nil {
		set["isClaimed"] = *patch.IsClaimed
	}
	if patch.ClaimedBy != nil {
		set["claimedBy"] = *patch.ClaimedBy
	}
	if patch.FoundDate != nil {
		set["foundDate"] = *patch.FoundDate
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	item := &domain.FoundItem{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFoundItemNotFound
		}
		return nil, fmt.Errorf("failed to update found item: %w", err)
	}

	return item, nil
}

// Delete removes a found item
func (r *foundItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete found item: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrFoundItemNotFound
	}
	return nil
}
