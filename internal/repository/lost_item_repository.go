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
	ErrLostItemNotFound = errors.New("lost item not found")
)

// LostItemRepository defines the interface for lost item data access
type LostItemRepository interface {
	Create(ctx context.Context, item *domain.LostItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.LostItem, error)
	List(ctx context.Context, q ListQuery) ([]*domain.LostItem, *Pagination, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.LostItemPatch) (*domain.LostItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type lostItemRepository struct {
	coll *mongo.Collection
}

// NewLostItemRepository creates a new instance of LostItemRepository
func NewLostItemRepository(db *mongo.Database) LostItemRepository {
	return &lostItemRepository{coll: db.Collection("yoqotilganlar")}
}

// Create inserts a new lost item
func (r *lostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create lost item: %w", err)
	}

	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID retrieves a lost item by ID
func (r *lostItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.LostItem, error) {
	item := &domain.LostItem{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLostItemNotFound
		}
		return nil, fmt.Errorf("failed to find lost item by ID: %w", err)
	}

	return item, nil
}

// List returns one page of lost items matching the query, newest first by
// lost date, plus pagination metadata computed from the full match count.
func (r *lostItemRepository) List(ctx context.Context, q ListQuery) ([]*domain.LostItem, *Pagination, error) {
	q = q.normalized()
	filter := q.filter("isFound")

	cursor, err := r.coll.Find(ctx, filter, q.findOptions("lostDate"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list lost items: %w", err)
	}

	items := make([]*domain.LostItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, nil, fmt.Errorf("failed to decode lost items: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count lost items: %w", err)
	}

	return items, q.pagination(total), nil
}

// Update applies a partial merge: only the supplied fields change. A
// non-nil Images slice replaces the whole list.
func (r *lostItemRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.LostItemPatch) (*domain.LostItem, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Images != nil {
		set["images"] = patch.Images
	}
	if patch.LastKnownLocation != nil {
		set["lastKnownLocation"] = *patch.LastKnownLocation
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
	if patch.IsFound != nil {
		set["isFound"] = *patch.IsFound
	}
	if patch.FoundBy != nil {
		set["foundBy"] = *patch.FoundBy
	}
	if patch.LostDate != nil {
		set["lostDate"] = *patch.LostDate
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	item := &domain.LostItem{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLostItemNotFound
		}
		return nil, fmt.Errorf("failed to update lost item: %w", err)
	}

	return item, nil
}

// Delete removes a lost item
func (r *lostItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete lost item: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrLostItemNotFound
	}
	return nil
}
