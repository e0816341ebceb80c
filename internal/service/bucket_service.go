package service

import (
	"context"

	"topildim/internal/domain"
	"topildim/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BucketService defines the interface for the per-user product bucket
type BucketService interface {
	GetBucket(ctx context.Context, userID primitive.ObjectID) ([]*domain.Product, error)
	AddProduct(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error)
	RemoveProduct(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type bucketService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewBucketService creates a new instance of BucketService
func NewBucketService(userRepo repository.UserRepository, productRepo repository.ProductRepository) BucketService {
	return &bucketService{userRepo: userRepo, productRepo: productRepo}
}

// GetBucket expands the user's bucket references into product records,
// preserving order and duplicates. References to products that no longer
// exist are skipped.
func (s *bucketService) GetBucket(ctx context.Context, userID primitive.ObjectID) ([]*domain.Product, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	byID, err := s.productRepo.FindByIDs(ctx, user.Bucket)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(user.Bucket))
	for _, ref := range user.Bucket {
		if p, ok := byID[ref]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// AddProduct appends the product reference to the bucket. The product's
// existence is deliberately not checked; the reference is advisory.
func (s *bucketService) AddProduct(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return s.userRepo.PushToBucket(ctx, userID, productID)
}

// RemoveProduct removes every occurrence of the product reference.
func (s *bucketService) RemoveProduct(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return s.userRepo.PullFromBucket(ctx, userID, productID)
}
