package service

import (
	"context"
	"errors"
	"time"

	"topildim/internal/domain"
	"topildim/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrTooManyImages = errors.New("maximum 4 images")
)

// CreateLostItemInput carries the validated fields of a lost item report.
// LostDate nil means "now"; Category empty defaults to "other".
type CreateLostItemInput struct {
	Title             string
	Description       string
	Images            []string
	LastKnownLocation string
	Country           string
	Region            string
	Coordinates       domain.Coordinates
	ContactInfo       *domain.ContactInfo
	Category          string
	LostDate          *time.Time
}

// LostItemService defines the interface for lost item business logic
type LostItemService interface {
	List(ctx context.Context, q repository.ListQuery) ([]*domain.LostItem, *repository.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.LostItem, error)
	Create(ctx context.Context, in CreateLostItemInput) (*domain.LostItem, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.LostItemPatch) (*domain.LostItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type lostItemService struct {
	repo repository.LostItemRepository
}

// NewLostItemService creates a new instance of LostItemService
func NewLostItemService(repo repository.LostItemRepository) LostItemService {
	return &lostItemService{repo: repo}
}

func (s *lostItemService) List(ctx context.Context, q repository.ListQuery) ([]*domain.LostItem, *repository.Pagination, error) {
	return s.repo.List(ctx, q)
}

func (s *lostItemService) Get(ctx context.Context, id primitive.ObjectID) (*domain.LostItem, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the coordinates and the image cap, applies defaults and
// inserts the item.
func (s *lostItemService) Create(ctx context.Context, in CreateLostItemInput) (*domain.LostItem, error) {
	if in.Coordinates.Lat == 0 || in.Coordinates.Lng == 0 {
		return nil, ErrMissingCoordinates
	}
	if len(in.Images) > domain.MaxLostItemImages {
		return nil, ErrTooManyImages
	}

	now := time.Now().UTC()
	item := &domain.LostItem{
		Title:             in.Title,
		Description:       in.Description,
		Images:            in.Images,
		LastKnownLocation: in.LastKnownLocation,
		Country:           in.Country,
		Region:            in.Region,
		Coordinates:       in.Coordinates,
		ContactInfo:       domain.ContactInfo{},
		IsFound:           false,
		LostDate:          now,
		Category:          domain.CategoryOther,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if item.Images == nil {
		item.Images = []string{}
	}
	if in.ContactInfo != nil {
		item.ContactInfo = *in.ContactInfo
	}
	if in.LostDate != nil {
		item.LostDate = *in.LostDate
	}
	if in.Category != "" {
		item.Category = in.Category
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies a partial merge after re-validating the supplied fields
// against the same schema the create path enforces. The image cap holds on
// update as well: a patch may never grow the list past the maximum.
func (s *lostItemService) Update(ctx context.Context, id primitive.ObjectID, patch domain.LostItemPatch) (*domain.LostItem, error) {
	if err := checkRequiredFields([]requiredField{
		{"Title", patch.Title},
		{"Description", patch.Description},
		{"LastKnownLocation", patch.LastKnownLocation},
		{"Country", patch.Country},
		{"Viloyat", patch.Region},
	}); err != nil {
		return nil, err
	}
	if patch.Coordinates != nil && (patch.Coordinates.Lat == 0 || patch.Coordinates.Lng == 0) {
		return nil, ErrMissingCoordinates
	}
	if patch.Images != nil && len(patch.Images) > domain.MaxLostItemImages {
		return nil, ErrTooManyImages
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *lostItemService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
