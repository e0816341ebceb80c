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
	// ErrMissingCoordinates rejects absent coordinates and coordinates with
	// a zero component alike, on create and on updates that include them.
	ErrMissingCoordinates = errors.New("coordinates are required")
)

// RequiredFieldError reports a partial update that would clear a field the
// schema requires. Field carries the payload field name.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return e.Field + " must not be empty"
}

type requiredField struct {
	name  string
	value *string
}

// checkRequiredFields rejects supplied-but-empty values. Nil means the
// field was not part of the patch and stays untouched.
func checkRequiredFields(fields []requiredField) error {
	for _, f := range fields {
		if f.value != nil && *f.value == "" {
			return &RequiredFieldError{Field: f.name}
		}
	}
	return nil
}

// CreateFoundItemInput carries the validated fields of a found item report.
// FoundDate nil means "now"; ContactInfo nil means empty.
type CreateFoundItemInput struct {
	Title       string
	Description string
	Img         string
	Location    string
	Country     string
	Region      string
	Coordinates domain.Coordinates
	ContactInfo *domain.ContactInfo
	FoundDate   *time.Time
}

// FoundItemService defines the interface for found item business logic
type FoundItemService interface {
	List(ctx context.Context, q repository.ListQuery) ([]*domain.FoundItem, *repository.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.FoundItem, error)
	Create(ctx context.Context, in CreateFoundItemInput) (*domain.FoundItem, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.FoundItemPatch) (*domain.FoundItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type foundItemService struct {
	repo repository.FoundItemRepository
}

// NewFoundItemService creates a new instance of FoundItemService
func NewFoundItemService(repo repository.FoundItemRepository) FoundItemService {
	return &foundItemService{repo: repo}
}

func (s *foundItemService) List(ctx context.Context, q repository.ListQuery) ([]*domain.FoundItem, *repository.Pagination, error) {
	return s.repo.List(ctx, q)
}

func (s *foundItemService) Get(ctx context.Context, id primitive.ObjectID) (*domain.FoundItem, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the coordinates, applies defaults and inserts the item.
func (s *foundItemService) Create(ctx context.Context, in CreateFoundItemInput) (*domain.FoundItem, error) {
	if in.Coordinates.Lat == 0 || in.Coordinates.Lng == 0 {
		return nil, ErrMissingCoordinates
	}

	now := time.Now().UTC()
	item := &domain.FoundItem{
		Title:       in.Title,
		Description: in.Description,
		Img:         in.Img,
		Location:    in.Location,
		Country:     in.Country,
		Region:      in.Region,
		Coordinates: in.Coordinates,
		ContactInfo: domain.ContactInfo{},
		IsClaimed:   false,
		FoundDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ContactInfo != nil {
		item.ContactInfo = *in.ContactInfo
	}
	if in.FoundDate != nil {
		item.FoundDate = *in.FoundDate
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies a partial merge after re-validating the supplied fields
// against the same schema the create path enforces.
func (s *foundItemService) Update(ctx context.Context, id primitive.ObjectID, patch domain.FoundItemPatch) (*domain.FoundItem, error) {
	if err := checkRequiredFields([]requiredField{
		{"Title", patch.Title},
		{"Description", patch.Description},
		{"Img", patch.Img},
		{"Location", patch.Location},
		{"Country", patch.Country},
		{"Viloyat", patch.Region},
	}); err != nil {
		return nil, err
	}
	if patch.Coordinates != nil && (patch.Coordinates.Lat == 0 || patch.Coordinates.Lng == 0) {
		return nil, ErrMissingCoordinates
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *foundItemService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
