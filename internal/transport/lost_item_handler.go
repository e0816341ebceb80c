package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"topildim/internal/domain"
	"topildim/internal/middleware"
	"topildim/internal/repository"
	"topildim/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateLostItemRequest represents the lost item creation payload. Images
// are optional but capped at four; category defaults to "other" and is not
// checked against the enumeration (the store filters literally).
type CreateLostItemRequest struct {
	Title             string              `json:"title" validate:"required"`
	Description       string              `json:"description" validate:"required"`
	Images            []string            `json:"images"`
	LastKnownLocation string              `json:"lastKnownLocation" validate:"required"`
	Country           string              `json:"country" validate:"required"`
	Viloyat           string              `json:"viloyat" validate:"required"`
	Coordinates       *domain.Coordinates `json:"coordinates" validate:"required"`
	ContactInfo       *domain.ContactInfo `json:"contactInfo"`
	Category          string              `json:"category"`
	Date              *time.Time          `json:"date"`
}

// LostItemHandler handles HTTP requests for lost item listings
type LostItemHandler struct {
	itemService service.LostItemService
	logger      *zap.Logger
}

// NewLostItemHandler creates a new LostItemHandler
func NewLostItemHandler(itemService service.LostItemService, logger *zap.Logger) *LostItemHandler {
	return &LostItemHandler{itemService: itemService, logger: logger}
}

// RegisterRoutes registers all lost item routes
func (h *LostItemHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/yoqotilganlar", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns a filtered, paginated page of lost items
func (h *LostItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r, "isFound", true)

	items, pagination, err := h.itemService.List(r.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list lost items", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list lost items")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, listResponse{
		Success:    true,
		Data:       items,
		Pagination: pagination,
	})
}

// Get returns one lost item by id
func (h *LostItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "lost item not found")
		return
	}

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrLostItemNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "lost item not found")
			return
		}

		h.logger.Error("Failed to get lost item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get lost item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// Create inserts a lost item report
func (h *LostItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLostItemRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Lost item validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.itemService.Create(r.Context(), service.CreateLostItemInput{
		Title:             req.Title,
		Description:       req.Description,
		Images:            req.Images,
		LastKnownLocation: req.LastKnownLocation,
		Country:           req.Country,
		Region:            req.Viloyat,
		Coordinates:       *req.Coordinates,
		ContactInfo:       req.ContactInfo,
		Category:          req.Category,
		LostDate:          req.Date,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingCoordinates) {
			middleware.RespondWithError(w, http.StatusBadRequest, "coordinates are required")
			return
		}
		if errors.Is(err, service.ErrTooManyImages) {
			middleware.RespondWithError(w, http.StatusBadRequest, "maximum 4 images")
			return
		}

		h.logger.Error("Failed to create lost item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create lost item")
		return
	}

	h.logger.Info("Lost item created", zap.String("item_id", item.ID.Hex()))
	middleware.RespondWithJSON(w, http.StatusCreated, dataResponse{Success: true, Data: item})
}

// Update applies a partial merge to a lost item
func (h *LostItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "lost item not found")
		return
	}

	var patch domain.LostItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Debug("Lost item patch decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.itemService.Update(r.Context(), id, patch)
	if err != nil {
		var fieldErr *service.RequiredFieldError
		if errors.As(err, &fieldErr) {
			middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
				{Field: fieldErr.Field, Message: "This field is required"},
			})
			return
		}
		if errors.Is(err, service.ErrMissingCoordinates) {
			middleware.RespondWithError(w, http.StatusBadRequest, "coordinates are required")
			return
		}
		if errors.Is(err, service.ErrTooManyImages) {
			middleware.RespondWithError(w, http.StatusBadRequest, "maximum 4 images")
			return
		}
		if errors.Is(err, repository.ErrLostItemNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "lost item not found")
			return
		}

		h.logger.Error("Failed to update lost item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update lost item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// Delete removes a lost item
func (h *LostItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "lost item not found")
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrLostItemNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "lost item not found")
			return
		}

		h.logger.Error("Failed to delete lost item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete lost item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, messageResponse{Success: true, Message: "lost item deleted"})
}
