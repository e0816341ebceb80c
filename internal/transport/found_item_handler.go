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

// CreateFoundItemRequest represents the found item creation payload. The
// optional date seeds foundDate; absent means "now".
type CreateFoundItemRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Img         string              `json:"img" validate:"required"`
	Location    string              `json:"location" validate:"required"`
	Country     string              `json:"country" validate:"required"`
	Viloyat     string              `json:"viloyat" validate:"required"`
	Coordinates *domain.Coordinates `json:"coordinates" validate:"required"`
	ContactInfo *domain.ContactInfo `json:"contactInfo"`
	Date        *time.Time          `json:"date"`
}

// FoundItemHandler handles HTTP requests for found item listings
type FoundItemHandler struct {
	itemService service.FoundItemService
	logger      *zap.Logger
}

// NewFoundItemHandler creates a new FoundItemHandler
func NewFoundItemHandler(itemService service.FoundItemService, logger *zap.Logger) *FoundItemHandler {
	return &FoundItemHandler{itemService: itemService, logger: logger}
}

// RegisterRoutes registers all found item routes
func (h *FoundItemHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/topilganlar", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns a filtered, paginated page of found items
func (h *FoundItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r, "isClaimed", false)

	items, pagination, err := h.itemService.List(r.Context(), q)
	if err != nil {
		h.logger.Error("Failed to list found items", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list found items")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, listResponse{
		Success:    true,
		Data:       items,
		Pagination: pagination,
	})
}

// Get returns one found item by id
func (h *FoundItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "found item not found")
		return
	}

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFoundItemNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "found item not found")
			return
		}

		h.logger.Error("Failed to get found item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get found item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// Create inserts a found item report
func (h *FoundItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFoundItemRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Found item validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.itemService.Create(r.Context(), service.CreateFoundItemInput{
		Title:       req.Title,
		Description: req.Description,
		Img:         req.Img,
		Location:    req.Location,
		Country:     req.Country,
		Region:      req.Viloyat,
		Coordinates: *req.Coordinates,
		ContactInfo: req.ContactInfo,
		FoundDate:   req.Date,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingCoordinates) {
			middleware.RespondWithError(w, http.StatusBadRequest, "coordinates are required")
			return
		}

		h.logger.Error("Failed to create found item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create found item")
		return
	}

	h.logger.Info("Found item created", zap.String("item_id", item.ID.Hex()))
	middleware.RespondWithJSON(w, http.StatusCreated, dataResponse{Success: true, Data: item})
}

// Update applies a partial merge to a found item
func (h *FoundItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "found item not found")
		return
	}

	var patch domain.FoundItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Debug("Found item patch decode failed", zap.Error(err))
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
		if errors.Is(err, repository.ErrFoundItemNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "found item not found")
			return
		}

		h.logger.Error("Failed to update found item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update found item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

// Delete removes a found item
func (h *FoundItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "found item not found")
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrFoundItemNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "found item not found")
			return
		}

		h.logger.Error("Failed to delete found item", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete found item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, messageResponse{Success: true, Message: "found item deleted"})
}
