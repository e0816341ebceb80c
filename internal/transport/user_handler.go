package transport

import (
	"errors"
	"net/http"

	"topildim/internal/middleware"
	"topildim/internal/repository"
	"topildim/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AddToBucketRequest represents the bucket append payload
type AddToBucketRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// bucketResponse wraps the raw (unexpanded) bucket references
type bucketResponse struct {
	Success bool                 `json:"success"`
	Bucket  []primitive.ObjectID `json:"bucket"`
}

// UserHandler handles HTTP requests for the per-user product bucket
type UserHandler struct {
	bucketService service.BucketService
	logger        *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(bucketService service.BucketService, logger *zap.Logger) *UserHandler {
	return &UserHandler{bucketService: bucketService, logger: logger}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/{id}/bucket", h.GetBucket)
		r.Post("/{id}/bucket", h.AddToBucket)
		r.Delete("/{id}/bucket/{productID}", h.RemoveFromBucket)
	})
}

// GetBucket returns the expanded bucket as a bare product array (legacy
// envelope). A user id that does not resolve answers 404 instead of the
// crash the legacy service produced.
func (h *UserHandler) GetBucket(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	products, err := h.bucketService.GetBucket(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}

		h.logger.Error("Failed to get bucket", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get bucket")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// AddToBucket appends a product reference to the bucket. Duplicates are
// allowed and the product's existence is not checked.
func (h *UserHandler) AddToBucket(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	var req AddToBucketRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Bucket add validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	bucket, err := h.bucketService.AddProduct(r.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}

		h.logger.Error("Failed to add to bucket", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add to bucket")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, bucketResponse{Success: true, Bucket: bucket})
}

// RemoveFromBucket removes every occurrence of the product reference.
func (h *UserHandler) RemoveFromBucket(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	productID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	bucket, err := h.bucketService.RemoveProduct(r.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}

		h.logger.Error("Failed to remove from bucket", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to remove from bucket")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, bucketResponse{Success: true, Bucket: bucket})
}
