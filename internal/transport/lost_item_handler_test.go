package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"topildim/internal/domain"
	"topildim/internal/middleware"
	"topildim/internal/repository"
	"topildim/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockLostItemRepository struct {
	items map[primitive.ObjectID]*domain.LostItem
}

func newMockLostItemRepository() *mockLostItemRepository {
	return &mockLostItemRepository{
		items: make(map[primitive.ObjectID]*domain.LostItem),
	}
}

func (m *mockLostItemRepository) Create(ctx context.Context, item *domain.LostItem) error {
	item.ID = primitive.NewObjectID()
	stored := *item
	m.items[item.ID] = &stored
	return nil
}

func (m *mockLostItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.LostItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrLostItemNotFound
	}
	return item, nil
}

func (m *mockLostItemRepository) List(ctx context.Context, q repository.ListQuery) ([]*domain.LostItem, *repository.Pagination, error) {
	items := make([]*domain.LostItem, 0, len(m.items))
	for _, item := range m.items {
		if q.Category != "" && item.Category != q.Category {
			continue
		}
		items = append(items, item)
	}
	return items, &repository.Pagination{Current: 1, Pages: 1, Total: int64(len(items))}, nil
}

func (m *mockLostItemRepository) Update(ctx context.Context, id primitive.ObjectID, patch domain.LostItemPatch) (*domain.LostItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrLostItemNotFound
	}
	if patch.Images != nil {
		item.Images = patch.Images
	}
	if patch.IsFound != nil {
		item.IsFound = *patch.IsFound
	}
	if patch.FoundBy != nil {
		item.FoundBy = *patch.FoundBy
	}
	item.UpdatedAt = time.Now().UTC()
	return item, nil
}

func (m *mockLostItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrLostItemNotFound
	}
	delete(m.items, id)
	return nil
}

func newLostItemRouter() (chi.Router, *mockLostItemRepository) {
	repo := newMockLostItemRepository()
	handler := NewLostItemHandler(service.NewLostItemService(repo), zap.NewNop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, repo
}

func validLostItemRequest() CreateLostItemRequest {
	return CreateLostItemRequest{
		Title:             "Blue backpack",
		Description:       "Lost on the metro",
		LastKnownLocation: "Amir Temur station",
		Country:           "Uzbekistan",
		Viloyat:           "Toshkent",
		Coordinates:       &domain.Coordinates{Lat: 41.311, Lng: 69.24},
	}
}

func TestCreateLostItem_DefaultsCategory(t *testing.T) {
	router, _ := newLostItemRouter()

	rec := postJSON(t, router, "/api/yoqotilganlar/", validLostItemRequest())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    domain.LostItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, domain.CategoryOther, resp.Data.Category)
	assert.NotNil(t, resp.Data.Images)
	assert.Empty(t, resp.Data.Images)
}

func TestCreateLostItem_TooManyImagesRejected(t *testing.T) {
	router, repo := newLostItemRouter()

	req := validLostItemRequest()
	req.Images = []string{"a", "b", "c", "d", "e"}

	rec := postJSON(t, router, "/api/yoqotilganlar/", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "maximum 4 images", resp.Message)
	assert.Empty(t, repo.items)
}

func TestUpdateLostItem_MarksFound(t *testing.T) {
	router, repo := newLostItemRouter()
	ctx := context.Background()

	item := &domain.LostItem{Title: "Blue backpack", LostDate: time.Now()}
	require.NoError(t, repo.Create(ctx, item))

	body, err := json.Marshal(map[string]interface{}{
		"isFound": true,
		"foundBy": "finder@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/yoqotilganlar/"+item.ID.Hex(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    domain.LostItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Data.IsFound)
	assert.Equal(t, "finder@example.com", resp.Data.FoundBy)
}

func TestUpdateLostItem_OversizedImagePatchRejected(t *testing.T) {
	router, repo := newLostItemRouter()
	ctx := context.Background()

	item := &domain.LostItem{Title: "Blue backpack", LostDate: time.Now()}
	require.NoError(t, repo.Create(ctx, item))

	body, err := json.Marshal(map[string]interface{}{
		"images": []string{"a", "b", "c", "d", "e"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/yoqotilganlar/"+item.ID.Hex(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "maximum 4 images", resp.Message)
}

func TestUpdateLostItem_UnknownIDAnswers404(t *testing.T) {
	router, _ := newLostItemRouter()

	body := bytes.NewReader([]byte(`{"title":"changed"}`))
	req := httptest.NewRequest(http.MethodPut, "/api/yoqotilganlar/"+primitive.NewObjectID().Hex(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
