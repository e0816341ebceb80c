package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"topildim/internal/domain"
	"topildim/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockProductRepository struct {
	products map[primitive.ObjectID]*domain.Product
	order    []primitive.ObjectID
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[primitive.ObjectID]*domain.Product),
	}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	product.ID = primitive.NewObjectID()
	m.products[product.ID] = product
	m.order = append(m.order, product.ID)
	return nil
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(m.order))
	for _, id := range m.order {
		products = append(products, m.products[id])
	}
	return products, nil
}

func (m *mockProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.Product, error) {
	found := make(map[primitive.ObjectID]*domain.Product)
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}

func newProductRouter() (chi.Router, *mockProductRepository) {
	productRepo := newMockProductRepository()
	handler := NewProductHandler(productRepo, zap.NewNop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, productRepo
}

func TestCreateProduct_ReturnsBareProduct(t *testing.T) {
	router, _ := newProductRouter()

	rec := postJSON(t, router, "/api/products/", CreateProductRequest{
		Title:    "Umbrella",
		Price:    15.5,
		Length:   90,
		Width:    10,
		Category: "accessories",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	assert.Equal(t, "Umbrella", product.Title)
	assert.Equal(t, 15.5, product.Price)
	assert.False(t, product.ID.IsZero())
}

func TestCreateProduct_ZeroPriceRejected(t *testing.T) {
	router, repo := newProductRouter()

	rec := postJSON(t, router, "/api/products/", CreateProductRequest{
		Title: "Free thing",
		Price: 0,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.Success)
	assert.Equal(t, "validation failed", resp.Message)
	assert.Empty(t, repo.products)
}

func TestCreateProduct_MissingTitleRejected(t *testing.T) {
	router, _ := newProductRouter()

	rec := postJSON(t, router, "/api/products/", CreateProductRequest{Price: 10})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "Title", resp.Errors[0].Field)
}

func TestListProducts_ReturnsBareArray(t *testing.T) {
	router, repo := newProductRouter()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Product{Title: "Keys", Price: 5}))
	require.NoError(t, repo.Create(ctx, &domain.Product{Title: "Phone", Price: 300}))

	req := httptest.NewRequest(http.MethodGet, "/api/products/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))

	require.Len(t, products, 2)
	assert.Equal(t, "Keys", products[0].Title)
	assert.Equal(t, "Phone", products[1].Title)
}
