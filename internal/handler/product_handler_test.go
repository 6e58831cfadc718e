package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techmart/internal/middleware"
	"techmart/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, query model.ProductQuery) (*model.ProductList, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductList), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testProduct() *model.Product {
	now := time.Now().UTC()
	return &model.Product{
		ID:          "a3a1f1f0-0000-4000-8000-000000000001",
		Name:        "UltraBook Pro 15",
		Category:    model.CategoryLaptops,
		Description: "16GB RAM, 512GB SSD",
		Specs:       []string{"16GB RAM", "512GB SSD"},
		Price:       1499.99,
		Stock:       7,
		Images:      []string{"https://cdn.example.com/ultrabook.jpg"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	list := &model.ProductList{
		Products: []model.Product{*testProduct()},
		Total:    1,
		Limit:    10,
		Skip:     0,
	}

	tests := []struct {
		name           string
		queryParams    string
		expectedQuery  model.ProductQuery
		mockReturn     *model.ProductList
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "success with defaults",
			queryParams:    "",
			expectedQuery:  model.ProductQuery{Limit: 10, Skip: 0},
			mockReturn:     list,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "success with filters",
			queryParams:    "?category=Laptops&name=pro&limit=5&skip=10",
			expectedQuery:  model.ProductQuery{Category: model.CategoryLaptops, Name: "pro", Limit: 5, Skip: 10},
			mockReturn:     list,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "invalid category",
			queryParams:    "?category=phones",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed limit",
			queryParams:    "?limit=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative skip",
			queryParams:    "?skip=-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			queryParams:    "",
			expectedQuery:  model.ProductQuery{Limit: 10, Skip: 0},
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			if tt.expectService {
				mockService.On("List", mock.Anything, tt.expectedQuery).Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(mockService, logger)
			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.ProductList
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.mockReturn.Total, got.Total)
				assert.Len(t, got.Products, len(tt.mockReturn.Products))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	product := testProduct()

	t.Run("found", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("GetByID", mock.Anything, product.ID).Return(product, nil)

		h := NewProductHandler(mockService, logger)
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/products/"+product.ID, nil),
			map[string]string{"id": product.ID})
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, product.ID, got.ID)
		assert.Equal(t, product.Specs, got.Specs)
		mockService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("GetByID", mock.Anything, "missing").Return(nil, model.ErrProductNotFound)

		h := NewProductHandler(mockService, logger)
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/products/missing", nil),
			map[string]string{"id": "missing"})
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var errResp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "Product not found", errResp.Error)
		mockService.AssertExpectations(t)
	})
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("success", func(t *testing.T) {
		product := testProduct()
		mockService := new(MockProductService)
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(req *model.CreateProductRequest) bool {
			return req.Name == "UltraBook Pro 15" && req.Category == "Laptops"
		})).Return(product, nil)

		body, _ := json.Marshal(model.CreateProductRequest{
			Name:        "UltraBook Pro 15",
			Category:    "Laptops",
			Description: "16GB RAM, 512GB SSD",
			Price:       1499.99,
		})
		h := NewProductHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, product.ID, got.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("audit log names the acting admin", func(t *testing.T) {
		product := testProduct()
		mockService := new(MockProductService)
		mockService.On("Create", mock.Anything, mock.Anything).Return(product, nil)

		var logBuf bytes.Buffer
		h := NewProductHandler(mockService, zerolog.New(&logBuf))

		body, _ := json.Marshal(model.CreateProductRequest{
			Name:     "UltraBook Pro 15",
			Category: "Laptops",
			Price:    1499.99,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
		req = req.WithContext(middleware.WithUsername(req.Context(), "admin"))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, logBuf.String(), `"admin":"admin"`)
		assert.Contains(t, logBuf.String(), "product created")
	})

	t.Run("validation error", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidCategory)

		body, _ := json.Marshal(model.CreateProductRequest{Name: "X", Category: "phones", Price: 10})
		h := NewProductHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestProductHandler_Update(t *testing.T) {
	logger := zerolog.Nop()
	product := testProduct()

	t.Run("zero stock applied", func(t *testing.T) {
		updated := *product
		updated.Stock = 0

		mockService := new(MockProductService)
		mockService.On("Update", mock.Anything, product.ID, mock.MatchedBy(func(req *model.UpdateProductRequest) bool {
			return req.Stock != nil && *req.Stock == 0 && req.Name == nil
		})).Return(&updated, nil)

		h := NewProductHandler(mockService, logger)
		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodPut, "/api/products/"+product.ID, bytes.NewReader([]byte(`{"stock":0}`))),
			map[string]string{"id": product.ID})
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 0, got.Stock)
		mockService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, model.ErrProductNotFound)

		h := NewProductHandler(mockService, logger)
		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodPut, "/api/products/missing", bytes.NewReader([]byte(`{"name":"x"}`))),
			map[string]string{"id": "missing"})
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("empty patch", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("Update", mock.Anything, product.ID, mock.Anything).Return(nil, model.ErrEmptyUpdate)

		h := NewProductHandler(mockService, logger)
		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodPut, "/api/products/"+product.ID, bytes.NewReader([]byte(`{}`))),
			map[string]string{"id": product.ID})
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("success", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("Delete", mock.Anything, "p1").Return(nil)

		h := NewProductHandler(mockService, logger)
		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/products/p1", nil),
			map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()

		h.Delete(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := new(MockProductService)
		mockService.On("Delete", mock.Anything, "missing").Return(model.ErrProductNotFound)

		h := NewProductHandler(mockService, logger)
		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/products/missing", nil),
			map[string]string{"id": "missing"})
		rec := httptest.NewRecorder()

		h.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}
