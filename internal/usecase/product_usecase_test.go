package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_GetProductDetail(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := NewProductUsecase(productRepo)

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Coffee"}, nil)

	p, err := uc.GetProductDetail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := NewProductUsecase(productRepo)

	productRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)
	assertHTTPError(t, err, http.StatusNotFound, "product not found")
}

func TestProductUsecase_Search(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := NewProductUsecase(productRepo)

	q := repo.ProductSearchQuery{CategoryID: 0, Search: "coffee"}
	productRepo.On("Search", mock.Anything, q).Return([]model.Product{
		{ID: 1, Name: "Coffee Beans"},
	}, nil)

	out, err := uc.Search(context.Background(), ProductSearchInput{Search: "coffee"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.SearchProducts))

	productRepo.AssertExpectations(t)
}

// 関連商品は本体のカテゴリで引き、本体は除外
func TestProductUsecase_GetRelated(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := NewProductUsecase(productRepo)

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, CategoryID: 7}, nil)
	productRepo.On("ListRelated", mock.Anything, int64(7), int64(1)).Return([]model.Product{
		{ID: 2, CategoryID: 7},
		{ID: 3, CategoryID: 7},
	}, nil)

	out, err := uc.GetRelated(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.RelatedProducts))

	productRepo.AssertExpectations(t)
}

func TestProductUsecase_GetRelated_ProductNotFound(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := NewProductUsecase(productRepo)

	productRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetRelated(context.Background(), 99)
	assertHTTPError(t, err, http.StatusNotFound, "product not found")

	productRepo.AssertNotCalled(t, "ListRelated", mock.Anything, mock.Anything, mock.Anything)
}
