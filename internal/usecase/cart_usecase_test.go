package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	he, ok := AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, status, he.Status)
	assert.Equal(t, message, he.Message)
}

func TestCartUsecase_AddItem_DefaultCountIsOne(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Coffee", Quantity: 10}, nil)
	cartRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(1)).Return(model.CartItem{}, repo.ErrNotFound)
	cartRepo.On("UpsertAdd", mock.Anything, int64(1), int64(1), int64(1)).Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 7, UserID: 1, ProductID: 1, Count: 1},
	}, nil)

	out, err := uc.AddItem(ctx, 1, AddItemInput{ProductID: 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Cart))
	assert.Equal(t, int64(1), out.Cart[0].Count)

	cartRepo.AssertExpectations(t)
}

// 同一商品は数量加算
func TestCartUsecase_AddItem_SameProductAccumulates(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Quantity: 10}, nil)
	cartRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(1)).Return(model.CartItem{ID: 7, UserID: 1, ProductID: 1, Count: 2}, nil)
	cartRepo.On("UpsertAdd", mock.Anything, int64(1), int64(1), int64(3)).Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 7, UserID: 1, ProductID: 1, Count: 5},
	}, nil)

	out, err := uc.AddItem(ctx, 1, AddItemInput{ProductID: 1, Count: 3})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.Cart[0].Count)

	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_AddItem_ProductNotFound(t *testing.T) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItem(context.Background(), 1, AddItemInput{ProductID: 99, Count: 1})
	assertHTTPError(t, err, http.StatusNotFound, "product not found")
}

// 在庫超過はステータス200のままボディでエラーを返す
func TestCartUsecase_AddItem_StockExceeded(t *testing.T) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Quantity: 3}, nil)
	cartRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(1)).Return(model.CartItem{ID: 7, UserID: 1, ProductID: 1, Count: 2}, nil)

	_, err := uc.AddItem(context.Background(), 1, AddItemInput{ProductID: 1, Count: 2})
	assertHTTPError(t, err, http.StatusOK, "not enough of this item in stock")

	cartRepo.AssertNotCalled(t, "UpsertAdd", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateItem_StockExceeded(t *testing.T) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Quantity: 3}, nil)

	_, err := uc.UpdateItem(context.Background(), 1, UpdateItemInput{ProductID: 1, Count: 5})
	assertHTTPError(t, err, http.StatusOK, "not enough of this item in stock")

	cartRepo.AssertNotCalled(t, "UpdateCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateItem_NotInCart(t *testing.T) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Quantity: 10}, nil)
	cartRepo.On("UpdateCount", mock.Anything, int64(1), int64(1), int64(2)).Return(repo.ErrNotFound)

	_, err := uc.UpdateItem(context.Background(), 1, UpdateItemInput{ProductID: 1, Count: 2})
	assertHTTPError(t, err, http.StatusNotFound, "item not in cart")
}

// 無い明細の削除はエラーにしない
func TestCartUsecase_RemoveItem_Idempotent(t *testing.T) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	cartRepo.On("DeleteByUserAndProduct", mock.Anything, int64(1), int64(5)).Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.RemoveItem(context.Background(), 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Cart))

	cartRepo.AssertExpectations(t)
}

// 合計は現在の商品価格で計算する
func TestCartUsecase_GetTotal_UsesCurrentPrices(t *testing.T) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 10, Count: 2},
		{ID: 2, UserID: 1, ProductID: 20, Count: 1},
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Price: d("10.00"), Quantity: 5}, nil)
	productRepo.On("FindByID", mock.Anything, int64(20)).Return(model.Product{ID: 20, Price: d("5.00"), Quantity: 5}, nil)

	out, err := uc.GetTotal(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, out.TotalCost.Equal(d("25.00")), out.TotalCost.String())
}

func TestCartUsecase_GetItemTotal(t *testing.T) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 10, Count: 2},
		{ID: 2, UserID: 1, ProductID: 20, Count: 3},
	}, nil)

	out, err := uc.GetItemTotal(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.TotalItems)
}

func TestCartUsecase_GetTotal_DBError(t *testing.T) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	uc := NewCartUsecase(cartRepo, productRepo)

	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return(nil, errors.New("db down"))

	_, err := uc.GetTotal(context.Background(), 1)
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")
}
