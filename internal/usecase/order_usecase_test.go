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

func TestOrderUsecase_ListMyOrders(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := NewOrderUsecase(orderRepo, itemRepo)

	orderRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.Order{
		{ID: 1, UserID: 1, TransactionID: "txn_1", Amount: d("35.00")},
		{ID: 2, UserID: 1, TransactionID: "txn_2", Amount: d("12.00")},
	}, nil)

	out, err := uc.ListMyOrders(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Orders))
}

func TestOrderUsecase_GetMyOrderDetail(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := NewOrderUsecase(orderRepo, itemRepo)

	orderRepo.On("FindByUserAndTransactionID", mock.Anything, int64(1), "txn_1").Return(model.Order{ID: 10, UserID: 1, TransactionID: "txn_1"}, nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{
		{ID: 100, OrderID: 10, Name: "Coffee", Price: d("10.00"), Count: 2},
	}, nil)

	out, err := uc.GetMyOrderDetail(context.Background(), 1, "txn_1")
	assert.NoError(t, err)
	assert.Equal(t, "txn_1", out.Order.TransactionID)
	assert.Equal(t, 1, len(out.Order.Items))
}

// 他人の注文は存在しない扱い
func TestOrderUsecase_GetMyOrderDetail_ForeignOrder(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := NewOrderUsecase(orderRepo, itemRepo)

	orderRepo.On("FindByUserAndTransactionID", mock.Anything, int64(2), "txn_1").Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetMyOrderDetail(context.Background(), 2, "txn_1")
	assertHTTPError(t, err, http.StatusNotFound, "order not found")
}

func TestOrderUsecase_GetMyOrderDetail_EmptyTransactionID(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := NewOrderUsecase(orderRepo, itemRepo)

	_, err := uc.GetMyOrderDetail(context.Background(), 1, "  ")
	assertHTTPError(t, err, http.StatusBadRequest, "invalid transaction id")
}
