package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 確定済み注文の参照だけ。注文の作成はPaymentUsecaseが持つ。
type OrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

func NewOrderUsecase(orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, orderItemRepo: orderItemRepo}
}

type OrderOutput struct {
	model.Order
	Items []model.OrderItem `json:"items,omitempty"`
}

type OrderListResponse struct {
	Orders []model.Order `json:"orders"`
}

type OrderDetailResponse struct {
	Order OrderOutput `json:"order"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) (OrderListResponse, error) {
	if userID <= 0 {
		return OrderListResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return OrderListResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderListResponse{Orders: orders}, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, transactionID string) (OrderDetailResponse, error) {
	if userID <= 0 {
		return OrderDetailResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return OrderDetailResponse{}, NewHTTPError(http.StatusBadRequest, "invalid transaction id")
	}

	//userIDで絞るので他人の注文は「存在しない扱い」
	o, err := u.orderRepo.FindByUserAndTransactionID(ctx, userID, transactionID)
	if err == repo.ErrNotFound {
		return OrderDetailResponse{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderDetailResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderDetailResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderDetailResponse{Order: OrderOutput{Order: o, Items: items}}, nil
}
