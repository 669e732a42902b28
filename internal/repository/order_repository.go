package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	// 他人の注文は「存在しない扱い」にするためuserIDで絞る
	FindByUserAndTransactionID(ctx context.Context, userID int64, transactionID string) (model.Order, error)
}
