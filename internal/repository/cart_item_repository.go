package repository

import (
	"app/internal/domain/model"
	"context"
)

type CartItemRepository interface {
	// 追加順（id昇順）で返す
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.CartItem, error)
	// 同一商品は数量加算
	UpsertAdd(ctx context.Context, userID int64, productID int64, addCount int64) error
	UpdateCount(ctx context.Context, userID int64, productID int64, count int64) error
	// 無くてもエラーにしない
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
