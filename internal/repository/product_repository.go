package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の検索条件
type ProductSearchQuery struct {
	CategoryID int64
	Search     string
}

// 商品の読み取りだけを約束。在庫の更新はInventoryRepositoryへ。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Search(ctx context.Context, q ProductSearchQuery) ([]model.Product, error)
	// 同カテゴリの別商品
	ListRelated(ctx context.Context, categoryID int64, excludeProductID int64) ([]model.Product, error)
}
