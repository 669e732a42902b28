package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らして売上数を増やす。
// 条件付きUPDATEのRowsAffectedで競合を検出する（行ロック前提）。
func (r *InventoryGormRepository) SellIfEnough(ctx context.Context, productID int64, count int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", productID, count).
		Updates(map[string]interface{}{
			"quantity": gorm.Expr("quantity - ?", count),
			"sold":     gorm.Expr("sold + ?", count),
		})

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（soldは履歴なので触らない）
func (r *InventoryGormRepository) Restock(ctx context.Context, productID int64, count int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("quantity", gorm.Expr("quantity + ?", count))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
