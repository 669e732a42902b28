package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 名前・説明の部分一致＋カテゴリ絞り込み（category_id=0は全件）
func (r *ProductGormRepository) Search(ctx context.Context, q repo.ProductSearchQuery) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if q.CategoryID > 0 {
		tx = tx.Where("category_id = ?", q.CategoryID)
	}

	var products []model.Product
	if err := tx.Order("sold desc").Order("id desc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 同カテゴリの売れ筋順
func (r *ProductGormRepository) ListRelated(ctx context.Context, categoryID int64, excludeProductID int64) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", categoryID, excludeProductID).
		Order("sold desc").Order("id desc").
		Limit(3).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}
