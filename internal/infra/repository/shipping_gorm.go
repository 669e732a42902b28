package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ShippingGormRepository struct {
	db *gorm.DB
}

func NewShippingGormRepository(db *gorm.DB) *ShippingGormRepository {
	return &ShippingGormRepository{db: db}
}

func (r *ShippingGormRepository) List(ctx context.Context) ([]model.Shipping, error) {
	var options []model.Shipping

	if err := r.db.WithContext(ctx).Order("price asc").Find(&options).Error; err != nil {
		return []model.Shipping{}, err
	}
	return options, nil
}

func (r *ShippingGormRepository) FindByID(ctx context.Context, id int64) (model.Shipping, error) {
	var s model.Shipping

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shipping{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shipping{}, err
	}
	return s, nil
}
