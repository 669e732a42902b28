package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CouponGormRepository struct {
	db *gorm.DB
}

func NewCouponGormRepository(db *gorm.DB) *CouponGormRepository {
	return &CouponGormRepository{db: db}
}

func (r *CouponGormRepository) FindFixedByName(ctx context.Context, name string) (model.FixedPriceCoupon, error) {
	var c model.FixedPriceCoupon

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FixedPriceCoupon{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FixedPriceCoupon{}, err
	}
	return c, nil
}

func (r *CouponGormRepository) FindPercentageByName(ctx context.Context, name string) (model.PercentageCoupon, error) {
	var c model.PercentageCoupon

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PercentageCoupon{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PercentageCoupon{}, err
	}
	return c, nil
}
