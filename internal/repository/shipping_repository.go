package repository

import (
	"app/internal/domain/model"
	"context"
)

type ShippingRepository interface {
	List(ctx context.Context) ([]model.Shipping, error)
	FindByID(ctx context.Context, id int64) (model.Shipping, error)
}
