package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ShippingUsecase struct {
	shippingRepo repo.ShippingRepository
}

func NewShippingUsecase(shippingRepo repo.ShippingRepository) *ShippingUsecase {
	return &ShippingUsecase{shippingRepo: shippingRepo}
}

type ShippingOptionsResponse struct {
	ShippingOptions []model.Shipping `json:"shipping_options"`
}

func (u *ShippingUsecase) ListOptions(ctx context.Context) (ShippingOptionsResponse, error) {
	options, err := u.shippingRepo.List(ctx)
	if err != nil {
		return ShippingOptionsResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ShippingOptionsResponse{ShippingOptions: options}, nil
}
