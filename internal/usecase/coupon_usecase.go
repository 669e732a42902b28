package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type CouponUsecase struct {
	couponRepo repo.CouponRepository
}

func NewCouponUsecase(couponRepo repo.CouponRepository) *CouponUsecase {
	return &CouponUsecase{couponRepo: couponRepo}
}

// 定額と割合のどちらかが入る
type CouponOutput struct {
	Name            string           `json:"name"`
	DiscountPrice   *decimal.Decimal `json:"discount_price,omitempty"`
	DiscountPercent *float64         `json:"discount_percent,omitempty"`
}

type CouponResponse struct {
	Coupon CouponOutput `json:"coupon"`
}

// 名前完全一致で検証。定額→割合の順に探す。
func (u *CouponUsecase) CheckCoupon(ctx context.Context, name string) (CouponResponse, error) {
	if name == "" {
		return CouponResponse{}, NewHTTPError(http.StatusNotFound, "coupon not found")
	}

	fixed, err := u.couponRepo.FindFixedByName(ctx, name)
	if err == nil {
		price := fixed.DiscountPrice
		return CouponResponse{Coupon: CouponOutput{Name: fixed.Name, DiscountPrice: &price}}, nil
	}
	if err != repo.ErrNotFound {
		return CouponResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pct, err := u.couponRepo.FindPercentageByName(ctx, name)
	if err == nil {
		percent := pct.DiscountPercent
		return CouponResponse{Coupon: CouponOutput{Name: pct.Name, DiscountPercent: &percent}}, nil
	}
	if err != repo.ErrNotFound {
		return CouponResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CouponResponse{}, NewHTTPError(http.StatusNotFound, "coupon not found")
}
