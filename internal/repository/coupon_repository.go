package repository

import (
	"app/internal/domain/model"
	"context"
)

// クーポンは定額と割合の2種類。名前は完全一致（大文字小文字を区別）。
type CouponRepository interface {
	FindFixedByName(ctx context.Context, name string) (model.FixedPriceCoupon, error)
	FindPercentageByName(ctx context.Context, name string) (model.PercentageCoupon, error)
}
