package usecase

import (
	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 見積り結果。入力が同じなら結果も同じ（純粋計算）。
type Totals struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Discount     decimal.Decimal
	GrandTotal   decimal.Decimal
}

// 解決済みクーポン。どちらか片方だけが入る。
type appliedCoupon struct {
	fixed   *model.FixedPriceCoupon
	percent *model.PercentageCoupon
}

// クーポンから割引額を出す。割引は小計を超えない。
func couponDiscount(subtotal decimal.Decimal, c appliedCoupon) decimal.Decimal {
	var discount decimal.Decimal

	switch {
	case c.fixed != nil:
		discount = c.fixed.DiscountPrice
	case c.percent != nil:
		pct := decimal.NewFromFloat(c.percent.DiscountPercent)
		discount = subtotal.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
	default:
		return decimal.Zero
	}

	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	if discount.IsNegative() {
		return decimal.Zero
	}
	return discount
}

// grandTotal = max(0, subtotal - discount) + shippingCost
func computeTotals(subtotal decimal.Decimal, discount decimal.Decimal, shippingCost decimal.Decimal) Totals {
	afterCoupon := subtotal.Sub(discount)
	if afterCoupon.IsNegative() {
		afterCoupon = decimal.Zero
	}

	return Totals{
		Subtotal:     subtotal.Round(2),
		ShippingCost: shippingCost.Round(2),
		Discount:     discount.Round(2),
		GrandTotal:   afterCoupon.Add(shippingCost).Round(2),
	}
}
