package gateway

import (
	"context"
	"fmt"

	gw "app/internal/gateway"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"github.com/stripe/stripe-go/v80/setupintent"
)

type StripeGateway struct {
	secretKey string
}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{secretKey: secretKey}
}

// SetupIntentのclient_secretをそのまま返す（素通し）
func (g *StripeGateway) ClientToken(ctx context.Context) (string, error) {
	params := &stripe.SetupIntentParams{}
	params.Context = ctx

	si, err := setupintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create setup intent: %w", err)
	}
	return si.ClientSecret, nil
}

// PaymentIntentを即時confirmで作成する。
// idempotency keyはこちらで採番してStripe側の二重課金を防ぐ。
// リトライはしない：transportエラーも課金拒否と同じ失敗として返す。
func (g *StripeGateway) Charge(ctx context.Context, amount decimal.Decimal, currency string, paymentMethodToken string) (gw.ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toMinorUnits(amount)),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodToken),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		return gw.ChargeResult{}, fmt.Errorf("%w: %v", gw.ErrChargeFailed, err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return gw.ChargeResult{}, fmt.Errorf("%w: status %s", gw.ErrChargeFailed, pi.Status)
	}

	return gw.ChargeResult{TransactionID: pi.ID}, nil
}

// decimal(10,2)を最小通貨単位へ
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}
