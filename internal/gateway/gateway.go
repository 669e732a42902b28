package gateway

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// 決済に失敗（ゲートウェイ拒否・到達不能どちらも同じ扱い）
var ErrChargeFailed = errors.New("charge failed")

type ChargeResult struct {
	TransactionID string
}

// 外部決済サービスへの境界。
// Chargeはat-most-once：こちらからは絶対にリトライしない（二重課金になる）。
type PaymentGateway interface {
	// クライアントがカード情報をトークン化するための値を発行する（素通し）
	ClientToken(ctx context.Context) (string, error)

	// 金額と支払いトークンで課金する。
	// 失敗はErrChargeFailedを包んだエラーで返す。
	Charge(ctx context.Context, amount decimal.Decimal, currency string, paymentMethodToken string) (ChargeResult, error)
}
