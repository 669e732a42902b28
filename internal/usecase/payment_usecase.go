package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentUsecase は見積りと決済確定（注文ワークフロー）を持つ。
//
// 確定の流れ：カート再取得 → 在庫再チェック → 見積り → ゲートウェイ課金 →
// 1トランザクションで（注文作成・明細作成・在庫減算・カート全削除）。
// ゲートウェイ呼び出しはトランザクションの外。ロックを持ったまま外部待ちしない。
type PaymentUsecase struct {
	tx           repo.TransactionManager
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	shippingRepo repo.ShippingRepository
	couponRepo   repo.CouponRepository
	gw           gateway.PaymentGateway
	log          *zap.Logger
	currency     string
}

func NewPaymentUsecase(
	tx repo.TransactionManager,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	shippingRepo repo.ShippingRepository,
	couponRepo repo.CouponRepository,
	gw gateway.PaymentGateway,
	log *zap.Logger,
	currency string,
) *PaymentUsecase {
	return &PaymentUsecase{
		tx:           tx,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		shippingRepo: shippingRepo,
		couponRepo:   couponRepo,
		gw:           gw,
		log:          log,
		currency:     currency,
	}
}

type ClientTokenResponse struct {
	ClientToken string `json:"client_token"`
}

type PaymentTotalResponse struct {
	OriginalPrice    decimal.Decimal `json:"original_price"`
	TotalAfterCoupon decimal.Decimal `json:"total_after_coupon"`
	ShippingCost     decimal.Decimal `json:"shipping_cost"`
	Discount         decimal.Decimal `json:"discount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

type MakePaymentInput struct {
	PaymentMethodToken string
	ShippingID         int64
	CouponName         string

	FullName            string
	AddressLine1        string
	AddressLine2        string
	City                string
	StateProvinceRegion string
	PostalZipCode       string
	CountryRegion       string
	TelephoneNumber     string
}

type MakePaymentResponse struct {
	Success       string `json:"success"`
	TransactionID string `json:"transaction_id"`
	OrderID       int64  `json:"order_id"`
}

// ゲートウェイの素通し
func (u *PaymentUsecase) GetClientToken(ctx context.Context) (ClientTokenResponse, error) {
	token, err := u.gw.ClientToken(ctx)
	if err != nil {
		return ClientTokenResponse{}, NewHTTPError(http.StatusInternalServerError, "error fetching client token")
	}
	return ClientTokenResponse{ClientToken: token}, nil
}

// 見積り。副作用なし、何度呼んでも同じカートなら同じ結果。
func (u *PaymentUsecase) GetPaymentTotal(ctx context.Context, userID int64, shippingID int64, couponName string) (PaymentTotalResponse, error) {
	if userID <= 0 {
		return PaymentTotalResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	q, err := u.quote(ctx, userID, shippingID, couponName)
	if err != nil {
		return PaymentTotalResponse{}, err
	}

	return toPaymentTotalResponse(q.totals), nil
}

// 決済確定。課金は一度だけ。失敗したら何も変えない。
func (u *PaymentUsecase) MakePayment(ctx context.Context, userID int64, in MakePaymentInput) (MakePaymentResponse, error) {
	if userID <= 0 {
		return MakePaymentResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ShippingID <= 0 {
		return MakePaymentResponse{}, NewHTTPError(http.StatusNotFound, "invalid shipping option")
	}

	//Validated: カート再取得＋在庫再チェック＋見積り
	q, err := u.quote(ctx, userID, in.ShippingID, in.CouponName)
	if err != nil {
		return MakePaymentResponse{}, err
	}

	//Charged / ChargeFailed: リトライ禁止。transportエラーも失敗と同じ扱い。
	res, err := u.gw.Charge(ctx, q.totals.GrandTotal, u.currency, in.PaymentMethodToken)
	if err != nil {
		u.log.Warn("charge failed",
			zap.Int64("user_id", userID),
			zap.String("amount", q.totals.GrandTotal.StringFixed(2)),
			zap.Error(err),
		)
		return MakePaymentResponse{}, NewHTTPError(http.StatusBadRequest, "error processing payment")
	}

	//Committed: 注文・明細・在庫減算・カート削除を1トランザクションで。
	var orderID int64
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(q.items))

		for _, it := range q.items {
			//スナップショットはコミット時点の値
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusConflict, "a product in your cart is no longer available")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			ok, err := r.Inventory().SellIfEnough(ctx, it.ProductID, it.Count)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				//Chargedの後に在庫が尽きた（同時購入との競合）
				return NewHTTPError(http.StatusConflict, "not enough stock to complete purchase")
			}

			pid := it.ProductID
			orderItems = append(orderItems, model.OrderItem{
				ProductID: &pid,
				Name:      p.Name,
				Price:     p.Price,
				Count:     it.Count,
			})
		}

		id, err := r.Orders().Create(ctx, model.Order{
			UserID:        userID,
			TransactionID: res.TransactionID,
			Status:        model.OrderStatusNotProcessed,
			Amount:        q.totals.GrandTotal,

			FullName:            in.FullName,
			AddressLine1:        in.AddressLine1,
			AddressLine2:        in.AddressLine2,
			City:                in.City,
			StateProvinceRegion: in.StateProvinceRegion,
			PostalZipCode:       in.PostalZipCode,
			CountryRegion:       in.CountryRegion,
			TelephoneNumber:     in.TelephoneNumber,

			ShippingName:  q.shipping.Name,
			ShippingTime:  q.shipping.TimeToDelivery,
			ShippingPrice: q.shipping.Price,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		orderID = id

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.CartItems().DeleteAllByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})

	if err != nil {
		//課金は通っているのに注文が残せなかった。返金かコミット再試行の
		//手動リカバリが必要なので、必ず大きく残す。
		u.log.Error("charge captured but order commit failed, manual reconciliation required",
			zap.Int64("user_id", userID),
			zap.String("transaction_id", res.TransactionID),
			zap.String("amount", q.totals.GrandTotal.StringFixed(2)),
			zap.Error(err),
		)
		if he, ok := AsHTTPError(err); ok {
			return MakePaymentResponse{}, he
		}
		return MakePaymentResponse{}, NewHTTPError(http.StatusInternalServerError, "order could not be saved")
	}

	return MakePaymentResponse{
		Success:       "transaction successful",
		TransactionID: res.TransactionID,
		OrderID:       orderID,
	}, nil
}

type quoteResult struct {
	items    []model.CartItem
	totals   Totals
	shipping *model.Shipping
}

// カートを読み直して在庫・配送・クーポンを検証し、見積りを作る。
// 在庫はカートの値を信用せず、商品の現在値と比べ直す。
func (u *PaymentUsecase) quote(ctx context.Context, userID int64, shippingID int64, couponName string) (quoteResult, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return quoteResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		return quoteResult{}, NewHTTPError(http.StatusNotFound, "need to have items in cart")
	}

	subtotal := decimal.Zero
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err == repo.ErrNotFound {
			return quoteResult{}, NewHTTPError(http.StatusNotFound, "a product in your cart was not found")
		}
		if err != nil {
			return quoteResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if it.Count > p.Quantity {
			return quoteResult{}, NewHTTPError(http.StatusOK, "not enough of this item in stock")
		}

		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(it.Count)))
	}

	//配送（未指定は送料ゼロ）
	shippingCost := decimal.Zero
	var shipping *model.Shipping
	if shippingID > 0 {
		s, err := u.shippingRepo.FindByID(ctx, shippingID)
		if err == repo.ErrNotFound {
			return quoteResult{}, NewHTTPError(http.StatusNotFound, "invalid shipping option")
		}
		if err != nil {
			return quoteResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		shipping = &s
		shippingCost = s.Price
	}

	//クーポン（定額→割合の順で名前完全一致）
	coupon, err := u.resolveCoupon(ctx, couponName)
	if err != nil {
		return quoteResult{}, err
	}

	discount := couponDiscount(subtotal, coupon)

	return quoteResult{
		items:    items,
		totals:   computeTotals(subtotal, discount, shippingCost),
		shipping: shipping,
	}, nil
}

func (u *PaymentUsecase) resolveCoupon(ctx context.Context, name string) (appliedCoupon, error) {
	if name == "" {
		return appliedCoupon{}, nil
	}

	fixed, err := u.couponRepo.FindFixedByName(ctx, name)
	if err == nil {
		return appliedCoupon{fixed: &fixed}, nil
	}
	if err != repo.ErrNotFound {
		return appliedCoupon{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pct, err := u.couponRepo.FindPercentageByName(ctx, name)
	if err == nil {
		return appliedCoupon{percent: &pct}, nil
	}
	if err != repo.ErrNotFound {
		return appliedCoupon{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return appliedCoupon{}, NewHTTPError(http.StatusNotFound, "coupon not found")
}

func toPaymentTotalResponse(t Totals) PaymentTotalResponse {
	return PaymentTotalResponse{
		OriginalPrice:    t.Subtotal,
		TotalAfterCoupon: t.Subtotal.Sub(t.Discount),
		ShippingCost:     t.ShippingCost,
		Discount:         t.Discount,
		TotalAmount:      t.GrandTotal,
	}
}
