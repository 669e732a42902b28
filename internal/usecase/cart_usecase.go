package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// 在庫チェックはここではソフトチェック。確定時に必ず再チェックする。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemResponse struct {
	ID      int64         `json:"id"`
	Count   int64         `json:"count"`
	Product model.Product `json:"product"`
}

type CartResponse struct {
	Cart []CartItemResponse `json:"cart"`
}

type CartTotalResponse struct {
	TotalCost decimal.Decimal `json:"total_cost"`
}

type CartItemTotalResponse struct {
	TotalItems int64 `json:"total_items"`
}

type AddItemInput struct {
	ProductID int64
	Count     int64
}

type UpdateItemInput struct {
	ProductID int64
	Count     int64
}

// AddItem はカートに追加（同一商品は数量加算、countは省略時1）。
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Count == 0 {
		in.Count = 1
	}
	if in.Count < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid count")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//既存数量＋追加分が在庫を超えないか（ソフトチェック）
	var existing int64 = 0
	item, err := u.cartItemRepo.FindByUserAndProduct(ctx, userID, in.ProductID)
	if err == nil {
		existing = item.Count
	} else if err != repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if existing+in.Count > p.Quantity {
		//エラーはレスポンスボディで返す（ステータスは200のまま）
		return CartResponse{}, NewHTTPError(http.StatusOK, "not enough of this item in stock")
	}

	if err := u.cartItemRepo.UpsertAdd(ctx, userID, in.ProductID, in.Count); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 明細一覧（追加順）
func (u *CartUsecase) GetItems(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.buildCartResponse(ctx, userID)
}

// 数量変更（在庫を超える指定はソフトエラー）
func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, in UpdateItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Count < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid count")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Count > p.Quantity {
		return CartResponse{}, NewHTTPError(http.StatusOK, "not enough of this item in stock")
	}

	if err := u.cartItemRepo.UpdateCount(ctx, userID, in.ProductID, in.Count); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "item not in cart")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 明細削除（無くてもエラーにしない）
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, productID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := u.cartItemRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 全明細削除
func (u *CartUsecase) Empty(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.cartItemRepo.DeleteAllByUserID(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 現在の商品価格で合計金額を出す
func (u *CartUsecase) GetTotal(ctx context.Context, userID int64) (CartTotalResponse, error) {
	if userID <= 0 {
		return CartTotalResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartTotalResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	total := decimal.Zero
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(it.Count)))
	}

	return CartTotalResponse{TotalCost: total.Round(2)}, nil
}

// 個数の合計
func (u *CartUsecase) GetItemTotal(ctx context.Context, userID int64) (CartItemTotalResponse, error) {
	if userID <= 0 {
		return CartItemTotalResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartItemTotalResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var total int64 = 0
	for _, it := range items {
		total += it.Count
	}

	return CartItemTotalResponse{TotalItems: total}, nil
}

// 明細に商品を結合してCartResponseを作る。消えた商品は飛ばす。
func (u *CartUsecase) buildCartResponse(ctx context.Context, userID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			continue
		}

		respItems = append(respItems, CartItemResponse{
			ID:      it.ID,
			Count:   it.Count,
			Product: p,
		})
	}

	return CartResponse{Cart: respItems}, nil
}
