package repository

import "context"

// 在庫台帳。quantityを減らすのは注文確定のコミットだけ。
type InventoryRepository interface {
	// 在庫が足りるときだけ quantity -= count, sold += count する。
	// 足りなければ false（更新なし）。
	SellIfEnough(ctx context.Context, productID int64, count int64) (bool, error)

	// 在庫戻し（返金・手動リカバリ用）
	Restock(ctx context.Context, productID int64, count int64) error
}
