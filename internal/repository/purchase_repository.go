package repository

import (
	"app/internal/domain/model"
	"context"
)

// 購入行（カート行）の永続化を約束。
// カート操作は必ず (purchaser_id, item_id) で絞る。item_id単独の検索は置かない。
type PurchaseRepository interface {
	// 未払い行をアトミックに1件作成する。
	// 既に同じ (purchaser, item) の未払い行があれば created=false を返す（read-then-writeはしない）。
	CreateUnpaid(ctx context.Context, purchaserID int64, itemID int64) (created bool, err error)

	//ユーザーの未払い行を全件返す
	ListUnpaidByPurchaser(ctx context.Context, purchaserID int64) ([]model.Purchase, error)

	// 未払い行を削除する。無ければ何もしない（冪等）。
	DeleteUnpaid(ctx context.Context, purchaserID int64, itemID int64) error
}
