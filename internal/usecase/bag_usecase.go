package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// BagUsecase はカート（バッグ）の業務ロジックです。
// すべての操作は必ずログイン済みユーザーのIDで絞る。
type BagUsecase struct {
	purchaseRepo repo.PurchaseRepository
	itemRepo     repo.ItemRepository
}

// DI
func NewBagUsecase(purchaseRepo repo.PurchaseRepository, itemRepo repo.ItemRepository) *BagUsecase {
	return &BagUsecase{
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
	}
}

type BagOutput struct {
	Items      []model.Item `json:"items"`
	TotalPrice float64      `json:"total_price"`
}

// AddToBag は未払いのPurchaseを1行作る。
// 既に同じ商品がこのユーザーのバッグにあれば409。
// 在庫(supply)はここでは減らさない。減算は決済完了時の扱いで、決済は未対応。
func (u *BagUsecase) AddToBag(ctx context.Context, userID int64, itemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	//商品が実在するかを先に見る
	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "item not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.purchaseRepo.CreateUnpaid(ctx, userID, itemID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !created {
		return NewHTTPError(http.StatusConflict, "already in bag")
	}

	return nil
}

// RemoveFromBag はこのユーザーの未払い行を消す。無ければ何もしない（冪等）。
func (u *BagUsecase) RemoveFromBag(ctx context.Context, userID int64, itemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "login required")
	}
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if err := u.purchaseRepo.DeleteUnpaid(ctx, userID, itemID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// ViewBag は未払い行の商品一覧と合計金額を返す。
// 合計は価格の単純な算術和。空バッグは 0.0。
func (u *BagUsecase) ViewBag(ctx context.Context, userID int64) (BagOutput, error) {
	if userID <= 0 {
		return BagOutput{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}

	purchases, err := u.purchaseRepo.ListUnpaidByPurchaser(ctx, userID)
	if err != nil {
		return BagOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ids := make([]int64, 0, len(purchases))
	for _, p := range purchases {
		ids = append(ids, p.ItemID)
	}

	items, err := u.itemRepo.ListByIDs(ctx, ids)
	if err != nil {
		return BagOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var total float64 = 0
	for _, item := range items {
		total += item.Price
	}

	return BagOutput{Items: items, TotalPrice: total}, nil
}
