package repository

import (
	"app/internal/domain/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

// DI
func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

// 未払い行を1回のINSERTで作成する。
// (purchaser_id, item_id, paid) の複合ユニークに乗せた ON CONFLICT DO NOTHING なので、
// 同時に同じ行を足そうとしても勝者は1人だけになる。
func (r *PurchaseGormRepository) CreateUnpaid(ctx context.Context, purchaserID int64, itemID int64) (bool, error) {
	p := model.Purchase{
		Paid:        false,
		PurchaserID: purchaserID,
		ItemID:      itemID,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "purchaser_id"},
				{Name: "item_id"},
				{Name: "paid"},
			},
			DoNothing: true,
		}).
		Create(&p)

	if res.Error != nil {
		return false, res.Error
	}

	//0件なら既にカートにある
	return res.RowsAffected > 0, nil
}

// ユーザーの未払い行を全件
func (r *PurchaseGormRepository) ListUnpaidByPurchaser(ctx context.Context, purchaserID int64) ([]model.Purchase, error) {
	var purchases []model.Purchase

	err := r.db.WithContext(ctx).
		Where("purchaser_id = ? AND paid = ?", purchaserID, false).
		Order("id asc").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}

	return purchases, nil
}

// 未払い行を削除。対象が無くてもエラーにしない（冪等）。
func (r *PurchaseGormRepository) DeleteUnpaid(ctx context.Context, purchaserID int64, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("purchaser_id = ? AND item_id = ? AND paid = ?", purchaserID, itemID, false).
		Delete(&model.Purchase{}).Error
}
