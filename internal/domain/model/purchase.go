package model

import "time"

// カートの1行（paid=false）または購入済みの1行（paid=true）。
// (purchaser_id, item_id, paid) の複合ユニークで
// 「同じ商品の未払い行はユーザーごとに1つまで」をDBレベルで保証する。
type Purchase struct {
	ID   int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Paid bool  `gorm:"not null;default:false;uniqueIndex:idx_purchase_line" json:"paid"`

	PurchaserID int64 `gorm:"not null;index;uniqueIndex:idx_purchase_line" json:"purchaser_id"`
	Purchaser   User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:PurchaserID" json:"-"`

	ItemID int64 `gorm:"not null;index;uniqueIndex:idx_purchase_line" json:"item_id"`
	Item   Item  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:ItemID" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
