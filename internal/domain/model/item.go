package model

import "time"

// カタログの商品。作成後の編集ルートは無い（作成と削除のみ）。
// テキスト項目は保存前にタイトルケースへ正規化される。
type Item struct {
	ID     int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string  `gorm:"type:varchar(255);not null" json:"name"`
	Sex    string  `gorm:"type:varchar(100);not null;index:idx_items_sex_type" json:"sex"`
	Type   string  `gorm:"type:varchar(100);not null;index:idx_items_sex_type" json:"type"`
	Price  float64 `gorm:"not null;check:price >= 0" json:"price"`
	Supply int64   `gorm:"not null;check:supply >= 0" json:"supply"`
	Size   string  `gorm:"type:varchar(20);not null" json:"size"`

	//アップロード済み写真の保存パス
	PhotoURL string `gorm:"type:varchar(512);not null" json:"photo_url"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
