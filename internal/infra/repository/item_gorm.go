package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

// ページング付きの一覧と総件数を返す。
func (r *ItemGormRepository) ListPage(ctx context.Context, q repo.ItemPageQuery) ([]model.Item, int64, error) {
	var items []model.Item
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Item{})

	if err := tx.Count(&total).Error; err != nil {
		return []model.Item{}, 0, err
	}

	offset := (q.Page - 1) * q.PerPage
	if err := tx.Order("id asc").Offset(offset).Limit(q.PerPage).Find(&items).Error; err != nil {
		return []model.Item{}, 0, err
	}

	return items, total, nil
}

// sexとtypeの完全一致
func (r *ItemGormRepository) ListBySexAndType(ctx context.Context, sex string, itemType string) ([]model.Item, error) {
	var items []model.Item

	err := r.db.WithContext(ctx).
		Where("sex = ? AND type = ?", sex, itemType).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// 複数IDでまとめて取得
func (r *ItemGormRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Item, error) {
	if len(ids) == 0 {
		return []model.Item{}, nil
	}

	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// IDで商品を取得
func (r *ItemGormRepository) FindByID(ctx context.Context, id int64) (model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// 商品の作成
func (r *ItemGormRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// 商品削除。参照しているpurchasesも同一トランザクションで消す。
// FKのOnDelete:CASCADEはあくまで保険で、削除方針はここで明示する。
func (r *ItemGormRepository) DeleteWithPurchases(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.Item
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Where("item_id = ?", id).Delete(&model.Purchase{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Item{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}
