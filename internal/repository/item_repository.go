package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧のページング条件
type ItemPageQuery struct {
	Page    int
	PerPage int
}

// 商品の永続化（保存・取得・削除）だけを約束。
type ItemRepository interface {
	//ページングされた一覧と総件数を返す
	ListPage(ctx context.Context, q ItemPageQuery) ([]model.Item, int64, error)
	// sex と type の完全一致で絞り込む
	ListBySexAndType(ctx context.Context, sex string, itemType string) ([]model.Item, error)
	//複数IDでまとめて取得する
	ListByIDs(ctx context.Context, ids []int64) ([]model.Item, error)
	FindByID(ctx context.Context, id int64) (model.Item, error)

	Create(ctx context.Context, item model.Item) (model.Item, error)
	//商品と、それを参照するpurchasesを同一トランザクションで削除する
	DeleteWithPurchases(ctx context.Context, id int64) error
}
