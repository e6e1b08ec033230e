package usecase

import (
	"context"
	"io"
	"math"
	"net/http"
	"path"
	"strconv"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 1ページあたりの商品数（固定）
const CatalogPerPage = 8

// 保存前の正規化（Men/Trousers のようにタイトルケースへ）
var titleCaser = cases.Title(language.English)

// 写真の保存を約束
type PhotoStore interface {
	Save(filename string, r io.Reader) (string, error)
}

// CatalogUsecase はカタログの閲覧と管理（作成・削除）の業務ロジックです。
type CatalogUsecase struct {
	itemRepo repo.ItemRepository
	photos   PhotoStore
}

// DI
func NewCatalogUsecase(itemRepo repo.ItemRepository, photos PhotoStore) *CatalogUsecase {
	return &CatalogUsecase{
		itemRepo: itemRepo,
		photos:   photos,
	}
}

type ItemPageOutput struct {
	Items      []model.Item `json:"items"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	TotalPages int          `json:"total_pages"`
}

// ListItems はページングされたカタログ一覧。範囲外のページはエラーにする。
func (u *CatalogUsecase) ListItems(ctx context.Context, page int) (ItemPageOutput, error) {
	if page < 1 {
		return ItemPageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}

	items, total, err := u.itemRepo.ListPage(ctx, repo.ItemPageQuery{Page: page, PerPage: CatalogPerPage})
	if err != nil {
		return ItemPageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalPages := int((total + CatalogPerPage - 1) / CatalogPerPage)

	//空カタログの1ページ目だけは空で返す
	if len(items) == 0 && page > 1 {
		return ItemPageOutput{}, NewHTTPError(http.StatusNotFound, "page out of range")
	}

	return ItemPageOutput{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    CatalogPerPage,
		TotalPages: totalPages,
	}, nil
}

// FilterItems は "men_trousers" のようなカテゴリトークンで絞り込む。
// トークンは sex_type の2要素。どちらもタイトルケースに揃えて完全一致で引く。
// 一致ゼロは正常（空一覧）で、フォールバックはしない。
func (u *CatalogUsecase) FilterItems(ctx context.Context, token string) ([]model.Item, error) {
	parts := strings.SplitN(token, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid category token")
	}

	sex := titleCaser.String(parts[0])
	itemType := titleCaser.String(parts[1])

	items, err := u.itemRepo.ListBySexAndType(ctx, sex, itemType)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return items, nil
}

// GetItem は商品詳細。
func (u *CatalogUsecase) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	if itemID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	item, err := u.itemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return item, nil
}

type AddItemInput struct {
	Name   string
	Sex    string
	Type   string
	Price  string
	Supply string
	Size   string

	//multipartから渡されるアップロード写真
	PhotoFilename string
	Photo         io.Reader
}

// 受け付ける写真の拡張子
var allowedPhotoExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// AddItem は管理者による商品作成。写真を保存してからレコードを作る。
func (u *CatalogUsecase) AddItem(ctx context.Context, in AddItemInput) (model.Item, error) {
	name := strings.TrimSpace(in.Name)
	sex := strings.TrimSpace(in.Sex)
	itemType := strings.TrimSpace(in.Type)
	size := strings.TrimSpace(in.Size)

	if name == "" || sex == "" || itemType == "" || size == "" {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "price must be a non-negative number")
	}

	supply, err := strconv.ParseInt(strings.TrimSpace(in.Supply), 10, 64)
	if err != nil || supply < 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "supply must be a non-negative integer")
	}

	if in.Photo == nil || strings.TrimSpace(in.PhotoFilename) == "" {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "photo is required")
	}
	ext := strings.ToLower(path.Ext(in.PhotoFilename))
	if _, ok := allowedPhotoExts[ext]; !ok {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "photo must be jpg, jpeg or png")
	}

	photoURL, err := u.photos.Save(in.PhotoFilename, in.Photo)
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "photo save failed")
	}

	item, err := u.itemRepo.Create(ctx, model.Item{
		Name:     titleCaser.String(name),
		Sex:      titleCaser.String(sex),
		Type:     titleCaser.String(itemType),
		Price:    price,
		Supply:   supply,
		Size:     titleCaser.String(size),
		PhotoURL: photoURL,
	})
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return item, nil
}

// DeleteItem は管理者による商品削除。依存するpurchasesごと消す（明示カスケード）。
func (u *CatalogUsecase) DeleteItem(ctx context.Context, itemID int64) error {
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	err := u.itemRepo.DeleteWithPurchases(ctx, itemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
