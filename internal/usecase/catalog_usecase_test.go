package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CatItemRepoMock struct{ mock.Mock }

func (m *CatItemRepoMock) ListPage(ctx context.Context, q repo.ItemPageQuery) ([]model.Item, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *CatItemRepoMock) ListBySexAndType(ctx context.Context, sex string, itemType string) ([]model.Item, error) {
	args := m.Called(ctx, sex, itemType)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *CatItemRepoMock) ListByIDs(ctx context.Context, ids []int64) ([]model.Item, error) {
	panic("not used in CatalogUsecase tests")
}

func (m *CatItemRepoMock) FindByID(ctx context.Context, id int64) (model.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.Item)
	return item, args.Error(1)
}

func (m *CatItemRepoMock) Create(ctx context.Context, item model.Item) (model.Item, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.Item)
	return created, args.Error(1)
}

func (m *CatItemRepoMock) DeleteWithPurchases(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PhotoStoreMock struct{ mock.Mock }

func (m *PhotoStoreMock) Save(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}

// =====================
// ListItems
// =====================

func TestCatalogUsecase_ListItems_InvalidPage(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatItemRepoMock), new(PhotoStoreMock))

	_, err := uc.ListItems(context.Background(), 0)
	assertHTTPStatus(t, err, 400)
}

func TestCatalogUsecase_ListItems_PageOutOfRange(t *testing.T) {
	iRepo := new(CatItemRepoMock)
	iRepo.On("ListPage", mock.Anything, repo.ItemPageQuery{Page: 3, PerPage: usecase.CatalogPerPage}).
		Return([]model.Item{}, int64(9), nil)

	uc := usecase.NewCatalogUsecase(iRepo, new(PhotoStoreMock))

	_, err := uc.ListItems(context.Background(), 3)
	assertHTTPStatus(t, err, 404)
}

func TestCatalogUsecase_ListItems_EmptyCatalogFirstPage(t *testing.T) {
	iRepo := new(CatItemRepoMock)
	iRepo.On("ListPage", mock.Anything, repo.ItemPageQuery{Page: 1, PerPage: usecase.CatalogPerPage}).
		Return([]model.Item{}, int64(0), nil)

	uc := usecase.NewCatalogUsecase(iRepo, new(PhotoStoreMock))

	out, err := uc.ListItems(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.TotalPages)
}

func TestCatalogUsecase_ListItems_Success(t *testing.T) {
	items := []model.Item{{ID: 1}, {ID: 2}}

	iRepo := new(CatItemRepoMock)
	iRepo.On("ListPage", mock.Anything, repo.ItemPageQuery{Page: 2, PerPage: usecase.CatalogPerPage}).
		Return(items, int64(10), nil)

	uc := usecase.NewCatalogUsecase(iRepo, new(PhotoStoreMock))

	out, err := uc.ListItems(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, int64(10), out.Total)
	assert.Equal(t, 8, out.PerPage)
	assert.Equal(t, 2, out.TotalPages)
}

// =====================
// FilterItems
// =====================

func TestCatalogUsecase_FilterItems_BadToken(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatItemRepoMock), new(PhotoStoreMock))

	for _, token := range []string{"", "men", "_trousers", "men_"} {
		_, err := uc.FilterItems(context.Background(), token)
		assertHTTPStatus(t, err, 400)
	}
}

func TestCatalogUsecase_FilterItems_TitleCasesToken(t *testing.T) {
	iRepo := new(CatItemRepoMock)
	iRepo.On("ListBySexAndType", mock.Anything, "Men", "Trousers").
		Return([]model.Item{{ID: 1, Sex: "Men", Type: "Trousers"}}, nil)

	uc := usecase.NewCatalogUsecase(iRepo, new(PhotoStoreMock))

	items, err := uc.FilterItems(context.Background(), "men_trousers")
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	iRepo.AssertExpectations(t)
}

func TestCatalogUsecase_FilterItems_NoMatchIsEmptyList(t *testing.T) {
	iRepo := new(CatItemRepoMock)
	iRepo.On("ListBySexAndType", mock.Anything, "Women", "Watch").
		Return([]model.Item{}, nil)

	uc := usecase.NewCatalogUsecase(iRepo, new(PhotoStoreMock))

	items, err := uc.FilterItems(context.Background(), "women_watch")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

// =====================
// AddItem
// =====================

func validAddItemInput() usecase.AddItemInput {
	return usecase.AddItemInput{
		Name:          "blue jeans",
		Sex:           "men",
		Type:          "trousers",
		Price:         "19.99",
		Supply:        "10",
		Size:          "m",
		PhotoFilename: "jeans.jpg",
		Photo:         strings.NewReader("fake image bytes"),
	}
}

func TestCatalogUsecase_AddItem_MissingFields(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatItemRepoMock), new(PhotoStoreMock))

	in := validAddItemInput()
	in.Name = "  "

	_, err := uc.AddItem(context.Background(), in)
	assertHTTPStatus(t, err, 400)
}

func TestCatalogUsecase_AddItem_BadPrice(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatItemRepoMock), new(PhotoStoreMock))

	for _, price := range []string{"abc", "-1", "NaN", "+Inf"} {
		in := validAddItemInput()
		in.Price = price

		_, err := uc.AddItem(context.Background(), in)
		assertHTTPStatus(t, err, 400)
	}
}

func TestCatalogUsecase_AddItem_BadSupply(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatItemRepoMock), new(PhotoStoreMock))

	for _, supply := range []string{"abc", "-3", "1.5"} {
		in := validAddItemInput()
		in.Supply = supply

		_, err := uc.AddItem(context.Background(), in)
		assertHTTPStatus(t, err, 400)
	}
}

func TestCatalogUsecase_AddItem_BadPhotoExtension(t *testing.T) {
	uc := usecase.NewCatalogUsecase(new(CatItemRepoMock), new(PhotoStoreMock))

	for _, name := range []string{"photo.gif", "photo.pdf", "photo"} {
		in := validAddItemInput()
		in.PhotoFilename = name

		_, err := uc.AddItem(context.Background(), in)
		assertHTTPStatus(t, err, 400)
	}
}

func TestCatalogUsecase_AddItem_TitleCasesAndSaves(t *testing.T) {
	in := validAddItemInput()

	photos := new(PhotoStoreMock)
	photos.On("Save", "jeans.jpg", mock.Anything).Return("static/uploads/jeans.jpg", nil)

	iRepo := new(CatItemRepoMock)
	iRepo.On("Create", mock.Anything, mock.MatchedBy(func(item model.Item) bool {
		return item.Name == "Blue Jeans" &&
			item.Sex == "Men" &&
			item.Type == "Trousers" &&
			item.Size == "M" &&
			item.Price == 19.99 &&
			item.Supply == 10 &&
			item.PhotoURL == "static/uploads/jeans.jpg"
	})).Return(model.Item{ID: 5, Name: "Blue Jeans"}, nil)

	uc := usecase.NewCatalogUsecase(iRepo, photos)

	item, err := uc.AddItem(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), item.ID)

	photos.AssertExpectations(t)
	iRepo.AssertExpectations(t)
}

// =====================
// GetItem / DeleteItem
// =====================

func TestCatalogUsecase_GetItem_NotFound(t *testing.T) {
	iRepo := new(CatItemRepoMock)
	iRepo.On("FindByID", mock.Anything, int64(404)).Return(model.Item{}, repo.ErrNotFound)

	uc := usecase.NewCatalogUsecase(iRepo, new(PhotoStoreMock))

	_, err := uc.GetItem(context.Background(), 404)
	assertHTTPStatus(t, err, 404)
}

func TestCatalogUsecase_DeleteItem_NotFound(t *testing.T) {
	iRepo := new(CatItemRepoMock)
	iRepo.On("DeleteWithPurchases", mock.Anything, int64(404)).Return(repo.ErrNotFound)

	uc := usecase.NewCatalogUsecase(iRepo, new(PhotoStoreMock))

	err := uc.DeleteItem(context.Background(), 404)
	assertHTTPStatus(t, err, 404)
}

func TestCatalogUsecase_DeleteItem_Success(t *testing.T) {
	iRepo := new(CatItemRepoMock)
	iRepo.On("DeleteWithPurchases", mock.Anything, int64(5)).Return(nil)

	uc := usecase.NewCatalogUsecase(iRepo, new(PhotoStoreMock))

	assert.NoError(t, uc.DeleteItem(context.Background(), 5))
	iRepo.AssertExpectations(t)
}
