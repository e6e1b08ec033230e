package handler

import (
	"net/http"
	"strconv"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品の作成・削除（管理者のみ）
type AdminItemHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewAdminItemHandler(uc *usecase.CatalogUsecase) *AdminItemHandler {
	return &AdminItemHandler{uc: uc}
}

// 管理ルートを登録。ガードに落ちると403（ボディ無し）で、リダイレクトはしない。
func (h *AdminItemHandler) RegisterRoutes(e *echo.Echo) {
	admin := middleware.AdminGuard()

	e.GET("/add-item", h.addItemForm, admin)
	e.POST("/add-item", h.addItem, admin)
	e.GET("/delete-item/:item_id", h.deleteItem, admin)
}

// GET /add-item はフォームの項目定義。
func (h *AdminItemHandler) addItemForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"fields": []string{"name", "sex", "type", "price", "supply", "size", "photo"},
	})
}

// POST /add-item はmultipartで商品と写真を受ける。
func (h *AdminItemHandler) addItem(c echo.Context) error {
	in := usecase.AddItemInput{
		Name:   c.FormValue("name"),
		Sex:    c.FormValue("sex"),
		Type:   c.FormValue("type"),
		Price:  c.FormValue("price"),
		Supply: c.FormValue("supply"),
		Size:   c.FormValue("size"),
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo is required"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo is unreadable"})
	}
	defer src.Close()

	in.PhotoFilename = fh.Filename
	in.Photo = src

	item, err := h.uc.AddItem(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// GET /delete-item/:item_id は商品と依存purchasesを消す。
func (h *AdminItemHandler) deleteItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	if err := h.uc.DeleteItem(c.Request().Context(), itemID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "item deleted"})
}
