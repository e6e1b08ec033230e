package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// カタログ閲覧の公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// 公開ルートを登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.list)
	e.GET("/items/:token", h.filter)
	e.GET("/add-item/:item_id", h.detail)
}

// GET / はページングされたカタログ一覧。?page= はデフォルト1。
func (h *CatalogHandler) list(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = parsed
	}

	out, err := h.uc.ListItems(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GET /items/:token は "men_trousers" 形式のカテゴリ絞り込み。
func (h *CatalogHandler) filter(c echo.Context) error {
	items, err := h.uc.FilterItems(c.Request().Context(), c.Param("token"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}

// GET /add-item/:item_id は商品詳細。
func (h *CatalogHandler) detail(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	item, err := h.uc.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}
