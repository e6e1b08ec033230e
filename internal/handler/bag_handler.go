package handler

import (
	"net/http"
	"strconv"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// バッグ（カート）のHTTP
type BagHandler struct {
	uc *usecase.BagUsecase
}

// DI
func NewBagHandler(uc *usecase.BagUsecase) *BagHandler {
	return &BagHandler{uc: uc}
}

// バッグのルートを登録。全部ログイン必須で、匿名はデータ参照の前に止まる。
func (h *BagHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("")
	g.Use(middleware.RequireUser())

	g.GET("/my-bag", h.viewBag)
	g.GET("/to-bag", h.addToBag)
	g.GET("/delete-from-bag", h.removeFromBag)
}

// GET /my-bag は未払い行の商品一覧と合計金額。
func (h *BagHandler) viewBag(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "login required"})
	}

	out, err := h.uc.ViewBag(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GET /to-bag?item_id= は商品をバッグへ入れる。
func (h *BagHandler) addToBag(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "login required"})
	}

	itemID, err := strconv.ParseInt(c.QueryParam("item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	if err := h.uc.AddToBag(c.Request().Context(), userID, itemID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "added to bag"})
}

// GET /delete-from-bag?item_id= はバッグから外す。無くても200（冪等）。
func (h *BagHandler) removeFromBag(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "login required"})
	}

	itemID, err := strconv.ParseInt(c.QueryParam("item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	if err := h.uc.RemoveFromBag(c.Request().Context(), userID, itemID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "removed from bag"})
}
