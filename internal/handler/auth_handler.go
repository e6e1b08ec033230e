package handler

import (
	"net/http"
	"time"

	"app/internal/middleware"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC   *auth.RegisterUserUsecase // 会員登録usecase
	loginUC      *auth.LoginUsecase        // ログインusecase
	cookieSecure bool
}

// DI
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		registerUC:   registerUC,
		loginUC:      loginUC,
		cookieSecure: cookieSecure,
	}
}

// /register のリクエストボディ。フォームとJSONの両方を受ける。
type registerRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// /login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// 認証ルートを登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/register", h.registerForm)
	e.POST("/register", h.register)
	e.GET("/login", h.loginForm)
	e.POST("/login", h.login)
	e.GET("/logout", h.logout)
}

// GETはフォームの項目定義だけ返す。描画はフロントの仕事。
func (h *AuthHandler) registerForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"fields": []string{"name", "email", "password", "confirm_password"},
	})
}

func (h *AuthHandler) loginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"fields": []string{"email", "password"},
	})
}

// POST /register のハンドラ。成功してもセッションは張らない。
func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch err {
		case auth.ErrMissingFields, auth.ErrInvalidEmailFormat, auth.ErrPasswordLength, auth.ErrPasswordMismatch:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case auth.ErrEmailAlreadyExists:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, out)
}

// POST /login のハンドラ。
func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, side, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case auth.ErrNoSuchUser, auth.ErrBadCredential:
			//どちらかはクライアントに教えない
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	h.setSessionCookie(c, side.SessionToken, side.ExpiresAt)

	return c.JSON(http.StatusOK, out)
}

// GET /logout はセッションCookieを無条件に消す（冪等）。
func (h *AuthHandler) logout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// セッショントークンをCookieにセット。
func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	}
	c.SetCookie(cookie)
}

// セッションCookieを破棄
func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
	c.SetCookie(cookie)
}
