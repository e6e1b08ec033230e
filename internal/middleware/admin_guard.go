package middleware

import (
	"net/http"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleがADMINかどうかを確認します。

func AdminGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)

			//匿名もUSERも同じ403。ログインへのリダイレクトはしない。
			if !ok || role != string(model.RoleAdmin) {
				return c.NoContent(http.StatusForbidden)
			}

			return next(c)
		}
	}
}
