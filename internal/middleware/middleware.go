package middleware

import (
	"errors"
	"net/http"
	"strings"

	"ebook-library/internal/dto"
	"ebook-library/internal/model"
	"ebook-library/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// Identity 為通過令牌驗證後掛在請求上的身分
type Identity struct {
	Email string
	Role  model.Role
}

// Auth 全域認證過濾器
// 無 Authorization header 時放行（未認證請求交由下游的 RequireAuth 判斷）
// 帶 Bearer 令牌時解析：過期或無效一律 401 短路，成功則設定請求身分
// 身分只在尚未設定時寫入，同一請求重複進入不會覆寫
func Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return next(c)
		}

		claims, err := service.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Token has expired. Please log in again."})
			}
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid token."})
		}

		if c.Get(ContextUserKey) == nil {
			c.Set(ContextUserKey, &Identity{Email: claims.Subject, Role: claims.Role})
		}
		return next(c)
	}
}

// CurrentIdentity 取出請求身分，未認證時 ok 為 false
func CurrentIdentity(c echo.Context) (*Identity, bool) {
	id, ok := c.Get(ContextUserKey).(*Identity)
	return id, ok
}

// RequireAuth 要求請求必須帶有效身分
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentIdentity(c); !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Authentication required."})
		}
		return next(c)
	}
}

// RequireAdmin 要求請求身分具管理書籍的權限，否則 403
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		id, _ := CurrentIdentity(c)
		if !id.Role.CanManageBooks() {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Error: "Admin privileges required."})
		}
		return next(c)
	})
}
