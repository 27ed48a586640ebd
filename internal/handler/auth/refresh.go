// File: internal/handler/auth/refresh.go
package auth

import (
	"errors"
	"net/http"

	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/repository"
	"ebook-library/internal/service"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以更新令牌換發新的存取令牌
// 更新令牌不帶角色，這裡重讀資料庫取得最新角色再簽發，
// 角色變更不會被舊令牌固化
// @Summary     刷新存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RefreshRequest true "更新令牌"
// @Success     200 {object} dto.TokenResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid request body."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		claims, err := service.ParseToken(req.RefreshToken)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Refresh token has expired. Please log in again."})
			}
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid refresh token."})
		}

		user, err := repository.GetUserByEmail(c.Request().Context(), db, claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "User not found."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to refresh token."})
		}

		accessToken, err := service.IssueAccessToken(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to issue token."})
		}
		return c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
	}
}
