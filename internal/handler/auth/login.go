// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/repository"
	"ebook-library/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳存取與更新令牌
// @Summary     登入使用者
// @Description 驗證帳密，成功回傳 access token、refresh token 與角色
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid request body."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		// 查無使用者與密碼錯誤回覆一致，避免帳號枚舉
		user, err := repository.GetUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid credentials."})
		}
		authUser, err := service.AuthenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid credentials."})
		}

		accessToken, err := service.IssueAccessToken(*authUser)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to issue token."})
		}
		refreshToken, err := service.IssueRefreshToken(*authUser)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to issue token."})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			Role:         string(authUser.Role),
		})
	}
}
