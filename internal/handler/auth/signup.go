// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/model"
	"ebook-library/internal/repository"
	"ebook-library/internal/service"

	"github.com/labstack/echo/v4"
)

// SignupHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 以 email/password 建立帳號，並為所有既有書籍播種未讀紀錄
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.SignupRequest true "註冊資料"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid request body."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to hash password."})
		}

		user := &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleUser,
		}
		created, err := repository.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Email already taken."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to register user."})
		}

		// 為新使用者播種所有既有書籍的未讀紀錄
		if err := repository.SeedUserBooksForUser(c.Request().Context(), db, created.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to register user."})
		}

		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "User registered successfully"})
	}
}
