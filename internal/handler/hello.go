// File: internal/handler/hello.go
package handler

import (
	"net/http"

	"ebook-library/internal/dto"

	"github.com/labstack/echo/v4"
)

// HelloHandler 受保護的測試端點，需通過令牌驗證
// @Summary     認證測試
// @Tags        hello
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     401 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/hello [get]
func HelloHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello! You have accessed a protected API."})
	}
}
