// File: internal/handler/admin.go
package handler

import (
	"net/http"

	"ebook-library/internal/dto"

	"github.com/labstack/echo/v4"
)

// DashboardHandler 管理員專屬測試端點
// @Summary     管理員儀表板
// @Tags        admin
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/dashboard [get]
func DashboardHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome admin! You have access to the admin dashboard."})
	}
}
