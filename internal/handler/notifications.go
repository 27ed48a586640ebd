// File: internal/handler/notifications.go
package handler

import (
	"net/http"

	"ebook-library/internal/dto"
	"ebook-library/internal/notify"

	"github.com/labstack/echo/v4"
)

// SendNotificationHandler 管理員手動送出測試推播
// @Summary     送出推播
// @Tags        notifications
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       topic formData string false "主題，預設 new_books"
// @Param       title formData string true  "標題"
// @Param       body  formData string true  "內文"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /notifications/send [post]
func SendNotificationHandler(pusher notify.Pusher) echo.HandlerFunc {
	return func(c echo.Context) error {
		topic := c.FormValue("topic")
		if topic == "" {
			topic = notify.PushTopic
		}
		title := c.FormValue("title")
		body := c.FormValue("body")
		if title == "" || body == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Title and body are required."})
		}

		if err := pusher.SendToTopic(c.Request().Context(), topic, title, body); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to send notification."})
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification sent successfully"})
	}
}
