// File: internal/handler/books/mark_read.go
package books

import (
	"errors"
	"net/http"
	"strconv"

	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/middleware"
	"ebook-library/internal/repository"

	"github.com/labstack/echo/v4"
)

// MarkReadHandler 將書籍標記為已讀
// @Summary     標記已讀
// @Tags        books
// @Produce     json
// @Param       id path int true "書籍 ID"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /books/{id}/mark-read [put]
func MarkReadHandler(db database.DB) echo.HandlerFunc {
	return setReadState(db, true, "Book marked as read.")
}

// MarkUnreadHandler 將書籍標記為未讀
// @Summary     標記未讀
// @Tags        books
// @Produce     json
// @Param       id path int true "書籍 ID"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /books/{id}/mark-unread [put]
func MarkUnreadHandler(db database.DB) echo.HandlerFunc {
	return setReadState(db, false, "Book marked as unread.")
}

// setReadState upsert 使用者對書籍的閱讀狀態，重複套用同值為冪等
func setReadState(db database.DB, read bool, message string) echo.HandlerFunc {
	return func(c echo.Context) error {
		bookID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid book id."})
		}
		identity, _ := middleware.CurrentIdentity(c)
		ctx := c.Request().Context()

		user, err := repository.GetUserByEmail(ctx, db, identity.Email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "User not found."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to update read state."})
		}

		// 先確認書籍存在，upsert 不會自己報 404
		if _, err := repository.GetBookByID(ctx, db, bookID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "Book not found."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to update read state."})
		}

		if err := repository.SetReadState(ctx, db, user.ID, bookID, read); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to update read state."})
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
	}
}
