// File: internal/handler/books/get_book.go
package books

import (
	"errors"
	"net/http"
	"strconv"

	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/repository"

	"github.com/labstack/echo/v4"
)

// GetBookHandler 依 ID 取得單一書籍（公開）
// @Summary     取得書籍
// @Tags        books
// @Produce     json
// @Param       id path int true "書籍 ID"
// @Success     200 {object} model.Book
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Router      /books/{id} [get]
func GetBookHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid book id."})
		}

		book, err := repository.GetBookByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "Book not found."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to fetch book."})
		}
		return c.JSON(http.StatusOK, book)
	}
}
