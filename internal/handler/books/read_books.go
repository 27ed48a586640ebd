// File: internal/handler/books/read_books.go
package books

import (
	"net/http"

	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/middleware"
	"ebook-library/internal/repository"

	"github.com/labstack/echo/v4"
)

// ReadBooksHandler 列出目前使用者已讀的書籍
// @Summary     已讀書籍列表
// @Tags        books
// @Produce     json
// @Success     200 {array} model.Book
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /books/read [get]
func ReadBooksHandler(db database.DB) echo.HandlerFunc {
	return listByReadState(db, true)
}

// UnreadBooksHandler 列出目前使用者未讀的書籍
// @Summary     未讀書籍列表
// @Tags        books
// @Produce     json
// @Success     200 {array} model.Book
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /books/unread [get]
func UnreadBooksHandler(db database.DB) echo.HandlerFunc {
	return listByReadState(db, false)
}

func listByReadState(db database.DB, read bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, _ := middleware.CurrentIdentity(c)
		books, err := repository.ListBooksByReadState(c.Request().Context(), db, id.Email, read)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to list books."})
		}
		return c.JSON(http.StatusOK, books)
	}
}
