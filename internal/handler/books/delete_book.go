// File: internal/handler/books/delete_book.go
package books

import (
	"errors"
	"net/http"
	"strconv"

	"ebook-library/internal/cache"
	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/repository"
	"ebook-library/internal/storage"

	"github.com/labstack/echo/v4"
)

// DeleteBookHandler 管理員刪除書籍
// 先刪除兩個關聯檔案，任何一個失敗即中止整個刪除（不留下半刪狀態）
// 書籍列刪除後 user_books 由外鍵連帶刪除
// @Summary     刪除書籍
// @Tags        books
// @Produce     json
// @Param       id path int true "書籍 ID"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /books/{id} [delete]
func DeleteBookHandler(db database.DB, store *storage.Store, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid book id."})
		}
		ctx := c.Request().Context()

		book, err := repository.GetBookByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "Book not found."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to delete book."})
		}

		if err := store.Delete(book.CoverURL); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to delete stored files."})
		}
		if err := store.Delete(book.PdfURL); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to delete stored files."})
		}

		if err := repository.DeleteBook(ctx, db, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "Book not found."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to delete book."})
		}

		invalidateListCache(c, rdb)
		return c.NoContent(http.StatusNoContent)
	}
}
