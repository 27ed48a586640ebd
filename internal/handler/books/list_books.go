// File: internal/handler/books/list_books.go
package books

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"ebook-library/internal/cache"
	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/model"
	"ebook-library/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	listCacheKey = "books:all"
	listCacheTTL = 60 * time.Second
)

// ListBooksHandler 列出全部書籍（公開）
// 先查 Redis 快取，未命中才讀資料庫並回填；快取錯誤只記錄並落回資料庫
// @Summary     列出所有書籍
// @Tags        books
// @Produce     json
// @Success     200 {array} model.Book
// @Failure     500 {object} dto.HTTPError
// @Router      /books [get]
func ListBooksHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, listCacheKey).Result(); err == nil {
			var books []model.Book
			if err := json.Unmarshal([]byte(cached), &books); err == nil {
				return c.JSON(http.StatusOK, books)
			}
		} else if err != redis.Nil {
			log.Printf("books: cache read failed: %v", err)
		}

		books, err := repository.ListBooks(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to list books."})
		}

		if payload, err := json.Marshal(books); err == nil {
			if err := rdb.Set(ctx, listCacheKey, payload, listCacheTTL).Err(); err != nil {
				log.Printf("books: cache write failed: %v", err)
			}
		}
		return c.JSON(http.StatusOK, books)
	}
}

// invalidateListCache 書籍異動後清除列表快取，失敗只記錄
func invalidateListCache(c echo.Context, rdb cache.Cache) {
	if err := rdb.Del(c.Request().Context(), listCacheKey).Err(); err != nil {
		log.Printf("books: cache invalidation failed: %v", err)
	}
}
