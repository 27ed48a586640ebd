// File: internal/handler/books/upload_book.go
package books

import (
	"errors"
	"net/http"

	"ebook-library/internal/cache"
	"ebook-library/internal/database"
	"ebook-library/internal/dto"
	"ebook-library/internal/model"
	"ebook-library/internal/notify"
	"ebook-library/internal/repository"
	"ebook-library/internal/storage"

	"github.com/labstack/echo/v4"
)

// UploadBookHandler 管理員上傳新書 (multipart/form-data)
// 流程：驗證表單 → 落地封面與 PDF → 寫入書籍 → 為所有使用者播種未讀紀錄
// → 觸發通知（fire-and-forget，不影響本次請求結果）
// @Summary     上傳新書
// @Tags        books
// @Accept      multipart/form-data
// @Produce     json
// @Param       title       formData string true  "書名"
// @Param       author      formData string true  "作者"
// @Param       description formData string false "描述"
// @Param       cover       formData file   true  "封面圖 (jpg/jpeg/png)"
// @Param       pdf         formData file   true  "書籍 PDF"
// @Success     201 {object} model.Book
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /books/upload [post]
func UploadBookHandler(db database.DB, store *storage.Store, dispatcher *notify.Dispatcher, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.BookUploadRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid form data."})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		coverURL, err := saveUpload(c, store, "cover", storage.KindImage)
		if err != nil {
			return uploadError(c, err)
		}
		pdfURL, err := saveUpload(c, store, "pdf", storage.KindDocument)
		if err != nil {
			return uploadError(c, err)
		}

		book := &model.Book{
			Title:       req.Title,
			Author:      req.Author,
			Description: req.Description,
			CoverURL:    coverURL,
			PdfURL:      pdfURL,
		}
		ctx := c.Request().Context()
		created, err := repository.CreateBook(ctx, db, book)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to create book."})
		}
		if err := repository.SeedUserBooksForBook(ctx, db, created.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to create book."})
		}

		invalidateListCache(c, rdb)
		dispatcher.NewBook(*created)

		return c.JSON(http.StatusCreated, created)
	}
}

// saveUpload 取出表單檔案並交給 storage 落地，回傳公開 URL
func saveUpload(c echo.Context, store *storage.Store, field string, kind storage.Kind) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", errMissingFile(field)
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return store.Save(fh.Filename, kind, src)
}

type missingFileError struct{ field string }

func (e missingFileError) Error() string { return "missing file field: " + e.field }

func errMissingFile(field string) error { return missingFileError{field: field} }

func uploadError(c echo.Context, err error) error {
	var missing missingFileError
	if errors.As(err, &missing) {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Missing " + missing.field + " file."})
	}
	if errors.Is(err, storage.ErrUnsupportedFile) {
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Unsupported file type."})
	}
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to store file."})
}
