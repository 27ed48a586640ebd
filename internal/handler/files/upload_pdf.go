// File: internal/handler/files/upload_pdf.go
package files

import (
	"errors"
	"net/http"

	"ebook-library/internal/dto"
	"ebook-library/internal/storage"

	"github.com/labstack/echo/v4"
)

// UploadPdfHandler 管理員單獨上傳 PDF，回傳公開 URL
// @Summary     上傳 PDF
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "PDF 檔案"
// @Success     200 {object} dto.UploadResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /upload/pdf [post]
func UploadPdfHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "No file selected."})
		}
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to read file."})
		}
		defer src.Close()

		url, err := store.Save(fh.Filename, storage.KindDocument, src)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedFile) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Only PDF files are supported."})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "File upload failed."})
		}
		return c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
	}
}
