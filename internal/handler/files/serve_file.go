// File: internal/handler/files/serve_file.go
package files

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"ebook-library/internal/dto"
	"ebook-library/internal/storage"

	"github.com/labstack/echo/v4"
)

// ServeFileHandler 由上傳目錄串流檔案 (GET /files/:filename)
// 依副檔名推測 Content-Type，推測不到時預設 application/pdf
// 以 inline disposition 回傳，讓瀏覽器直接顯示
// @Summary     取得已上傳檔案
// @Tags        files
// @Param       filename path string true "檔案名稱"
// @Success     200 {file} binary
// @Failure     404 {object} dto.HTTPError
// @Router      /files/{filename} [get]
func ServeFileHandler(store *storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		filename := filepath.Base(c.Param("filename"))
		path := store.Path(filename)

		f, err := os.Open(path)
		if err != nil {
			return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "File not found."})
		}
		defer f.Close()

		contentType := mime.TypeByExtension(filepath.Ext(filename))
		if contentType == "" {
			contentType = "application/pdf"
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf("inline; filename=%q", filename))
		return c.Stream(http.StatusOK, contentType, f)
	}
}
