// File: internal/handler/files/serve_file_test.go
package files

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ebook-library/internal/storage"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newFileCtx(e *echo.Echo, filename string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/files/"+filename, nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("filename")
	ctx.SetParamValues(filename)
	return ctx, rec
}

func TestServeFileHandler(t *testing.T) {
	e := echo.New()
	dir := t.TempDir()
	store := storage.New(dir, "/files/")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "book_1.pdf"), []byte("%PDF-1.4 payload"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover_1.png"), []byte("png-bytes"), 0o644))

	// missing file
	t.Run("not found", func(t *testing.T) {
		ctx, rec := newFileCtx(e, "nope.pdf")
		require.NoError(t, ServeFileHandler(store)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"File not found."}`, rec.Body.String())
	})

	// pdf 串流與 inline disposition
	t.Run("serves pdf inline", func(t *testing.T) {
		ctx, rec := newFileCtx(e, "book_1.pdf")
		require.NoError(t, ServeFileHandler(store)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "%PDF-1.4 payload", rec.Body.String())
		require.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/pdf")
		require.Equal(t, `inline; filename="book_1.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	})

	// 依副檔名推測 Content-Type
	t.Run("serves image content type", func(t *testing.T) {
		ctx, rec := newFileCtx(e, "cover_1.png")
		require.NoError(t, ServeFileHandler(store)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get(echo.HeaderContentType), "image/png")
	})

	// 路徑跳脫：只取 base name
	t.Run("path traversal is neutralized", func(t *testing.T) {
		ctx, rec := newFileCtx(e, "../../etc/passwd")
		require.NoError(t, ServeFileHandler(store)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
