// File: internal/storage/storage.go
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Kind 宣告上傳檔案的種類，決定允許的副檔名
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

// ErrUnsupportedFile 副檔名不在該種類的白名單內
var ErrUnsupportedFile = errors.New("unsupported file type")

var allowedExts = map[Kind]map[string]bool{
	KindImage:    {".jpg": true, ".jpeg": true, ".png": true},
	KindDocument: {".pdf": true},
}

var timeNow = time.Now

// Store 將上傳檔寫入本機目錄並對映為公開 URL
type Store struct {
	Dir       string
	URLPrefix string
}

func New(dir, urlPrefix string) *Store {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &Store{Dir: dir, URLPrefix: urlPrefix}
}

// Save 驗證副檔名後以防碰撞檔名落地，回傳公開 URL
// 產生的檔名為「原始檔名主幹_unix奈秒.副檔名」，避免並發上傳互相覆寫
func (s *Store) Save(filename string, kind Kind, r io.Reader) (string, error) {
	// 去除任何路徑成分，只留檔名
	filename = filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExts[kind][ext] {
		return "", fmt.Errorf("%w: %q for kind %s", ErrUnsupportedFile, ext, kind)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	generated := base + "_" + strconv.FormatInt(timeNow().UnixNano(), 10) + ext

	f, err := os.Create(filepath.Join(s.Dir, generated))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return s.URLPrefix + generated, nil
}

// Delete 由公開 URL 反推儲存檔名並移除檔案
func (s *Store) Delete(url string) error {
	name := path.Base(url)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("storage: invalid url %q", url)
	}
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil {
		return fmt.Errorf("storage: delete %s: %w", name, err)
	}
	return nil
}

// Path 回傳檔名對應的本機路徑（僅取 base name，防止路徑跳脫）
func (s *Store) Path(filename string) string {
	return filepath.Join(s.Dir, filepath.Base(filename))
}
