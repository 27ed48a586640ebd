// File: internal/service/secret.go
package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
)

// secretKey 為 HMAC-SHA256 簽章金鑰，啟動時由 LoadSecret 載入
var secretKey []byte

var osReadFile = os.ReadFile

// LoadSecret 從 JWT_SECRET_PATH 指向的檔案或 JWT_SECRET 環境變數載入簽章金鑰
// 兩者皆未設定或檔案不可讀時回傳錯誤，啟動流程應直接中止（沒有安全的預設值）
func LoadSecret() ([]byte, error) {
	if path := os.Getenv("JWT_SECRET_PATH"); path != "" {
		raw, err := osReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("讀取 JWT 金鑰檔失敗: %w", err)
		}
		return decodeSecret(strings.TrimSpace(string(raw)))
	}
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return decodeSecret(s)
	}
	return nil, errors.New("環境變數 JWT_SECRET_PATH 或 JWT_SECRET 未設定")
}

// SetSecret 安裝簽章金鑰，供 token 相關操作使用
func SetSecret(key []byte) {
	secretKey = key
}

// decodeSecret 金鑰以 base64 儲存時先解碼，否則直接使用原始位元組
func decodeSecret(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("JWT 金鑰為空")
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return []byte(s), nil
}

func signingKey() ([]byte, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("JWT 金鑰尚未載入")
	}
	return secretKey, nil
}
