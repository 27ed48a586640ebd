// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"ebook-library/internal/model"
)

// ErrInvalidCredentials 帳密驗證失敗的統一訊號
// 不區分「查無使用者」與「密碼錯誤」，避免洩漏帳號是否存在
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUser 根據使用者結構和明文密碼驗證，成功回傳使用者
func AuthenticateUser(ctx context.Context, user model.User, password string) (*model.User, error) {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
