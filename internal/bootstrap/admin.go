// File: internal/bootstrap/admin.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ebook-library/internal/database"
	"ebook-library/internal/model"
	"ebook-library/internal/repository"
	"ebook-library/internal/service"
)

// EnsureAdminUser 確保系統中存在預設管理員，冪等
// 憑證未提供時記錄並跳過；該 email 已存在時不動作
// 新建時同樣為所有既有書籍播種未讀紀錄
func EnsureAdminUser(ctx context.Context, db database.DB, email, password string) error {
	if email == "" || password == "" {
		log.Print("bootstrap: admin credentials not set, skipping admin user initialization")
		return nil
	}

	if _, err := repository.GetUserByEmail(ctx, db, email); err == nil {
		log.Printf("bootstrap: admin user already exists: %s", email)
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("bootstrap: lookup admin: %w", err)
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("bootstrap: hash admin password: %w", err)
	}
	admin := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	created, err := repository.CreateUser(ctx, db, admin)
	if err != nil {
		return fmt.Errorf("bootstrap: create admin: %w", err)
	}
	if err := repository.SeedUserBooksForUser(ctx, db, created.ID); err != nil {
		return fmt.Errorf("bootstrap: seed admin user_books: %w", err)
	}

	log.Printf("bootstrap: default admin user created: %s", email)
	return nil
}
