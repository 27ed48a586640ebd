// File: internal/repository/user_book.go
package repository

import (
	"context"
	"fmt"

	"ebook-library/internal/database"
)

// SeedUserBooksForUser 為新使用者補齊所有既有書籍的未讀紀錄
// 單一語句完成，(user_id, book_id) 唯一約束讓並發播種自我修復
func SeedUserBooksForUser(ctx context.Context, db database.DB, userID int) error {
	_, err := db.Exec(ctx,
		`INSERT INTO user_books (user_id, book_id, read)
		 SELECT $1, id, FALSE FROM books
		 ON CONFLICT (user_id, book_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SeedUserBooksForUser: %w", err)
	}
	return nil
}

// SeedUserBooksForBook 為新書補齊所有既有使用者的未讀紀錄
func SeedUserBooksForBook(ctx context.Context, db database.DB, bookID int) error {
	_, err := db.Exec(ctx,
		`INSERT INTO user_books (user_id, book_id, read)
		 SELECT id, $1, FALSE FROM users
		 ON CONFLICT (user_id, book_id) DO NOTHING`,
		bookID,
	)
	if err != nil {
		return fmt.Errorf("SeedUserBooksForBook: %w", err)
	}
	return nil
}

// SetReadState upsert 使用者對書籍的閱讀狀態，重複套用同值為冪等
func SetReadState(ctx context.Context, db database.DB, userID, bookID int, read bool) error {
	_, err := db.Exec(ctx,
		`INSERT INTO user_books (user_id, book_id, read)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, book_id) DO UPDATE SET read = EXCLUDED.read`,
		userID,
		bookID,
		read,
	)
	if err != nil {
		return fmt.Errorf("SetReadState: %w", err)
	}
	return nil
}
