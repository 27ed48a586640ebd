// File: internal/repository/book.go
package repository

import (
	"context"
	"fmt"

	"ebook-library/internal/database"
	"ebook-library/internal/model"
)

const bookColumns = `id, title, author, description, cover_url, pdf_url, created_at`

func ListBooks(ctx context.Context, db database.DB) ([]model.Book, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBooks: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Author,
			&b.Description,
			&b.CoverURL,
			&b.PdfURL,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListBooks: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBooks: %w", err)
	}
	return books, nil
}

func GetBookByID(ctx context.Context, db database.DB, bookID int) (*model.Book, error) {
	row := db.QueryRow(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`,
		bookID,
	)
	b := &model.Book{}
	if err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Description,
		&b.CoverURL,
		&b.PdfURL,
		&b.CreatedAt,
	); err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("GetBookByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetBookByID: %w", err)
	}
	return b, nil
}

// ListBooksByReadState 依使用者 email 與閱讀狀態列出書籍
func ListBooksByReadState(ctx context.Context, db database.DB, email string, read bool) ([]model.Book, error) {
	rows, err := db.Query(ctx,
		`SELECT b.id, b.title, b.author, b.description, b.cover_url, b.pdf_url, b.created_at
		 FROM books b
		 JOIN user_books ub ON ub.book_id = b.id
		 JOIN users u ON u.id = ub.user_id
		 WHERE u.email = $1 AND ub.read = $2
		 ORDER BY b.id`,
		email,
		read,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBooksByReadState: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Author,
			&b.Description,
			&b.CoverURL,
			&b.PdfURL,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListBooksByReadState: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBooksByReadState: %w", err)
	}
	return books, nil
}

func CreateBook(ctx context.Context, db database.DB, b *model.Book) (*model.Book, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO books (title, author, description, cover_url, pdf_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		b.Title,
		b.Author,
		b.Description,
		b.CoverURL,
		b.PdfURL,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateBook: %w", err)
	}
	return b, nil
}

// DeleteBook 刪除書籍，user_books 由外鍵 ON DELETE CASCADE 連帶刪除
func DeleteBook(ctx context.Context, db database.DB, bookID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM books WHERE id = $1`,
		bookID,
	)
	if err != nil {
		return fmt.Errorf("DeleteBook: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteBook: %w", ErrNotFound)
	}
	return nil
}
