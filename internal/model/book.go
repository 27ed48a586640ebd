// File: internal/model/book.go
package model

import "time"

type Book struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Author      string    `db:"author" json:"author"`
	Description string    `db:"description" json:"description"`
	CoverURL    string    `db:"cover_url" json:"cover_url"`
	PdfURL      string    `db:"pdf_url" json:"pdf_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
