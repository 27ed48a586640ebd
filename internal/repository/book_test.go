// File: internal/repository/book_test.go
package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ebook-library/internal/database"
	"ebook-library/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeBookRows 以書籍切片充當 pgx.Rows
type fakeBookRows struct {
	books   []model.Book
	idx     int
	scanErr error
	rowsErr error
}

func (r *fakeBookRows) Close()                                       {}
func (r *fakeBookRows) Err() error                                   { return r.rowsErr }
func (r *fakeBookRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeBookRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeBookRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeBookRows) RawValues() [][]byte                          { return nil }
func (r *fakeBookRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeBookRows) Next() bool {
	if r.idx >= len(r.books) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeBookRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	b := r.books[r.idx-1]
	*dest[0].(*int) = b.ID
	*dest[1].(*string) = b.Title
	*dest[2].(*string) = b.Author
	*dest[3].(*string) = b.Description
	*dest[4].(*string) = b.CoverURL
	*dest[5].(*string) = b.PdfURL
	*dest[6].(*time.Time) = b.CreatedAt
	return nil
}

// fakeBookRow 支援 7 欄的查詢與 2 欄的 CreateBook RETURNING
type fakeBookRow struct {
	scanErr error
	book    *model.Book
}

func (r *fakeBookRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	b := r.book
	switch len(dest) {
	case 7:
		*dest[0].(*int) = b.ID
		*dest[1].(*string) = b.Title
		*dest[2].(*string) = b.Author
		*dest[3].(*string) = b.Description
		*dest[4].(*string) = b.CoverURL
		*dest[5].(*string) = b.PdfURL
		*dest[6].(*time.Time) = b.CreatedAt
	case 2:
		*dest[0].(*int) = b.ID
		*dest[1].(*time.Time) = b.CreatedAt
	default:
		panic("fakeBookRow.Scan: unexpected dest count")
	}
	return nil
}

/* ---------- 完整測試 ---------- */

func TestBookRepository(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Book{
		ID:          3,
		Title:       "The Go Programming Language",
		Author:      "Donovan & Kernighan",
		Description: "經典教材",
		CoverURL:    "/files/tgpl_1.png",
		PdfURL:      "/files/tgpl_1.pdf",
		CreatedAt:   now,
	}

	/* --- ListBooks --- */
	t.Run("ListBooks success", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeBookRows{books: []model.Book{sample}}, nil
			},
		}
		books, err := ListBooks(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, books, 1)
		require.Equal(t, sample.Title, books[0].Title)
	})

	t.Run("ListBooks empty is not nil", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeBookRows{}, nil
			},
		}
		books, err := ListBooks(context.Background(), p)
		require.NoError(t, err)
		require.NotNil(t, books)
		require.Empty(t, books)
	})

	t.Run("ListBooks query error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query failed")
			},
		}
		_, err := ListBooks(context.Background(), p)
		require.Error(t, err)
	})

	t.Run("ListBooks rows error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeBookRows{rowsErr: errors.New("broken stream")}, nil
			},
		}
		_, err := ListBooks(context.Background(), p)
		require.Error(t, err)
	})

	/* --- GetBookByID --- */
	t.Run("GetBookByID success", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeBookRow{book: &sample}
			},
		}
		b, err := GetBookByID(context.Background(), p, 3)
		require.NoError(t, err)
		require.Equal(t, sample.PdfURL, b.PdfURL)
	})

	t.Run("GetBookByID not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeBookRow{scanErr: pgx.ErrNoRows}
			},
		}
		b, err := GetBookByID(context.Background(), p, 999)
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, b)
	})

	/* --- ListBooksByReadState --- */
	t.Run("ListBooksByReadState filters by args", func(t *testing.T) {
		var gotEmail string
		var gotRead bool
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				gotEmail = args[0].(string)
				gotRead = args[1].(bool)
				return &fakeBookRows{books: []model.Book{sample}}, nil
			},
		}
		books, err := ListBooksByReadState(context.Background(), p, "alice@example.com", true)
		require.NoError(t, err)
		require.Len(t, books, 1)
		require.Equal(t, "alice@example.com", gotEmail)
		require.True(t, gotRead)
	})

	/* --- CreateBook --- */
	t.Run("CreateBook success", func(t *testing.T) {
		newBook := &model.Book{Title: "New", Author: "Someone", CoverURL: "/files/c.png", PdfURL: "/files/c.pdf"}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				b := *newBook
				b.ID = 11
				b.CreatedAt = now
				return &fakeBookRow{book: &b}
			},
		}
		created, err := CreateBook(context.Background(), p, newBook)
		require.NoError(t, err)
		require.Equal(t, 11, created.ID)
	})

	t.Run("CreateBook error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeBookRow{scanErr: errors.New("insert failed")}
			},
		}
		_, err := CreateBook(context.Background(), p, &model.Book{})
		require.Error(t, err)
	})

	/* --- DeleteBook --- */
	t.Run("DeleteBook success", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteBook(context.Background(), p, 3))
	})

	t.Run("DeleteBook not found", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		err := DeleteBook(context.Background(), p, 999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteBook error", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("delete failed")
			},
		}
		require.Error(t, DeleteBook(context.Background(), p, 3))
	})
}
