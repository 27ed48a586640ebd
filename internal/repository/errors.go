// File: internal/repository/errors.go
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken email 已被註冊（唯一約束違反）
	ErrEmailTaken = errors.New("email already taken")
)

// uniqueViolation PostgreSQL 唯一約束違反 (SQLSTATE 23505)
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func notFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
