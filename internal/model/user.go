// File: internal/model/user.go
package model

import "time"

// Role 表示使用者角色的封閉列舉
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid 檢查角色是否為已知值
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// CanManageBooks 判斷此角色是否可新增或刪除書籍
func (r Role) CanManageBooks() bool {
	return r == RoleAdmin
}

type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
