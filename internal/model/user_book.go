// File: internal/model/user_book.go
package model

// UserBook 紀錄單一使用者對單一書籍的閱讀狀態
// (user_id, book_id) 具唯一約束，雙親刪除時連帶刪除
type UserBook struct {
	ID     int  `db:"id" json:"id"`
	UserID int  `db:"user_id" json:"user_id"`
	BookID int  `db:"book_id" json:"book_id"`
	Read   bool `db:"read" json:"read"`
}
