// File: internal/dto/book_notification.go
package dto

// BookNotification 新書事件經 WebSocket 廣播的內容
// swagger:model dto.BookNotification
type BookNotification struct {
	Title   string `json:"title" example:"Dune"`
	Author  string `json:"author" example:"Herbert"`
	Message string `json:"message" example:"A new book has been added!"`
}
