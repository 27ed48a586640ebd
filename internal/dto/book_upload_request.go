// File: internal/dto/book_upload_request.go
package dto

// BookUploadRequest 新書上傳的表單欄位 (multipart/form-data，檔案另取)
// swagger:model dto.BookUploadRequest
type BookUploadRequest struct {
	Title       string `form:"title" validate:"required" example:"Dune"`
	Author      string `form:"author" validate:"required" example:"Herbert"`
	Description string `form:"description" example:"A desert planet saga"`
}
