// File: internal/dto/upload_response.go
package dto

// UploadResponse 檔案上傳成功後的公開 URL
// swagger:model dto.UploadResponse
type UploadResponse struct {
	URL string `json:"url" example:"/files/dune_1715000000000000000.pdf"`
}
