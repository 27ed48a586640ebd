// File: internal/dto/message_response.go
package dto

// MessageResponse 簡單訊息回應模型
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"User registered successfully"`
}
