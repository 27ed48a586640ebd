// File: internal/dto/signup_request.go
package dto

// SignupRequest 註冊請求 (JSON body)
// swagger:model dto.SignupRequest
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
