// File: internal/dto/token_response.go
package dto

// TokenResponse 刷新後的新存取令牌
// swagger:model dto.TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOi..."`
}
