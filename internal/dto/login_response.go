// File: internal/dto/login_response.go
package dto

// LoginResponse 登入成功時回傳兩組令牌與使用者角色
// swagger:model dto.LoginResponse
type LoginResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOi..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOi..."`
	Role         string `json:"role" example:"USER"`
}
