// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"ebook-library/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL 存取令牌有效期限
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL 更新令牌有效期限
	RefreshTokenTTL = 2 * time.Hour
)

var (
	// ErrTokenExpired 令牌已過期（簽章正確）
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid 令牌格式錯誤或簽章不符
	ErrTokenInvalid = errors.New("token invalid")
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Claims 定義 JWT 負載內容
// subject 為使用者 email；role 僅存在於存取令牌
// 更新令牌不帶角色，刷新時一律重讀資料庫的最新角色
type Claims struct {
	Role model.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// IssueAccessToken 產生存取令牌，subject=email、含角色、效期 15 分鐘
func IssueAccessToken(user model.User) (string, error) {
	return issueToken(user.Email, user.Role, AccessTokenTTL)
}

// IssueRefreshToken 產生更新令牌，subject=email、不含角色、效期 2 小時
func IssueRefreshToken(user model.User) (string, error) {
	return issueToken(user.Email, "", RefreshTokenTTL)
}

func issueToken(email string, role model.Role, ttl time.Duration) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseToken 驗證並解析令牌
// 過期回傳 ErrTokenExpired；格式錯誤或簽章不符回傳 ErrTokenInvalid
// 不容忍時鐘偏移（無 leeway）
func ParseToken(tokenString string) (*Claims, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ValidateToken 簽章正確且未過期時回傳 true
func ValidateToken(tokenString string) bool {
	_, err := ParseToken(tokenString)
	return err == nil
}
