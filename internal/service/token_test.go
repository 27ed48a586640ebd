// File: internal/service/token_test.go
package service

import (
	"testing"
	"time"

	"ebook-library/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	SetSecret([]byte("unit-test-secret"))
	defer SetSecret(nil)

	user := model.User{Email: "alice@example.com", Role: model.RoleAdmin}

	/* --- 存取令牌往返 --- */
	t.Run("access token round trip", func(t *testing.T) {
		tok, err := IssueAccessToken(user)
		require.NoError(t, err)

		claims, err := ParseToken(tok)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", claims.Subject)
		require.Equal(t, model.RoleAdmin, claims.Role)
		require.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
	})

	/* --- 更新令牌不帶角色 --- */
	t.Run("refresh token omits role", func(t *testing.T) {
		tok, err := IssueRefreshToken(user)
		require.NoError(t, err)

		claims, err := ParseToken(tok)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", claims.Subject)
		require.Empty(t, claims.Role)
		require.WithinDuration(t, time.Now().Add(RefreshTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
	})

	/* --- 過期令牌：簽章正確也必須回報過期，而非無效 --- */
	t.Run("expired token", func(t *testing.T) {
		timeNow = func() time.Time { return time.Now().Add(-time.Hour) }
		tok, err := IssueAccessToken(user)
		timeNow = time.Now
		require.NoError(t, err)

		_, err = ParseToken(tok)
		require.ErrorIs(t, err, ErrTokenExpired)
		require.NotErrorIs(t, err, ErrTokenInvalid)
		require.False(t, ValidateToken(tok))
	})

	/* --- 簽章不符 --- */
	t.Run("wrong signature", func(t *testing.T) {
		tok, err := IssueAccessToken(user)
		require.NoError(t, err)

		SetSecret([]byte("another-secret"))
		_, err = ParseToken(tok)
		SetSecret([]byte("unit-test-secret"))
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	/* --- 格式錯誤 --- */
	t.Run("malformed token", func(t *testing.T) {
		_, err := ParseToken("not-a-jwt")
		require.ErrorIs(t, err, ErrTokenInvalid)
		require.False(t, ValidateToken("not-a-jwt"))
	})

	/* --- 簽章演算法必須為 HMAC --- */
	t.Run("rejects non HMAC method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "alice@example.com"},
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseToken(raw)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	/* --- 有效令牌 --- */
	t.Run("validate token", func(t *testing.T) {
		tok, err := IssueAccessToken(user)
		require.NoError(t, err)
		require.True(t, ValidateToken(tok))
	})
}

func TestTokensWithoutSecret(t *testing.T) {
	SetSecret(nil)

	_, err := IssueAccessToken(model.User{Email: "a@b.c"})
	require.Error(t, err)

	_, err = ParseToken("whatever")
	require.Error(t, err)
}
