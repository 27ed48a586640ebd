// File: internal/service/authentication_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"ebook-library/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("p@ssw0rd")
	require.NoError(t, err)
	require.NotEqual(t, "p@ssw0rd", hash)

	require.NoError(t, ComparePassword(hash, "p@ssw0rd"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPasswordError(t *testing.T) {
	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("boom") }
	defer func() { bcryptGenerateFromPassword = bcrypt.GenerateFromPassword }()

	_, err := HashPassword("x")
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	user := model.User{ID: 3, Email: "bob@example.com", PasswordHash: hash, Role: model.RoleUser}

	t.Run("success", func(t *testing.T) {
		got, err := AuthenticateUser(context.Background(), user, "secret")
		require.NoError(t, err)
		require.Equal(t, user.Email, got.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		got, err := AuthenticateUser(context.Background(), user, "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Nil(t, got)
	})
}
