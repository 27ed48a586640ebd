// File: internal/handler/auth/signup_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"ebook-library/internal/database"
	"ebook-library/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSignupHandler(t *testing.T) {

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newAuthCtx(e, "")
	h := SignupHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newAuthCtx(e, `{"email":"not-an-email","password":""}`)
	h = SignupHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// duplicate email
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, `{"email":"a@b.c","password":"pw"}`)
	h = SignupHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{err: &pgconn.PgError{Code: "23505"}}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Email already taken."}`, rec.Body.String())

	// create error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, `{"email":"a@b.c","password":"pw"}`)
	h = SignupHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{err: errors.New("insert failed")}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// seeding error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, `{"email":"a@b.c","password":"pw"}`)
	h = SignupHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeUserRow{u: model.User{ID: 9, CreatedAt: time.Now()}}
		},
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("seed failed")
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success：建立 USER 角色、email 小寫、播種既有書籍
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, `{"email":"New.User@Example.com","password":"pw"}`)
	var insertedEmail string
	var insertedRole model.Role
	var seededUserID any
	h = SignupHandler(&database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			insertedEmail = args[0].(string)
			insertedRole = args[2].(model.Role)
			return fakeUserRow{u: model.User{ID: 9, CreatedAt: time.Now()}}
		},
		ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
			seededUserID = args[0]
			return pgconn.NewCommandTag("INSERT 0 2"), nil
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())
	require.Equal(t, "new.user@example.com", insertedEmail)
	require.Equal(t, model.RoleUser, insertedRole)
	require.Equal(t, 9, seededUserID)
}
