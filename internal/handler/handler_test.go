package handler_test

import (
	"database/sql"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/user-item-service/internal/apperr"
	"github.com/iliyamo/user-item-service/internal/config"
	"github.com/iliyamo/user-item-service/internal/handler"
	"github.com/iliyamo/user-item-service/internal/middleware"
	"github.com/iliyamo/user-item-service/internal/repository"
	"github.com/iliyamo/user-item-service/internal/router"
	"github.com/iliyamo/user-item-service/internal/utils"
)

const testSecret = "handler-test-secret"

// newTestServer wires the real router, handlers and repositories onto a
// sqlmock-backed pool, with the cache middleware disabled. Requests go
// through e.ServeHTTP so middleware and error translation behave exactly
// as in production.
func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		JWTSecret:   testSecret,
		TokenTTLMin: 60,
		BcryptCost:  bcrypt.MinCost,
	}
	users := repository.NewUserRepo(db)
	items := repository.NewItemRepo(db)

	e := echo.New()
	e.HTTPErrorHandler = apperr.HTTPErrorHandler()
	cacheGET := middleware.NewRedisCache(config.CacheConfig{Enabled: false}, nil)
	router.Register(e,
		handler.NewAuthHandler(cfg, users),
		handler.NewUserHandler(cfg, users),
		handler.NewItemHandler(items),
		cfg.JWTSecret,
		cacheGET,
	)
	return e, mock
}

// do performs a request against the test server, optionally with a JSON
// body and bearer token.
func do(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// token issues a valid access token for the test secret.
func token(t *testing.T) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, 1, "tester", "admin", 60)
	require.NoError(t, err)
	return tok.Token
}

// errNoRows mimics a lookup matching no row.
func errNoRows() error { return sql.ErrNoRows }

// errDuplicate mimics the MySQL duplicate-key error text.
func errDuplicate() error {
	return errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'users.uq_users_username'")
}
