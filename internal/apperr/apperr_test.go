package apperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	t.Parallel()

	cases := map[Kind]int{
		ValidationMissing:  http.StatusBadRequest,
		InvalidCredentials: http.StatusBadRequest,
		Unauthenticated:    http.StatusUnauthorized,
		InvalidToken:       http.StatusForbidden,
		NotFound:           http.StatusNotFound,
		Conflict:           http.StatusConflict,
		StoreError:         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.Status())
	}
}

func TestWrap_KeepsCauseOutOfMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := Wrap(StoreError, "query failed", cause)
	require.ErrorIs(t, err, cause)
	require.True(t, IsKind(err, StoreError))
	require.Equal(t, "query failed", err.Msg)
}

func serve(t *testing.T, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler()
	e.GET("/x", h)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	t.Parallel()

	rec := serve(t, func(c echo.Context) error {
		return New(NotFound, "user not found")
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}

func TestHTTPErrorHandler_WrappedCauseNotLeaked(t *testing.T) {
	t.Parallel()

	rec := serve(t, func(c echo.Context) error {
		return Wrap(StoreError, "query failed", errors.New("secret dsn detail"))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"query failed"}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "dsn")
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	t.Parallel()

	rec := serve(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.JSONEq(t, `{"error":"short and stout"}`, rec.Body.String())
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	t.Parallel()

	rec := serve(t, func(c echo.Context) error {
		return errors.New("boom")
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
