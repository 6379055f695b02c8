package handler_test

import (
	"database/sql/driver"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/user-item-service/internal/utils"
)

// bcryptOf matches any valid bcrypt digest of the given plaintext,
// proving the handler re-hashed the password instead of storing it raw.
type bcryptOf struct{ plain string }

func (b bcryptOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && s != b.plain && utils.VerifyPassword(s, b.plain)
}

func TestListUsers_NeverLeaksPasswordHash(t *testing.T) {
	e, mock := newTestServer(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT id, username, role, created_at, updated_at FROM users ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role", "created_at", "updated_at"}).
			AddRow(1, "alice", "admin", now, now).
			AddRow(2, "bob", "user", now, now))

	rec := do(e, http.MethodGet, "/users", "", token(t))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"username":"alice"`)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestListUsers_RequiresToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery("SELECT id, username, role, created_at, updated_at FROM users WHERE id=\\?").
		WithArgs(uint64(404)).
		WillReturnError(errNoRows())

	rec := do(e, http.MethodGet, "/users/404", "", token(t))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}

func TestGetUser_NonNumericID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/users/abc", "", token(t))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// Updating only the role must produce an UPDATE that assigns the role
// column and nothing else.
func TestUpdateUser_RoleOnly(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role=? WHERE id=?")).
		WithArgs("admin", uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := do(e, http.MethodPut, "/users/3", `{"role":"admin"}`, token(t))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"User updated successfully"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_PasswordIsRehashed(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash=? WHERE id=?")).
		WithArgs(bcryptOf{plain: "newpw"}, uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := do(e, http.MethodPut, "/users/3", `{"password":"newpw"}`, token(t))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

// An empty body provides zero columns; the handler must reject it without
// executing any statement.
func TestUpdateUser_EmptyBody(t *testing.T) {
	e, mock := newTestServer(t)

	rec := do(e, http.MethodPut, "/users/3", `{}`, token(t))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"no fields to update"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_NotFound(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role=? WHERE id=?")).
		WithArgs("admin", uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := do(e, http.MethodPut, "/users/99", `{"role":"admin"}`, token(t))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_Success(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id=?")).
		WithArgs(uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := do(e, http.MethodDelete, "/users/2", "", token(t))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())
}

func TestDeleteUser_NotFound(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id=?")).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := do(e, http.MethodDelete, "/users/99", "", token(t))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}
