package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/user-item-service/internal/model"
)

// UserRepo persists users over the shared pool.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// userColumns is the non-secret projection used by list/get queries; the
// password hash is only selected where verification needs it.
const userColumns = "id, username, role, created_at, updated_at"

// Create inserts a user row and returns its ID. The caller supplies an
// already hashed password. A duplicate username maps to ErrUsernameExists.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash, role string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role) VALUES (?,?,?)",
		username, passwordHash, role)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a full user row, hash included, for login.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, created_at, updated_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches the public projection of a user.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.PublicUser, error) {
	var u model.PublicUser
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.PublicUser{}, ErrNotFound
	}
	return u, err
}

// List returns the public projection of every user.
func (r *UserRepo) List(ctx context.Context) ([]model.PublicUser, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.PublicUser, 0)
	for rows.Next() {
		var u model.PublicUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UserUpdate carries the optional fields of a partial update. Nil means
// "leave unchanged". PasswordHash, when set, is already hashed.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Role         *string
}

// Update applies the provided subset of fields to a user. An empty subset
// fails with ErrNoFields before touching the database; zero affected rows
// map to ErrNotFound.
func (r *UserRepo) Update(ctx context.Context, id uint64, upd UserUpdate) error {
	b := newUpdateBuilder("users")
	if upd.Username != nil {
		b.Set("username", *upd.Username)
	}
	if upd.PasswordHash != nil {
		b.Set("password_hash", *upd.PasswordHash)
	}
	if upd.Role != nil {
		b.Set("role", *upd.Role)
	}
	query, args, err := b.Build("id", id)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicate(err) {
			return ErrUsernameExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user row. Zero affected rows map to ErrNotFound.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// isDuplicate detects a MySQL duplicate-key violation (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
