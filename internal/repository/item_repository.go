package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/user-item-service/internal/model"
)

// ItemRepo persists items over the shared pool.
type ItemRepo struct{ DB *sql.DB }

func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{DB: db} }

// Create inserts an item and returns its ID.
func (r *ItemRepo) Create(ctx context.Context, name string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx, "INSERT INTO items (name) VALUES (?)", name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single item.
func (r *ItemRepo) GetByID(ctx context.Context, id uint64) (model.Item, error) {
	var it model.Item
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM items WHERE id=? LIMIT 1",
		id).Scan(&it.ID, &it.Name, &it.CreatedAt, &it.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Item{}, ErrNotFound
	}
	return it, err
}

// List returns all items.
func (r *ItemRepo) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM items ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update renames an item. Zero affected rows map to ErrNotFound.
func (r *ItemRepo) Update(ctx context.Context, id uint64, name string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE items SET name=? WHERE id=?", name, id)
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

// Delete removes an item. Zero affected rows map to ErrNotFound.
func (r *ItemRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM items WHERE id=?", id)
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
