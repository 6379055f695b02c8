// Package repository implements data access over the shared *sql.DB pool.
// Sentinel errors defined here let handlers distinguish failure scenarios
// without inspecting driver-specific error text.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row, or when an update
// or delete affects zero rows. Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when an insert or update violates the
// unique constraint on users.username. Handlers translate it into 409.
var ErrUsernameExists = errors.New("username already exists")

// ErrNoFields is returned by partial updates when no column was assigned.
// Executing an UPDATE with an empty SET clause is invalid SQL, so the
// condition is rejected before any statement is built.
var ErrNoFields = errors.New("no fields to update")
