package repository

import (
	"errors"
	"testing"
)

func TestUpdateBuilder_SingleColumn(t *testing.T) {
	t.Parallel()

	b := newUpdateBuilder("users")
	b.Set("role", "admin")

	query, args, err := b.Build("id", uint64(5))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if query != "UPDATE users SET role=? WHERE id=?" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 2 || args[0] != "admin" || args[1] != uint64(5) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_MultipleColumnsKeepOrder(t *testing.T) {
	t.Parallel()

	b := newUpdateBuilder("users")
	b.Set("username", "alice")
	b.Set("password_hash", "$2a$10$x")
	b.Set("role", "user")

	query, args, err := b.Build("id", uint64(1))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := "UPDATE users SET username=?, password_hash=?, role=? WHERE id=?"
	if query != want {
		t.Fatalf("query mismatch:\n got %q\nwant %q", query, want)
	}
	if len(args) != 4 || args[3] != uint64(1) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_EmptyFails(t *testing.T) {
	t.Parallel()

	b := newUpdateBuilder("users")
	if _, _, err := b.Build("id", uint64(1)); !errors.Is(err, ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}
