// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a successful registration. It
// carries enough for downstream consumers (welcome mail, analytics) to act
// without querying the primary database. The password hash never leaves
// the service.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
}

// ItemCreatedEvent is published after an item is created.
type ItemCreatedEvent struct {
	ItemID    uint64 `json:"item_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
