package model

import "time"

// User mirrors a row of the `users` table. PasswordHash holds the bcrypt
// digest and must never reach a client; handlers expose the PublicUser
// projection instead.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Username     – unique login name.
//	PasswordHash – bcrypt hashed password.
//	Role         – free-form role string (e.g. "admin", "user").
//	CreatedAt    – timestamp assigned by the store on insert.
//	UpdatedAt    – timestamp maintained by the store on update.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// PublicUser is the client-facing view of a user: every column except the
// password hash.
type PublicUser struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
