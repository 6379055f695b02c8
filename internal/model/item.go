package model

import "time"

// Item is a generic named resource. Items are global: they carry no
// ownership link to the user that created them.
type Item struct {
	ID        uint64    `json:"id"`         // items.id
	Name      string    `json:"name"`       // items.name
	CreatedAt time.Time `json:"created_at"` // items.created_at
	UpdatedAt time.Time `json:"updated_at"` // items.updated_at
}
