package entity

import "time"

// Category is part of the fixed taxonomy seeded at bootstrap. Posts reference
// categories by id; nothing creates categories at runtime.
type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tag labels posts. Beyond the seeded set, tags are created on demand when a
// post is authored with a previously unseen tag name.
type Tag struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
