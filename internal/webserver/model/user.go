package model

import "time"

// User mirrors the accounts managed by the external identity platform.
// This service only reads them, to resolve collaborators by id or email.
type User struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex; not null"`
	Name      string
}
