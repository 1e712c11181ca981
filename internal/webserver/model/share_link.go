package model

import "time"

// ShareLink grants time- and optionally password-bounded anonymous read
// access to a single resource through its public share code
type ShareLink struct {
	ID            string `gorm:"primarykey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        string       `gorm:"index; not null"`
	ShareCode     string       `gorm:"uniqueIndex; not null"`
	ResourceType  ResourceType `gorm:"index:idx_share_links_resource; not null"`
	ResourceID    string       `gorm:"index:idx_share_links_resource; not null"`
	ExpiresAt     *time.Time
	Password      string `gorm:"type:text"`
	AllowDownload bool   `gorm:"not null; default:true"`
	AccessCount   int64  `gorm:"not null; default:0"`
}

// Expired reports whether the link's expiration time has passed. A link
// without expiration never expires.
func (l ShareLink) Expired() bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(time.Now().UTC())
}

// PasswordProtected reports whether accessing the link requires a password
func (l ShareLink) PasswordProtected() bool {
	return l.Password != ""
}
