package model

import "time"

const (
	PermissionView  = "view"
	PermissionEdit  = "edit"
	PermissionAdmin = "admin"
)

const (
	// StatusInvited marks invites addressed to an email with no known account yet
	StatusInvited = "invited"
	// StatusPending marks invites whose collaborator account already exists
	StatusPending = "pending"
	// StatusAccepted is the only terminal status; there is no path back
	StatusAccepted = "accepted"
)

// Permissions lists the access levels a collaborator can be granted
var Permissions = []string{PermissionView, PermissionEdit, PermissionAdmin}

// Collaboration binds a collaborator, by account id or by email, to
// permissioned persistent access to a resource
type Collaboration struct {
	ID                string `gorm:"primarykey"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	OwnerID           string       `gorm:"index; not null"`
	CollaboratorID    *string      `gorm:"index"`
	CollaboratorEmail string       `gorm:"not null"`
	ResourceType      ResourceType `gorm:"index:idx_collaborations_resource; not null"`
	ResourceID        string       `gorm:"index:idx_collaborations_resource; not null"`
	Permissions       string       `gorm:"not null; default:view"`
	Status            string       `gorm:"not null"`
	InviteCode        string       `gorm:"uniqueIndex; not null"`
	Message           string       `gorm:"type:text"`
}

// ValidPermission reports whether the given access level is one of the
// recognized values
func ValidPermission(permission string) bool {
	for _, candidate := range Permissions {
		if permission == candidate {
			return true
		}
	}
	return false
}
