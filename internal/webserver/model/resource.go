package model

import "time"

// ResourceType tags which backing store a shared or collaborated-on entity
// belongs to
type ResourceType string

const (
	TypeFile   ResourceType = "file"
	TypeFolder ResourceType = "folder"
	TypePhoto  ResourceType = "photo"
	TypeAlbum  ResourceType = "album"
	TypeResume ResourceType = "resume"
)

// ShareableResourceTypes lists the types a share link may point at
var ShareableResourceTypes = []ResourceType{TypeFile, TypeFolder, TypePhoto, TypeAlbum, TypeResume}

// CollaborativeResourceTypes lists the types a collaboration invite may point at
var CollaborativeResourceTypes = []ResourceType{TypeFile, TypeFolder, TypeAlbum}

// In reports whether t belongs to the given set of types
func (t ResourceType) In(types []ResourceType) bool {
	for _, candidate := range types {
		if t == candidate {
			return true
		}
	}
	return false
}

// BlobBacked reports whether resources of this type carry an object in the
// blob store, and therefore are eligible for presigned read URLs
func (t ResourceType) BlobBacked() bool {
	switch t {
	case TypeFile, TypePhoto, TypeResume:
		return true
	}
	return false
}

// Resource is the projection of a resource record that the sharing subsystem
// needs: ownership plus, for blob-backed types, the key of the stored object
type Resource struct {
	ID      string       `json:"id"`
	UserID  string       `json:"userId"`
	Type    ResourceType `json:"resourceType"`
	Name    string       `json:"name"`
	BlobKey string       `json:"blobKey,omitempty"`
}

// One record type per backing store. The stores themselves are owned by other
// services; this subsystem only ever reads them.

type File struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"index; not null"`
	Name      string
	BlobKey   string
}

type Folder struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"index; not null"`
	Name      string
}

type Photo struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"index; not null"`
	Name      string
	BlobKey   string
}

type Album struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"index; not null"`
	Name      string
}

type Resume struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"index; not null"`
	Name      string
	BlobKey   string
}
