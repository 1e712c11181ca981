package model

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrUnsupportedResourceType is returned when a resource type tag does not
// correspond to any backing store
var ErrUnsupportedResourceType = errors.New("unsupported resource type")

type ResourceRepository struct {
	DB *gorm.DB
}

// Find fetches the resource with the given id from the store selected by the
// type tag. It returns nil when no such record exists.
func (r *ResourceRepository) Find(resourceType ResourceType, id string) (*Resource, error) {
	var (
		resource Resource
		result   *gorm.DB
	)

	switch resourceType {
	case TypeFile:
		var record File
		if result = r.DB.Where("id = ?", id).First(&record); result.Error == nil {
			resource = Resource{ID: record.ID, UserID: record.UserID, Type: TypeFile, Name: record.Name, BlobKey: record.BlobKey}
		}
	case TypeFolder:
		var record Folder
		if result = r.DB.Where("id = ?", id).First(&record); result.Error == nil {
			resource = Resource{ID: record.ID, UserID: record.UserID, Type: TypeFolder, Name: record.Name}
		}
	case TypePhoto:
		var record Photo
		if result = r.DB.Where("id = ?", id).First(&record); result.Error == nil {
			resource = Resource{ID: record.ID, UserID: record.UserID, Type: TypePhoto, Name: record.Name, BlobKey: record.BlobKey}
		}
	case TypeAlbum:
		var record Album
		if result = r.DB.Where("id = ?", id).First(&record); result.Error == nil {
			resource = Resource{ID: record.ID, UserID: record.UserID, Type: TypeAlbum, Name: record.Name}
		}
	case TypeResume:
		var record Resume
		if result = r.DB.Where("id = ?", id).First(&record); result.Error == nil {
			resource = Resource{ID: record.ID, UserID: record.UserID, Type: TypeResume, Name: record.Name, BlobKey: record.BlobKey}
		}
	default:
		return nil, ErrUnsupportedResourceType
	}

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Error().Err(result.Error).Str("type", string(resourceType)).Str("id", id).Msg("error retrieving resource")
		return nil, result.Error
	}
	return &resource, nil
}
