package model

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/svera/shareport/internal/token"
)

// codeAttempts bounds the generate-and-insert retries performed when a freshly
// generated public code collides with an existing one
const codeAttempts = 5

// ErrCodeCollision is returned when no unique public code could be allocated
// within the allowed number of attempts
var ErrCodeCollision = errors.New("could not allocate a unique code")

type ShareLinkRepository struct {
	DB *gorm.DB
}

// CreateWithUniqueCode persists the link after assigning it a share code not
// used by any other link. The share_code unique index backs the check.
func (r *ShareLinkRepository) CreateWithUniqueCode(link *ShareLink) error {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := token.New(token.ShareCodeLength)
		if err != nil {
			return err
		}
		var count int64
		if err := r.DB.Model(&ShareLink{}).Where("share_code = ?", code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		link.ShareCode = code
		if err := r.DB.Create(link).Error; err != nil {
			log.Error().Err(err).Msg("error creating share link")
			return err
		}
		return nil
	}
	return ErrCodeCollision
}

func (r *ShareLinkRepository) FindByCode(code string) (*ShareLink, error) {
	var link ShareLink

	result := r.DB.Where("share_code = ?", code).First(&link)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Error().Err(result.Error).Str("code", code).Msg("error retrieving share link")
	}
	return &link, result.Error
}

func (r *ShareLinkRepository) FindByID(id string) (*ShareLink, error) {
	var link ShareLink

	result := r.DB.Where("id = ?", id).First(&link)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Error().Err(result.Error).Str("id", id).Msg("error retrieving share link")
	}
	return &link, result.Error
}

// Save persists the current state of an already existing link
func (r *ShareLinkRepository) Save(link *ShareLink) error {
	if result := r.DB.Save(link); result.Error != nil {
		log.Error().Err(result.Error).Str("id", link.ID).Msg("error updating share link")
		return result.Error
	}
	return nil
}

func (r *ShareLinkRepository) Delete(id string) error {
	if result := r.DB.Where("id = ?", id).Delete(&ShareLink{}); result.Error != nil {
		log.Error().Err(result.Error).Str("id", id).Msg("error deleting share link")
		return result.Error
	}
	return nil
}

// List returns the owner's links, optionally narrowed to a resource type
// and/or a concrete resource, together with the total amount of matches
func (r *ShareLinkRepository) List(userID string, resourceType ResourceType, resourceID string, offset, limit int) ([]ShareLink, int64, error) {
	links := []ShareLink{}

	query := r.DB.Model(&ShareLink{}).Where("user_id = ?", userID)
	if resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}
	if resourceID != "" {
		query = query.Where("resource_id = ?", resourceID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("error counting share links")
		return nil, 0, err
	}

	// id breaks ties between links created in the same instant, keeping
	// offset pagination stable
	result := query.Scopes(Paginate(offset, limit)).Order("created_at DESC, id").Find(&links)
	if result.Error != nil {
		log.Error().Err(result.Error).Str("userID", userID).Msg("error listing share links")
		return nil, 0, result.Error
	}
	return links, total, nil
}

// IncrementAccessCount bumps the link's access counter by one in a single
// statement, so concurrent accesses never lose updates, and returns the new
// value
func (r *ShareLinkRepository) IncrementAccessCount(id string) (int64, error) {
	result := r.DB.Model(&ShareLink{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
		"access_count": gorm.Expr("access_count + ?", 1),
		"updated_at":   time.Now().UTC(),
	})
	if result.Error != nil {
		log.Error().Err(result.Error).Str("id", id).Msg("error incrementing access count")
		return 0, result.Error
	}

	var count int64
	if err := r.DB.Model(&ShareLink{}).Where("id = ?", id).Pluck("access_count", &count).Error; err != nil {
		log.Error().Err(err).Str("id", id).Msg("error reading access count")
		return 0, err
	}
	return count, nil
}
