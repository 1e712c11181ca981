package model

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/svera/shareport/internal/token"
)

type CollaborationRepository struct {
	DB *gorm.DB
}

// CreateWithUniqueCode persists the invite after assigning it an invite code
// not used by any other collaboration
func (r *CollaborationRepository) CreateWithUniqueCode(collaboration *Collaboration) error {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := token.New(token.InviteCodeLength)
		if err != nil {
			return err
		}
		var count int64
		if err := r.DB.Model(&Collaboration{}).Where("invite_code = ?", code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		collaboration.InviteCode = code
		if err := r.DB.Create(collaboration).Error; err != nil {
			log.Error().Err(err).Msg("error creating collaboration")
			return err
		}
		return nil
	}
	return ErrCodeCollision
}

func (r *CollaborationRepository) FindByInviteCode(code string) (*Collaboration, error) {
	var collaboration Collaboration

	result := r.DB.Where("invite_code = ?", code).First(&collaboration)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Error().Err(result.Error).Str("code", code).Msg("error retrieving collaboration")
	}
	return &collaboration, result.Error
}

// Exists reports whether the collaborator already has a collaboration on the
// given resource
func (r *CollaborationRepository) Exists(resourceType ResourceType, resourceID, collaboratorID string) (bool, error) {
	var count int64

	err := r.DB.Model(&Collaboration{}).
		Where("resource_type = ? AND resource_id = ? AND collaborator_id = ?", resourceType, resourceID, collaboratorID).
		Count(&count).Error
	if err != nil {
		log.Error().Err(err).Str("resourceID", resourceID).Msg("error checking for existing collaboration")
		return false, err
	}
	return count > 0, nil
}

// Accept binds the invite to the accepting account and moves it to the
// accepted status
func (r *CollaborationRepository) Accept(collaboration *Collaboration, userID string) error {
	now := time.Now().UTC()
	result := r.DB.Model(collaboration).Updates(map[string]interface{}{
		"collaborator_id": userID,
		"status":          StatusAccepted,
		"updated_at":      now,
	})
	if result.Error != nil {
		log.Error().Err(result.Error).Str("id", collaboration.ID).Msg("error accepting collaboration")
		return result.Error
	}
	collaboration.CollaboratorID = &userID
	collaboration.Status = StatusAccepted
	collaboration.UpdatedAt = now
	return nil
}
