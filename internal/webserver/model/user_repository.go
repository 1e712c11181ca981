package model

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) FindByID(id string) (*User, error) {
	var user User

	result := u.DB.Where("id = ?", id).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Error().Err(result.Error).Str("id", id).Msg("error retrieving user")
	}
	return &user, result.Error
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	var user User

	result := u.DB.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Error().Err(result.Error).Str("email", email).Msg("error retrieving user")
	}
	return &user, result.Error
}
