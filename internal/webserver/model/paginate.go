package model

import (
	"gorm.io/gorm"
)

const (
	ResultsPerPage    = 50
	MaxResultsPerPage = 100
)

func Paginate(offset int, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if offset < 0 {
			offset = 0
		}

		switch {
		case limit > MaxResultsPerPage:
			limit = MaxResultsPerPage
		case limit <= 0:
			limit = ResultsPerPage
		}

		return db.Offset(offset).Limit(limit)
	}
}
