package services

import (
	"errors"

	"github.com/greenlease/greenlease/internal/models"
	"gorm.io/gorm"
)

// GetLandlordByID returns one landlord by id.
func GetLandlordByID(db *gorm.DB, id uint64) (*models.Landlord, error) {
	var landlord models.Landlord
	if err := db.First(&landlord, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &landlord, nil
}
