// property_service.go
//
// Eco-scored rental listing service for the GreenLease platform
// Copyright (c) 2026 GreenLease <dev@greenlease.io>
//
// This file is part of greenlease.
// greenlease is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// greenlease is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with greenlease.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"encoding/json"
	"errors"

	"github.com/greenlease/greenlease/internal/models"
	"github.com/greenlease/greenlease/internal/types"
	"gorm.io/gorm"
)

// ErrNotFound marks a lookup that matched no record. Callers treat it as a
// normal empty result, not a failure.
var ErrNotFound = errors.New("not found")

// PropertyInput is the field bag accepted for property create and update.
// Eco factors are optional; absent is not zero.
type PropertyInput struct {
	Title                   string                 `json:"title"`
	Description             string                 `json:"description"`
	Address                 string                 `json:"address"`
	City                    string                 `json:"city"`
	State                   string                 `json:"state"`
	ZipCode                 string                 `json:"zipCode"`
	Rent                    *float64               `json:"rent"`
	PropertyType            string                 `json:"propertyType"`
	Bedrooms                int                    `json:"bedrooms"`
	Bathrooms               int                    `json:"bathrooms"`
	SquareFootage           float64                `json:"squareFootage"`
	InsulationRating        *int                   `json:"insulationRating"`
	SolarPanels             bool                   `json:"solarPanels"`
	SolarRating             *int                   `json:"solarRating"`
	WaterConservationRating *int                   `json:"waterConservationRating"`
	GreenSpaceProximity     *float64               `json:"greenSpaceProximity"`
	EnergyEfficiencyRating  *int                   `json:"energyEfficiencyRating"`
	LandlordID              types.FlexUint64       `json:"landlordId"`
	ImageURL                string                 `json:"imageUrl"`
	Amenities               types.FlexList[string] `json:"amenities"`
	IsAvailable             *bool                  `json:"isAvailable"`
}

// ValidatePropertyInput rejects a payload before it reaches the calculator or
// the store. Returns nil when the input is acceptable.
func ValidatePropertyInput(in *PropertyInput) *types.ValidationError {
	verr := types.NewValidationError()
	if in.Title == "" {
		verr.Add("title", "title is required")
	}
	if in.Address == "" {
		verr.Add("address", "address is required")
	}
	if in.City == "" {
		verr.Add("city", "city is required")
	}
	if in.State == "" {
		verr.Add("state", "state is required")
	}
	if in.ZipCode == "" {
		verr.Add("zipCode", "zip code is required")
	}
	if in.Rent == nil {
		verr.Add("rent", "rent is required")
	} else if *in.Rent <= 0 {
		verr.Add("rent", "rent must be greater than zero")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// CreateProperty validates the input, computes the eco score, and persists a
// new property. The stored score always reflects the factors at this save.
func CreateProperty(db *gorm.DB, in *PropertyInput) (*models.Property, error) {
	if verr := ValidatePropertyInput(in); verr != nil {
		return nil, verr
	}

	p := &models.Property{IsAvailable: true}
	if err := applyPropertyInput(p, in); err != nil {
		return nil, err
	}

	score := ComputeEcoScore(FactorsOf(p))
	p.OverallEcoScore = &score

	if err := db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProperty validates the input, recomputes the eco score from the new
// factors, and persists the changes.
func UpdateProperty(db *gorm.DB, id uint64, in *PropertyInput) (*models.Property, error) {
	if verr := ValidatePropertyInput(in); verr != nil {
		return nil, verr
	}

	p, err := GetPropertyByID(db, id)
	if err != nil {
		return nil, err
	}
	if err := applyPropertyInput(p, in); err != nil {
		return nil, err
	}

	score := ComputeEcoScore(FactorsOf(p))
	p.OverallEcoScore = &score

	if err := db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func applyPropertyInput(p *models.Property, in *PropertyInput) error {
	p.Title = in.Title
	p.Description = in.Description
	p.Address = in.Address
	p.City = in.City
	p.State = in.State
	p.ZipCode = in.ZipCode
	p.Rent = *in.Rent
	p.PropertyType = in.PropertyType
	p.Bedrooms = in.Bedrooms
	p.Bathrooms = in.Bathrooms
	p.SquareFootage = in.SquareFootage
	p.InsulationRating = in.InsulationRating
	p.SolarPanels = in.SolarPanels
	p.SolarRating = in.SolarRating
	p.WaterConservationRating = in.WaterConservationRating
	p.GreenSpaceProximity = in.GreenSpaceProximity
	p.EnergyEfficiencyRating = in.EnergyEfficiencyRating
	if in.LandlordID != 0 {
		p.LandlordID = in.LandlordID.Uint64()
	}
	p.ImageURL = in.ImageURL
	if in.Amenities != nil {
		raw, err := json.Marshal(in.Amenities.Slice())
		if err != nil {
			return err
		}
		p.Amenities.JSON = raw
	}
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	return nil
}

// GetAllProperties returns every property, best eco score first, newest first
// within equal scores.
func GetAllProperties(db *gorm.DB) ([]models.Property, error) {
	var properties []models.Property
	err := db.Order("overall_eco_score DESC").Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// GetAvailableProperties returns available properties, best eco score first.
func GetAvailableProperties(db *gorm.DB) ([]models.Property, error) {
	var properties []models.Property
	err := db.Where("is_available = ?", true).
		Order("overall_eco_score DESC").
		Find(&properties).Error
	return properties, err
}

// GetPropertyByID fetches one property or ErrNotFound.
func GetPropertyByID(db *gorm.DB, id uint64) (*models.Property, error) {
	var p models.Property
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// SearchByCity returns available properties whose city contains the given
// text, case-insensitively, best eco score first.
func SearchByCity(db *gorm.DB, city string) ([]models.Property, error) {
	var properties []models.Property
	err := db.Where("LOWER(city) LIKE LOWER(?) AND is_available = ?", "%"+city+"%", true).
		Order("overall_eco_score DESC").
		Find(&properties).Error
	return properties, err
}

// FilterByRentRange returns available properties with rent in [min, max].
func FilterByRentRange(db *gorm.DB, minRent, maxRent float64) ([]models.Property, error) {
	var properties []models.Property
	err := db.Where("rent BETWEEN ? AND ? AND is_available = ?", minRent, maxRent, true).
		Order("overall_eco_score DESC").
		Find(&properties).Error
	return properties, err
}

// FilterByEcoScoreRange returns available properties scored in [min, max].
func FilterByEcoScoreRange(db *gorm.DB, minScore, maxScore float64) ([]models.Property, error) {
	var properties []models.Property
	err := db.Where("overall_eco_score BETWEEN ? AND ? AND is_available = ?", minScore, maxScore, true).
		Order("overall_eco_score DESC").
		Find(&properties).Error
	return properties, err
}

// FilterBySolarPanels returns available properties by solar panel presence.
func FilterBySolarPanels(db *gorm.DB, hasSolar bool) ([]models.Property, error) {
	var properties []models.Property
	err := db.Where("solar_panels = ? AND is_available = ?", hasSolar, true).
		Order("overall_eco_score DESC").
		Find(&properties).Error
	return properties, err
}

// GetEcoExcellentProperties returns available properties in the excellent band.
func GetEcoExcellentProperties(db *gorm.DB) ([]models.Property, error) {
	return FilterByEcoScoreRange(db, 8.0, 10.0)
}

// DeleteProperty removes a property and its feedback. Deletion is physical.
func DeleteProperty(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Property{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// EcoStatistics summarizes the eco profile of the whole portfolio. The
// percentage fields are derived on access and never stored.
type EcoStatistics struct {
	TotalProperties     int64   `json:"totalProperties"`
	AverageEcoScore     float64 `json:"averageEcoScore"`
	SolarProperties     int64   `json:"solarProperties"`
	ExcellentProperties int64   `json:"excellentProperties"`
}

// SolarPercentage is the share of properties with solar panels.
func (s EcoStatistics) SolarPercentage() float64 {
	if s.TotalProperties == 0 {
		return 0.0
	}
	return float64(s.SolarProperties) * 100.0 / float64(s.TotalProperties)
}

// ExcellentPercentage is the share of properties in the excellent band.
func (s EcoStatistics) ExcellentPercentage() float64 {
	if s.TotalProperties == 0 {
		return 0.0
	}
	return float64(s.ExcellentProperties) * 100.0 / float64(s.TotalProperties)
}

// MarshalJSON includes the derived percentages in the serialized form.
func (s EcoStatistics) MarshalJSON() ([]byte, error) {
	type alias EcoStatistics
	return json.Marshal(struct {
		alias
		SolarPercentage     float64 `json:"solarPercentage"`
		ExcellentPercentage float64 `json:"excellentPercentage"`
	}{
		alias:               alias(s),
		SolarPercentage:     s.SolarPercentage(),
		ExcellentPercentage: s.ExcellentPercentage(),
	})
}

// GetEcoStatistics computes portfolio-level eco statistics. The average is
// aggregated by the database over scored rows only.
func GetEcoStatistics(db *gorm.DB) (EcoStatistics, error) {
	var stats EcoStatistics

	if err := db.Model(&models.Property{}).Count(&stats.TotalProperties).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.Property{}).
		Where("overall_eco_score > 0").
		Select("COALESCE(AVG(overall_eco_score), 0)").
		Scan(&stats.AverageEcoScore).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.Property{}).
		Where("solar_panels = ? AND is_available = ?", true, true).
		Count(&stats.SolarProperties).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.Property{}).
		Where("overall_eco_score BETWEEN ? AND ? AND is_available = ?", 8.0, 10.0, true).
		Count(&stats.ExcellentProperties).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
