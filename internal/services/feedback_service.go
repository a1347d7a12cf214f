// feedback_service.go
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

// FeedbackInput is the payload accepted for a feedback submission. Optional
// ratings default to 0, meaning not provided.
type FeedbackInput struct {
	PropertyID                  types.FlexUint64 `json:"propertyId"`
	TenantName                  string           `json:"tenantName"`
	TenantEmail                 string           `json:"tenantEmail"`
	OverallRating               int              `json:"overallRating"`
	EcoRating                   int              `json:"ecoRating"`
	Comment                     string           `json:"comment"`
	InsulationExperience        int              `json:"insulationExperience"`
	EnergyBillSatisfaction      int              `json:"energyBillSatisfaction"`
	SolarSystemSatisfaction     int              `json:"solarSystemSatisfaction"`
	WaterEfficiencySatisfaction int              `json:"waterEfficiencySatisfaction"`
	GreenSpaceSatisfaction      int              `json:"greenSpaceSatisfaction"`
}

// ValidateFeedbackInput rejects a submission before any derivation runs.
// Returns nil when the input is acceptable.
func ValidateFeedbackInput(in *FeedbackInput) *types.ValidationError {
	verr := types.NewValidationError()
	if in.PropertyID == 0 {
		verr.Add("propertyId", "property id is required")
	}
	if in.OverallRating < 1 || in.OverallRating > 5 {
		verr.Add("overallRating", "overall rating must be between 1 and 5")
	}
	if in.EcoRating != 0 && (in.EcoRating < 1 || in.EcoRating > 5) {
		verr.Add("ecoRating", "eco rating must be between 1 and 5 when provided")
	}
	subRatings := map[string]int{
		"insulationExperience":        in.InsulationExperience,
		"energyBillSatisfaction":      in.EnergyBillSatisfaction,
		"solarSystemSatisfaction":     in.SolarSystemSatisfaction,
		"waterEfficiencySatisfaction": in.WaterEfficiencySatisfaction,
		"greenSpaceSatisfaction":      in.GreenSpaceSatisfaction,
	}
	for field, rating := range subRatings {
		if rating != 0 && (rating < 1 || rating > 5) {
			verr.Add(field, field+" must be between 1 and 5 when provided")
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// SaveFeedback validates a submission, derives the verification and
// recommendation flags, and persists the feedback.
//
// Verification depends only on field presence: tenant name, tenant email,
// an overall rating, and a non-blank comment. Recommendation is a one-way
// derivation from the rating at save time.
func SaveFeedback(db *gorm.DB, in *FeedbackInput) (*models.Feedback, error) {
	if verr := ValidateFeedbackInput(in); verr != nil {
		return nil, verr
	}

	f := &models.Feedback{
		PropertyID:                  in.PropertyID.Uint64(),
		TenantName:                  in.TenantName,
		TenantEmail:                 in.TenantEmail,
		OverallRating:               in.OverallRating,
		EcoRating:                   in.EcoRating,
		Comment:                     in.Comment,
		InsulationExperience:        in.InsulationExperience,
		EnergyBillSatisfaction:      in.EnergyBillSatisfaction,
		SolarSystemSatisfaction:     in.SolarSystemSatisfaction,
		WaterEfficiencySatisfaction: in.WaterEfficiencySatisfaction,
		GreenSpaceSatisfaction:      in.GreenSpaceSatisfaction,
	}

	f.IsVerified = f.QualifiesForVerification()
	f.IsRecommended = f.OverallRating >= 4

	if err := db.Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// GetAllFeedback returns every feedback record, newest first.
func GetAllFeedback(db *gorm.DB) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := db.Order("created_at DESC").Find(&feedback).Error
	return feedback, err
}

// GetFeedbackByPropertyID returns all feedback for one property, newest first.
func GetFeedbackByPropertyID(db *gorm.DB, propertyID uint64) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := db.Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&feedback).Error
	return feedback, err
}

// GetVerifiedFeedback returns verified feedback across all properties.
func GetVerifiedFeedback(db *gorm.DB) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := db.Where("is_verified = ?", true).
		Order("created_at DESC").
		Find(&feedback).Error
	return feedback, err
}

// GetFeedbackByID fetches one feedback record or ErrNotFound.
func GetFeedbackByID(db *gorm.DB, id uint64) (*models.Feedback, error) {
	var f models.Feedback
	if err := db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// VerifyFeedback flips the verified flag on, the administrative path.
// Verification is never auto-reverted.
func VerifyFeedback(db *gorm.DB, id uint64) (*models.Feedback, error) {
	f, err := GetFeedbackByID(db, id)
	if err != nil {
		return nil, err
	}
	f.IsVerified = true
	if err := db.Save(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFeedback removes a feedback record by id.
func DeleteFeedback(db *gorm.DB, id uint64) error {
	res := db.Delete(&models.Feedback{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAverageRatingForProperty aggregates the overall rating over verified
// feedback only. Unverified submissions never move the average.
func GetAverageRatingForProperty(db *gorm.DB, propertyID uint64) (float64, error) {
	var avg float64
	err := db.Model(&models.Feedback{}).
		Where("property_id = ? AND is_verified = ?", propertyID, true).
		Select("COALESCE(AVG(overall_rating), 0)").
		Scan(&avg).Error
	return avg, err
}

// GetAverageEcoRatingForProperty aggregates the eco rating over verified
// feedback with a provided eco rating. Zero means not provided and is
// excluded from the average, not counted as zero.
func GetAverageEcoRatingForProperty(db *gorm.DB, propertyID uint64) (float64, error) {
	var avg float64
	err := db.Model(&models.Feedback{}).
		Where("property_id = ? AND is_verified = ? AND eco_rating > 0", propertyID, true).
		Select("COALESCE(AVG(eco_rating), 0)").
		Scan(&avg).Error
	return avg, err
}

// FeedbackStatistics summarizes the feedback for one property. Unverified
// feedback counts toward totals but never toward the averages. Percentages
// are derived on access.
type FeedbackStatistics struct {
	TotalCount       int64   `json:"totalCount"`
	VerifiedCount    int64   `json:"verifiedCount"`
	RecommendedCount int64   `json:"recommendedCount"`
	AverageRating    float64 `json:"averageRating"`
	AverageEcoRating float64 `json:"averageEcoRating"`
}

// RecommendationPercentage is the share of all feedback that recommends.
func (s FeedbackStatistics) RecommendationPercentage() float64 {
	if s.TotalCount == 0 {
		return 0.0
	}
	return float64(s.RecommendedCount) * 100.0 / float64(s.TotalCount)
}

// VerificationPercentage is the share of all feedback that is verified.
func (s FeedbackStatistics) VerificationPercentage() float64 {
	if s.TotalCount == 0 {
		return 0.0
	}
	return float64(s.VerifiedCount) * 100.0 / float64(s.TotalCount)
}

// MarshalJSON includes the derived percentages in the serialized form.
func (s FeedbackStatistics) MarshalJSON() ([]byte, error) {
	type alias FeedbackStatistics
	return json.Marshal(struct {
		alias
		RecommendationPercentage float64 `json:"recommendationPercentage"`
		VerificationPercentage   float64 `json:"verificationPercentage"`
	}{
		alias:                    alias(s),
		RecommendationPercentage: s.RecommendationPercentage(),
		VerificationPercentage:   s.VerificationPercentage(),
	})
}

// GetFeedbackStatistics computes the feedback summary for one property with
// database-side aggregation.
func GetFeedbackStatistics(db *gorm.DB, propertyID uint64) (FeedbackStatistics, error) {
	var stats FeedbackStatistics

	if err := db.Model(&models.Feedback{}).
		Where("property_id = ?", propertyID).
		Count(&stats.TotalCount).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.Feedback{}).
		Where("property_id = ? AND is_verified = ?", propertyID, true).
		Count(&stats.VerifiedCount).Error; err != nil {
		return stats, err
	}

	if err := db.Model(&models.Feedback{}).
		Where("property_id = ? AND is_recommended = ?", propertyID, true).
		Count(&stats.RecommendedCount).Error; err != nil {
		return stats, err
	}

	var err error
	if stats.AverageRating, err = GetAverageRatingForProperty(db, propertyID); err != nil {
		return stats, err
	}
	if stats.AverageEcoRating, err = GetAverageEcoRatingForProperty(db, propertyID); err != nil {
		return stats, err
	}

	return stats, nil
}
