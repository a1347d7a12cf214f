package models

import (
	"strings"
	"time"
)

// Feedback is a tenant review of a property. IsVerified and IsRecommended are
// derived at save time; a rating of 0 on any optional field means the tenant
// did not provide it.
type Feedback struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID    uint64 `gorm:"not null;index" json:"propertyId"`
	TenantName    string `gorm:"size:100" json:"tenantName"`
	TenantEmail   string `gorm:"size:255" json:"tenantEmail"`
	OverallRating int    `gorm:"not null" json:"overallRating"`
	EcoRating     int    `json:"ecoRating"`
	Comment       string `gorm:"type:text" json:"comment"`
	IsVerified    bool   `gorm:"default:false" json:"isVerified"`
	IsRecommended bool   `gorm:"default:false" json:"isRecommended"`

	// Per-feature satisfaction ratings, 1-5 or 0 when not provided.
	InsulationExperience        int `json:"insulationExperience"`
	EnergyBillSatisfaction      int `json:"energyBillSatisfaction"`
	SolarSystemSatisfaction     int `json:"solarSystemSatisfaction"`
	WaterEfficiencySatisfaction int `json:"waterEfficiencySatisfaction"`
	GreenSpaceSatisfaction      int `json:"greenSpaceSatisfaction"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}

// QualifiesForVerification reports whether the feedback carries everything an
// automatic verification needs: tenant identity, an overall rating, and a
// non-blank comment. Rating value does not matter, only presence.
func (f *Feedback) QualifiesForVerification() bool {
	return f.TenantName != "" &&
		f.TenantEmail != "" &&
		f.OverallRating != 0 &&
		strings.TrimSpace(f.Comment) != ""
}
