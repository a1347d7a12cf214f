package models

import "time"

// Landlord owns properties. SustainabilityScore is the average eco score of
// the landlord's properties, maintained by an external batch process rather
// than recomputed here.
type Landlord struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName           string    `gorm:"size:100;not null" json:"firstName"`
	LastName            string    `gorm:"size:100;not null" json:"lastName"`
	Email               string    `gorm:"size:255;uniqueIndex" json:"email"`
	Phone               string    `gorm:"size:50" json:"phone"`
	Company             string    `gorm:"size:255" json:"company"`
	IsVerified          bool      `gorm:"default:false" json:"isVerified"`
	SustainabilityScore *float64  `json:"sustainabilityScore"`
	TotalProperties     int       `json:"totalProperties"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Landlord
func (Landlord) TableName() string {
	return "landlords"
}

// FullName returns the landlord's display name.
func (l *Landlord) FullName() string {
	return l.FirstName + " " + l.LastName
}

// SustainabilityLevel bands the landlord's sustainability score for display.
func (l *Landlord) SustainabilityLevel() string {
	if l.SustainabilityScore == nil {
		return "Not Rated"
	}
	switch {
	case *l.SustainabilityScore >= 8.0:
		return "Eco Champion"
	case *l.SustainabilityScore >= 6.0:
		return "Green Leader"
	case *l.SustainabilityScore >= 4.0:
		return "Eco Friendly"
	default:
		return "Standard"
	}
}
