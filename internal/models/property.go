package models

import (
	"fmt"
	"time"
)

// Property represents a rental listing with its eco-rating factors and the
// derived overall eco score. The score is only ever written by the save path
// after running the calculator; it is never accepted from callers directly.
type Property struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string  `gorm:"size:255;not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	Address       string  `gorm:"size:255;not null" json:"address"`
	City          string  `gorm:"size:100;not null;index" json:"city"`
	State         string  `gorm:"size:50;not null" json:"state"`
	ZipCode       string  `gorm:"size:20;not null" json:"zipCode"`
	Rent          float64 `gorm:"type:decimal(10,2);not null" json:"rent"`
	PropertyType  string  `gorm:"size:50" json:"propertyType"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	SquareFootage float64 `json:"squareFootage"`

	// Eco-rating factors. Nil means the factor was not provided, which is
	// distinct from a zero rating for weighting purposes.
	InsulationRating        *int     `json:"insulationRating"`
	SolarPanels             bool     `json:"solarPanels"`
	SolarRating             *int     `json:"solarRating"`
	WaterConservationRating *int     `json:"waterConservationRating"`
	GreenSpaceProximity     *float64 `json:"greenSpaceProximity"`
	EnergyEfficiencyRating  *int     `json:"energyEfficiencyRating"`
	OverallEcoScore         *float64 `gorm:"index" json:"overallEcoScore"`

	LandlordID  uint64    `gorm:"index" json:"landlordId"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl"`
	Amenities   JSON      `gorm:"type:json" json:"amenities"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "properties"
}

// FullAddress returns the single-line postal address for display.
func (p *Property) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", p.Address, p.City, p.State, p.ZipCode)
}

// EcoRatingDisplay returns the display band for the stored eco score.
func (p *Property) EcoRatingDisplay() string {
	return EcoScoreLabel(p.OverallEcoScore)
}

// EcoScoreLabel maps an eco score onto its display band. A nil score means
// the property has never been scored.
func EcoScoreLabel(score *float64) string {
	if score == nil {
		return "Not Rated"
	}
	switch {
	case *score >= 8.0:
		return "Excellent"
	case *score >= 6.0:
		return "Good"
	case *score >= 4.0:
		return "Fair"
	default:
		return "Poor"
	}
}
