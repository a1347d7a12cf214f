package services

import (
	"strings"

	"github.com/greenlease/greenlease/internal/models"
	"gorm.io/gorm"
)

// PropertyFilter carries the browse/search parameters. Exactly one filter
// mode is applied per request; combining modes is not supported.
type PropertyFilter struct {
	City        string
	MinRent     *float64
	MaxRent     *float64
	MinEcoScore *float64
	MaxEcoScore *float64
	SolarPanels *bool
}

// filterRule is one entry in the fixed-priority dispatch chain. The first
// rule whose applies() returns true handles the whole request.
type filterRule struct {
	Mode    string
	applies func(f *PropertyFilter) bool
	run     func(db *gorm.DB, f *PropertyFilter) ([]models.Property, error)
}

var filterRules = []filterRule{
	{
		Mode:    "city",
		applies: func(f *PropertyFilter) bool { return f.City != "" },
		run: func(db *gorm.DB, f *PropertyFilter) ([]models.Property, error) {
			return SearchByCity(db, f.City)
		},
	},
	{
		Mode:    "rent",
		applies: func(f *PropertyFilter) bool { return f.MinRent != nil && f.MaxRent != nil },
		run: func(db *gorm.DB, f *PropertyFilter) ([]models.Property, error) {
			return FilterByRentRange(db, *f.MinRent, *f.MaxRent)
		},
	},
	{
		Mode:    "ecoScore",
		applies: func(f *PropertyFilter) bool { return f.MinEcoScore != nil && f.MaxEcoScore != nil },
		run: func(db *gorm.DB, f *PropertyFilter) ([]models.Property, error) {
			return FilterByEcoScoreRange(db, *f.MinEcoScore, *f.MaxEcoScore)
		},
	},
	{
		Mode:    "solar",
		applies: func(f *PropertyFilter) bool { return f.SolarPanels != nil },
		run: func(db *gorm.DB, f *PropertyFilter) ([]models.Property, error) {
			return FilterBySolarPanels(db, *f.SolarPanels)
		},
	},
}

// FilterProperties dispatches the filter to the first applicable rule in
// priority order: city, rent range, eco-score range, solar flag. When no rule
// applies it falls back to all available properties. Returns the mode that
// handled the request alongside the results.
func FilterProperties(db *gorm.DB, f *PropertyFilter) ([]models.Property, string, error) {
	for _, rule := range filterRules {
		if rule.applies(f) {
			properties, err := rule.run(db, f)
			return properties, rule.Mode, err
		}
	}
	properties, err := GetAvailableProperties(db)
	return properties, "all", err
}

// SearchByEcoTier resolves a named eco tier (excellent, good, fair) to its
// score range and filters on it. Unknown labels fall back to all available
// properties.
func SearchByEcoTier(db *gorm.DB, label string) ([]models.Property, error) {
	min, max, ok := EcoTierRange(strings.ToLower(label))
	if !ok {
		return GetAvailableProperties(db)
	}
	return FilterByEcoScoreRange(db, min, max)
}
