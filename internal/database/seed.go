package database

import (
	"log"

	"github.com/greenlease/greenlease/internal/models"
	"github.com/greenlease/greenlease/internal/services"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// SeedDemoData loads a small demo dataset on first run. It is a no-op when
// the properties table already has rows, so restarts never duplicate data.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already seeded, skipping demo data")
		return nil
	}

	log.Println("Seeding demo data...")

	landlords := []models.Landlord{
		{FirstName: "Maria", LastName: "Santos", Email: "maria@greenhomes.example", Phone: "415-555-0101", Company: "Green Homes LLC", IsVerified: true},
		{FirstName: "David", LastName: "Chen", Email: "david@urbaneco.example", Phone: "206-555-0102", Company: "Urban Eco Rentals"},
	}
	if err := db.Create(&landlords).Error; err != nil {
		return err
	}

	demo := []services.PropertyInput{
		{
			Title: "Solar Craftsman Bungalow", Description: "Fully retrofitted craftsman with rooftop solar and greywater recycling.",
			Address: "142 Alder Street", City: "Portland", State: "OR", ZipCode: "97204",
			Rent: floatPtr(2450), PropertyType: "house", Bedrooms: 3, Bathrooms: 2, SquareFootage: 1650,
			InsulationRating: intPtr(8), SolarPanels: true, SolarRating: intPtr(10),
			WaterConservationRating: intPtr(6), EnergyEfficiencyRating: intPtr(9),
			GreenSpaceProximity: floatPtr(2),
		},
		{
			Title: "Downtown Efficiency Loft", Description: "Compact loft near the transit mall, LED lighting throughout.",
			Address: "812 5th Avenue", City: "Seattle", State: "WA", ZipCode: "98104",
			Rent: floatPtr(1850), PropertyType: "apartment", Bedrooms: 1, Bathrooms: 1, SquareFootage: 720,
			InsulationRating: intPtr(6), EnergyEfficiencyRating: intPtr(7),
			GreenSpaceProximity: floatPtr(0.5),
		},
		{
			Title: "Garden District Duplex", Description: "Shaded duplex with drought-tolerant landscaping.",
			Address: "27 Magnolia Court", City: "Austin", State: "TX", ZipCode: "78704",
			Rent: floatPtr(1600), PropertyType: "duplex", Bedrooms: 2, Bathrooms: 1, SquareFootage: 980,
			WaterConservationRating: intPtr(8), GreenSpaceProximity: floatPtr(4.5),
		},
	}
	for i := range demo {
		demo[i].LandlordID = 1
		if _, err := services.CreateProperty(db, &demo[i]); err != nil {
			return err
		}
	}

	feedback := []services.FeedbackInput{
		{
			PropertyID: 1, TenantName: "Jane Miller", TenantEmail: "jane@example.com",
			OverallRating: 5, EcoRating: 5, Comment: "The solar panels covered almost our whole summer bill.",
			SolarSystemSatisfaction: 5, EnergyBillSatisfaction: 5,
		},
		{
			PropertyID: 2, TenantName: "Omar Haddad", TenantEmail: "omar@example.com",
			OverallRating: 4, Comment: "Warm in winter, quick walk to the park.",
			InsulationExperience: 4, GreenSpaceSatisfaction: 5,
		},
	}
	for i := range feedback {
		if _, err := services.SaveFeedback(db, &feedback[i]); err != nil {
			return err
		}
	}

	admin := models.User{Username: "admin", Password: "{noop}change-me", Email: "admin@greenlease.example", Role: "ADMIN", Enabled: true}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Demo data seeded")
	return nil
}
