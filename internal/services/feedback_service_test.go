package services_test

import (
	"errors"
	"testing"

	"github.com/greenlease/greenlease/internal/services"
	"github.com/greenlease/greenlease/internal/types"
	"gorm.io/gorm"
)

// seedProperty creates one property to attach feedback to
func seedProperty(t *testing.T, db *gorm.DB) uint64 {
	p, err := services.CreateProperty(db, validPropertyInput("Feedback Target", "Seattle", 1900))
	if err != nil {
		t.Fatalf("Failed to create property: %v", err)
	}
	return p.ID
}

func feedbackInput(propertyID uint64, rating int) *services.FeedbackInput {
	return &services.FeedbackInput{
		PropertyID:    types.FlexUint64(propertyID),
		TenantName:    "Jordan Smith",
		TenantEmail:   "jordan@example.com",
		OverallRating: rating,
		Comment:       "Great insulation, barely needed heating all winter.",
	}
}

// TestSaveFeedbackAutoVerifies tests that a complete submission is verified at
// save time
func TestSaveFeedbackAutoVerifies(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	f, err := services.SaveFeedback(db, feedbackInput(propertyID, 5))
	if err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	if !f.IsVerified {
		t.Error("Expected complete feedback to be auto-verified")
	}
	if !f.IsRecommended {
		t.Error("Expected rating 5 to be recommended")
	}
}

// TestSaveFeedbackIncompleteNotVerified tests the verification criteria field
// by field
func TestSaveFeedbackIncompleteNotVerified(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	cases := []struct {
		name   string
		mutate func(in *services.FeedbackInput)
	}{
		{"missing name", func(in *services.FeedbackInput) { in.TenantName = "" }},
		{"missing email", func(in *services.FeedbackInput) { in.TenantEmail = "" }},
		{"blank comment", func(in *services.FeedbackInput) { in.Comment = "   " }},
		{"empty comment", func(in *services.FeedbackInput) { in.Comment = "" }},
	}

	for _, c := range cases {
		in := feedbackInput(propertyID, 5)
		c.mutate(in)

		f, err := services.SaveFeedback(db, in)
		if err != nil {
			t.Fatalf("%s: failed to save feedback: %v", c.name, err)
		}
		if f.IsVerified {
			t.Errorf("%s: expected feedback to stay unverified", c.name)
		}
	}
}

// TestRecommendationThreshold tests the rating-4 boundary, independent of
// verification
func TestRecommendationThreshold(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	cases := []struct {
		rating      int
		recommended bool
	}{
		{1, false},
		{3, false},
		{4, true},
		{5, true},
	}

	for _, c := range cases {
		f, err := services.SaveFeedback(db, feedbackInput(propertyID, c.rating))
		if err != nil {
			t.Fatalf("Failed to save feedback with rating %d: %v", c.rating, err)
		}
		if f.IsRecommended != c.recommended {
			t.Errorf("Rating %d: expected recommended=%v, got %v", c.rating, c.recommended, f.IsRecommended)
		}
		// A low rating with complete fields still verifies
		if !f.IsVerified {
			t.Errorf("Rating %d: expected complete feedback to verify regardless of rating", c.rating)
		}
	}
}

// TestValidateFeedbackInput tests the submission bounds
func TestValidateFeedbackInput(t *testing.T) {
	cases := []struct {
		name  string
		in    services.FeedbackInput
		field string
	}{
		{"missing property", services.FeedbackInput{OverallRating: 4}, "propertyId"},
		{"rating too low", services.FeedbackInput{PropertyID: 1, OverallRating: 0}, "overallRating"},
		{"rating too high", services.FeedbackInput{PropertyID: 1, OverallRating: 6}, "overallRating"},
		{"eco rating out of range", services.FeedbackInput{PropertyID: 1, OverallRating: 4, EcoRating: 6}, "ecoRating"},
		{"insulation too high", services.FeedbackInput{PropertyID: 1, OverallRating: 4, InsulationExperience: 6}, "insulationExperience"},
		{"energy bill negative", services.FeedbackInput{PropertyID: 1, OverallRating: 4, EnergyBillSatisfaction: -1}, "energyBillSatisfaction"},
		{"solar too high", services.FeedbackInput{PropertyID: 1, OverallRating: 4, SolarSystemSatisfaction: 7}, "solarSystemSatisfaction"},
		{"water too high", services.FeedbackInput{PropertyID: 1, OverallRating: 4, WaterEfficiencySatisfaction: 6}, "waterEfficiencySatisfaction"},
		{"green space too high", services.FeedbackInput{PropertyID: 1, OverallRating: 4, GreenSpaceSatisfaction: 6}, "greenSpaceSatisfaction"},
	}

	for _, c := range cases {
		verr := services.ValidateFeedbackInput(&c.in)
		if verr == nil {
			t.Errorf("%s: expected validation error", c.name)
			continue
		}
		if _, ok := verr.Fields[c.field]; !ok {
			t.Errorf("%s: expected failure on field %q, got %v", c.name, c.field, verr.Fields)
		}
	}

	// zero means not provided and passes, for the eco rating and every
	// sub-rating alike
	ok := services.FeedbackInput{PropertyID: 1, OverallRating: 4}
	if verr := services.ValidateFeedbackInput(&ok); verr != nil {
		t.Errorf("Expected absent optional ratings to validate, got %v", verr)
	}
	full := services.FeedbackInput{
		PropertyID:                  1,
		OverallRating:               4,
		EcoRating:                   5,
		InsulationExperience:        3,
		EnergyBillSatisfaction:      4,
		SolarSystemSatisfaction:     5,
		WaterEfficiencySatisfaction: 2,
		GreenSpaceSatisfaction:      1,
	}
	if verr := services.ValidateFeedbackInput(&full); verr != nil {
		t.Errorf("Expected in-range sub-ratings to validate, got %v", verr)
	}
}

// TestAverageRatingVerifiedOnly tests that unverified feedback never moves the
// average
func TestAverageRatingVerifiedOnly(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	// Verified, rating 5
	if _, err := services.SaveFeedback(db, feedbackInput(propertyID, 5)); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	// Unverified (no email), rating 1
	low := feedbackInput(propertyID, 1)
	low.TenantEmail = ""
	if _, err := services.SaveFeedback(db, low); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	avg, err := services.GetAverageRatingForProperty(db, propertyID)
	if err != nil {
		t.Fatalf("Failed to average: %v", err)
	}
	if !almostEqual(avg, 5.0) {
		t.Errorf("Expected average 5.0 over verified feedback only, got %v", avg)
	}
}

// TestAverageEcoRatingExcludesAbsent tests that eco rating 0 is excluded from
// the average rather than counted as zero
func TestAverageEcoRatingExcludesAbsent(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	withEco := feedbackInput(propertyID, 5)
	withEco.EcoRating = 4
	if _, err := services.SaveFeedback(db, withEco); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	// Verified but no eco rating
	if _, err := services.SaveFeedback(db, feedbackInput(propertyID, 4)); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	avg, err := services.GetAverageEcoRatingForProperty(db, propertyID)
	if err != nil {
		t.Fatalf("Failed to average: %v", err)
	}
	if !almostEqual(avg, 4.0) {
		t.Errorf("Expected eco average 4.0 excluding absent ratings, got %v", avg)
	}
}

// TestAveragesEmpty tests the no-feedback averages
func TestAveragesEmpty(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	avg, err := services.GetAverageRatingForProperty(db, propertyID)
	if err != nil {
		t.Fatalf("Failed to average: %v", err)
	}
	if avg != 0.0 {
		t.Errorf("Expected 0.0 average with no feedback, got %v", avg)
	}
}

// TestVerifyFeedback tests the administrative verification path
func TestVerifyFeedback(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	in := feedbackInput(propertyID, 4)
	in.TenantEmail = ""
	f, err := services.SaveFeedback(db, in)
	if err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}
	if f.IsVerified {
		t.Fatal("Expected feedback to start unverified")
	}

	verified, err := services.VerifyFeedback(db, f.ID)
	if err != nil {
		t.Fatalf("Failed to verify feedback: %v", err)
	}
	if !verified.IsVerified {
		t.Error("Expected feedback to be verified")
	}

	if _, err := services.VerifyFeedback(db, 9999); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing feedback, got %v", err)
	}
}

// TestDeleteFeedback tests removal including the missing-row path
func TestDeleteFeedback(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	f, err := services.SaveFeedback(db, feedbackInput(propertyID, 4))
	if err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	if err := services.DeleteFeedback(db, f.ID); err != nil {
		t.Fatalf("Failed to delete feedback: %v", err)
	}
	if err := services.DeleteFeedback(db, f.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on double delete, got %v", err)
	}
}

// TestGetFeedbackStatistics tests the per-property summary and its derived
// percentages
func TestGetFeedbackStatistics(t *testing.T) {
	db := setupTestDB(t)
	propertyID := seedProperty(t, db)

	// Verified and recommended, eco 5
	top := feedbackInput(propertyID, 5)
	top.EcoRating = 5
	if _, err := services.SaveFeedback(db, top); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	// Verified, not recommended, eco 3
	mid := feedbackInput(propertyID, 3)
	mid.EcoRating = 3
	if _, err := services.SaveFeedback(db, mid); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	// Unverified, recommended
	anon := feedbackInput(propertyID, 4)
	anon.TenantName = ""
	if _, err := services.SaveFeedback(db, anon); err != nil {
		t.Fatalf("Failed to save feedback: %v", err)
	}

	stats, err := services.GetFeedbackStatistics(db, propertyID)
	if err != nil {
		t.Fatalf("Failed to compute statistics: %v", err)
	}

	if stats.TotalCount != 3 {
		t.Errorf("Expected total 3, got %d", stats.TotalCount)
	}
	if stats.VerifiedCount != 2 {
		t.Errorf("Expected 2 verified, got %d", stats.VerifiedCount)
	}
	if stats.RecommendedCount != 2 {
		t.Errorf("Expected 2 recommended, got %d", stats.RecommendedCount)
	}
	if !almostEqual(stats.AverageRating, 4.0) {
		t.Errorf("Expected average rating 4.0 over verified feedback, got %v", stats.AverageRating)
	}
	if !almostEqual(stats.AverageEcoRating, 4.0) {
		t.Errorf("Expected average eco rating 4.0, got %v", stats.AverageEcoRating)
	}
	if !almostEqual(stats.VerificationPercentage(), 2.0*100.0/3.0) {
		t.Errorf("Unexpected verification percentage %v", stats.VerificationPercentage())
	}
	if !almostEqual(stats.RecommendationPercentage(), 2.0*100.0/3.0) {
		t.Errorf("Unexpected recommendation percentage %v", stats.RecommendationPercentage())
	}
}
