package models_test

import (
	"testing"

	"github.com/greenlease/greenlease/internal/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

// TestEcoScoreLabel tests the display bands including the unscored case
func TestEcoScoreLabel(t *testing.T) {
	cases := []struct {
		score *float64
		label string
	}{
		{nil, "Not Rated"},
		{floatPtr(10.0), "Excellent"},
		{floatPtr(8.0), "Excellent"},
		{floatPtr(7.99), "Good"},
		{floatPtr(6.0), "Good"},
		{floatPtr(5.9), "Fair"},
		{floatPtr(4.0), "Fair"},
		{floatPtr(3.99), "Poor"},
		{floatPtr(0.0), "Poor"},
	}

	for _, c := range cases {
		if got := models.EcoScoreLabel(c.score); got != c.label {
			t.Errorf("EcoScoreLabel(%v): expected %q, got %q", c.score, c.label, got)
		}
	}
}

// TestSustainabilityLevel tests the landlord banding
func TestSustainabilityLevel(t *testing.T) {
	cases := []struct {
		score *float64
		level string
	}{
		{nil, "Not Rated"},
		{floatPtr(9.0), "Eco Champion"},
		{floatPtr(8.0), "Eco Champion"},
		{floatPtr(7.0), "Green Leader"},
		{floatPtr(6.0), "Green Leader"},
		{floatPtr(5.0), "Eco Friendly"},
		{floatPtr(4.0), "Eco Friendly"},
		{floatPtr(2.0), "Standard"},
	}

	for _, c := range cases {
		l := models.Landlord{SustainabilityScore: c.score}
		if got := l.SustainabilityLevel(); got != c.level {
			t.Errorf("SustainabilityLevel(%v): expected %q, got %q", c.score, c.level, got)
		}
	}
}

// TestQualifiesForVerification tests the presence-only criteria
func TestQualifiesForVerification(t *testing.T) {
	complete := models.Feedback{
		TenantName:    "Jordan Smith",
		TenantEmail:   "jordan@example.com",
		OverallRating: 2,
		Comment:       "Drafty windows.",
	}
	if !complete.QualifiesForVerification() {
		t.Error("Expected complete low-rated feedback to qualify")
	}

	blankComment := complete
	blankComment.Comment = "  \t "
	if blankComment.QualifiesForVerification() {
		t.Error("Expected whitespace-only comment to disqualify")
	}

	noName := complete
	noName.TenantName = ""
	if noName.QualifiesForVerification() {
		t.Error("Expected missing tenant name to disqualify")
	}
}

// TestFullAddress tests the display address assembly
func TestFullAddress(t *testing.T) {
	p := models.Property{
		Address: "9 Green Way",
		City:    "Denver",
		State:   "CO",
		ZipCode: "80202",
	}
	want := "9 Green Way, Denver, CO 80202"
	if got := p.FullAddress(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
