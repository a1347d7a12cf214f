package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/handlers"
	"github.com/greenlease/greenlease/internal/models"
	"gorm.io/gorm"
)

// newFeedbackApp wires the feedback routes the way the server does, without
// the auth middleware
func newFeedbackApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	handler := &handlers.FeedbackHandler{DB: db}
	app.Post("/api/feedback", handler.SubmitFeedback)
	app.Get("/api/feedback/property/:propertyId", handler.ListFeedbackByProperty)
	app.Get("/api/feedback/property/:propertyId/stats", handler.FeedbackStats)
	app.Get("/api/feedback", handler.ManageFeedback)
	app.Post("/api/feedback/:id/verify", handler.VerifyFeedback)
	app.Delete("/api/feedback/:id", handler.DeleteFeedback)
	return app
}

func submitFeedback(t *testing.T, app *fiber.App, payload map[string]interface{}) *models.Feedback {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var created models.Feedback
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return &created
}

// TestSubmitFeedback tests the submission path and the derived flags in the
// response
func TestSubmitFeedback(t *testing.T) {
	db := setupTestDB(t)
	createProperty(t, db, "Reviewed", "Seattle", 1900, 6)
	app := newFeedbackApp(db)

	created := submitFeedback(t, app, map[string]interface{}{
		"propertyId":    1,
		"tenantName":    "Jordan Smith",
		"tenantEmail":   "jordan@example.com",
		"overallRating": 5,
		"comment":       "Bright, warm, and the solar array covers most bills.",
	})

	if !created.IsVerified {
		t.Error("Expected complete submission to be auto-verified")
	}
	if !created.IsRecommended {
		t.Error("Expected rating 5 to be recommended")
	}
}

// TestSubmitFeedbackStringPropertyID tests that a form-style string id is
// accepted
func TestSubmitFeedbackStringPropertyID(t *testing.T) {
	db := setupTestDB(t)
	createProperty(t, db, "Reviewed", "Seattle", 1900, 6)
	app := newFeedbackApp(db)

	created := submitFeedback(t, app, map[string]interface{}{
		"propertyId":    "1",
		"overallRating": 3,
	})
	if created.PropertyID != 1 {
		t.Errorf("Expected property id 1, got %d", created.PropertyID)
	}
}

// TestSubmitFeedbackUnknownProperty tests the existence check
func TestSubmitFeedbackUnknownProperty(t *testing.T) {
	db := setupTestDB(t)
	app := newFeedbackApp(db)

	body, _ := json.Marshal(map[string]interface{}{
		"propertyId":    42,
		"overallRating": 4,
	})
	req := httptest.NewRequest("POST", "/api/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 for unknown property, got %d", resp.StatusCode)
	}
}

// TestSubmitFeedbackValidation tests the 400 field map on a bad rating
func TestSubmitFeedbackValidation(t *testing.T) {
	db := setupTestDB(t)
	createProperty(t, db, "Reviewed", "Seattle", 1900, 6)
	app := newFeedbackApp(db)

	body, _ := json.Marshal(map[string]interface{}{
		"propertyId":    1,
		"overallRating": 9,
	})
	req := httptest.NewRequest("POST", "/api/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	fields, ok := result["fields"].(map[string]interface{})
	if !ok || fields["overallRating"] == nil {
		t.Errorf("Expected overallRating in validation failures, got %v", result["fields"])
	}
}

// TestListFeedbackByProperty tests the per-property listing with its averages
func TestListFeedbackByProperty(t *testing.T) {
	db := setupTestDB(t)
	createProperty(t, db, "Reviewed", "Seattle", 1900, 6)
	app := newFeedbackApp(db)

	submitFeedback(t, app, map[string]interface{}{
		"propertyId":    1,
		"tenantName":    "Jordan Smith",
		"tenantEmail":   "jordan@example.com",
		"overallRating": 4,
		"comment":       "Solid place.",
	})

	req := httptest.NewRequest("GET", "/api/feedback/property/1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["count"] != float64(1) {
		t.Errorf("Expected count 1, got %v", result["count"])
	}
	if result["averageRating"] != float64(4) {
		t.Errorf("Expected averageRating 4, got %v", result["averageRating"])
	}
}

// TestFeedbackStatsEndpoint tests the statistics route
func TestFeedbackStatsEndpoint(t *testing.T) {
	db := setupTestDB(t)
	createProperty(t, db, "Reviewed", "Seattle", 1900, 6)
	app := newFeedbackApp(db)

	submitFeedback(t, app, map[string]interface{}{
		"propertyId":    1,
		"tenantName":    "Jordan Smith",
		"tenantEmail":   "jordan@example.com",
		"overallRating": 5,
		"comment":       "Recommended.",
	})

	req := httptest.NewRequest("GET", "/api/feedback/property/1/stats", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["totalCount"] != float64(1) {
		t.Errorf("Expected totalCount 1, got %v", result["totalCount"])
	}
	if result["recommendationPercentage"] != float64(100) {
		t.Errorf("Expected recommendationPercentage 100, got %v", result["recommendationPercentage"])
	}
}

// TestVerifyFeedbackEndpoint tests moderation verification
func TestVerifyFeedbackEndpoint(t *testing.T) {
	db := setupTestDB(t)
	createProperty(t, db, "Reviewed", "Seattle", 1900, 6)
	app := newFeedbackApp(db)

	// Anonymous submission stays unverified
	created := submitFeedback(t, app, map[string]interface{}{
		"propertyId":    1,
		"overallRating": 4,
	})
	if created.IsVerified {
		t.Fatal("Expected anonymous feedback to start unverified")
	}

	req := httptest.NewRequest("POST", "/api/feedback/1/verify", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var verified models.Feedback
	if err := json.NewDecoder(resp.Body).Decode(&verified); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !verified.IsVerified {
		t.Error("Expected feedback to be verified")
	}

	// Unknown id is a 404
	resp, err = app.Test(httptest.NewRequest("POST", "/api/feedback/999/verify", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

// TestManageFeedback tests the moderation listing with and without the
// property scope
func TestManageFeedback(t *testing.T) {
	db := setupTestDB(t)
	createProperty(t, db, "First", "Seattle", 1900, 6)
	createProperty(t, db, "Second", "Austin", 1400, 3)
	app := newFeedbackApp(db)

	submitFeedback(t, app, map[string]interface{}{"propertyId": 1, "overallRating": 4})
	submitFeedback(t, app, map[string]interface{}{"propertyId": 2, "overallRating": 2})
	submitFeedback(t, app, map[string]interface{}{
		"propertyId":    1,
		"tenantName":    "Avery Kim",
		"tenantEmail":   "avery@example.com",
		"overallRating": 5,
		"comment":       "Bright, warm, and the solar credit was real.",
	})

	req := httptest.NewRequest("GET", "/api/feedback", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["count"] != float64(3) {
		t.Errorf("Expected 3 feedback entries, got %v", result["count"])
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/feedback?propertyId=2", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["count"] != float64(1) {
		t.Errorf("Expected 1 scoped feedback entry, got %v", result["count"])
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/feedback?verified=true", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["count"] != float64(1) {
		t.Errorf("Expected 1 verified feedback entry, got %v", result["count"])
	}
}

// TestDeleteFeedbackEndpoint tests removal through the handler
func TestDeleteFeedbackEndpoint(t *testing.T) {
	db := setupTestDB(t)
	createProperty(t, db, "Reviewed", "Seattle", 1900, 6)
	app := newFeedbackApp(db)

	submitFeedback(t, app, map[string]interface{}{"propertyId": 1, "overallRating": 4})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/feedback/1", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/feedback/1", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 on second delete, got %d", resp.StatusCode)
	}
}
