package services_test

import (
	"errors"
	"testing"

	"github.com/greenlease/greenlease/internal/services"
	"github.com/greenlease/greenlease/internal/types"
)

func registerInput(username string) *services.RegisterInput {
	return &services.RegisterInput{
		Username:        username,
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Email:           username + "@example.com",
	}
}

// TestRegisterUser tests the happy path and the default role
func TestRegisterUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := services.RegisterUser(db, registerInput("jordan"))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if user.Role != "USER" {
		t.Errorf("Expected default role USER, got %q", user.Role)
	}
	if !user.Enabled {
		t.Error("Expected new account to be enabled")
	}
}

// TestRegisterUserValidation tests the field checks
func TestRegisterUserValidation(t *testing.T) {
	db := setupTestDB(t)

	in := &services.RegisterInput{
		Password:        "short",
		ConfirmPassword: "different",
	}
	_, err := services.RegisterUser(db, in)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	for _, field := range []string{"username", "password", "confirmPassword", "email"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("Expected validation failure for %q", field)
		}
	}
}

// TestRegisterUserDuplicateUsername tests the uniqueness check
func TestRegisterUserDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.RegisterUser(db, registerInput("taken")); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	_, err := services.RegisterUser(db, registerInput("taken"))
	if err == nil {
		t.Fatal("Expected duplicate username to fail")
	}
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	if _, ok := verr.Fields["username"]; !ok {
		t.Error("Expected failure on the username field")
	}
}

// TestGetUserByUsername tests lookup including the miss path
func TestGetUserByUsername(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.RegisterUser(db, registerInput("findme")); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	user, err := services.GetUserByUsername(db, "findme")
	if err != nil {
		t.Fatalf("Failed to fetch user: %v", err)
	}
	if user.Username != "findme" {
		t.Errorf("Expected username findme, got %q", user.Username)
	}

	if _, err := services.GetUserByUsername(db, "ghost"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
