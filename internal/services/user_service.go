package services

import (
	"errors"

	"github.com/greenlease/greenlease/internal/models"
	"github.com/greenlease/greenlease/internal/types"
	"gorm.io/gorm"
)

// RegisterInput is the payload accepted for account registration. The
// password arrives opaque; hashing belongs to the upstream auth layer.
type RegisterInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Email           string `json:"email"`
}

// RegisterUser validates the registration, enforces username uniqueness, and
// creates the account with the default role.
func RegisterUser(db *gorm.DB, in *RegisterInput) (*models.User, error) {
	verr := types.NewValidationError()
	if in.Username == "" {
		verr.Add("username", "username is required")
	}
	if len(in.Password) < 6 {
		verr.Add("password", "password must be at least 6 characters long")
	}
	if in.Password != in.ConfirmPassword {
		verr.Add("confirmPassword", "passwords do not match")
	}
	if in.Email == "" {
		verr.Add("email", "email is required")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	exists, err := UsernameExists(db, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, types.NewValidationError().Add("username", "username is already taken")
	}

	user := &models.User{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Role:     "USER",
		Enabled:  true,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByUsername fetches one user or ErrNotFound.
func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UsernameExists reports whether a username is already registered.
func UsernameExists(db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
