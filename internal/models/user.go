package models

import "time"

// User is a platform account. Passwords are stored opaque; hashing and session
// handling live in the Authorizer service.
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     string    `gorm:"size:255" json:"email"`
	Role      string    `gorm:"size:50;default:USER" json:"role"`
	Enabled   bool      `gorm:"default:true" json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
