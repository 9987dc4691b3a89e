package models

import "time"

const (
	RoleUser       = "user"
	RoleSuperadmin = "superadmin"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:user" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	// Password reset state; never serialized.
	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
