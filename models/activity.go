package models

import "time"

// Activity is a user-defined habit with a numeric daily target.
// UserID is nullable: group-level activities have no personal owner.
type Activity struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Category string `json:"category"`
	Target   int    `gorm:"default:1" json:"target"`
	Unit     string `json:"unit"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
	UserID   *uint  `gorm:"index" json:"userId"`

	Records []Record `json:"records,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
