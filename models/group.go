package models

import "time"

// Group is a collection of users under an admin, sharing required activities.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	AdminID     uint   `gorm:"index;not null" json:"adminId"`

	Admin      User            `json:"admin"`
	Members    []User          `gorm:"many2many:group_members" json:"members"`
	Activities []GroupActivity `json:"activities,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
