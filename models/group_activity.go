package models

import "time"

// GroupActivity links an Activity into a Group, optionally marking it
// required for all members. One link per (group, activity).
type GroupActivity struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	GroupID    uint `gorm:"uniqueIndex:idx_group_activities_group_activity;not null" json:"groupId"`
	ActivityID uint `gorm:"uniqueIndex:idx_group_activities_group_activity;not null" json:"activityId"`
	IsRequired bool `gorm:"default:false" json:"isRequired"`

	Activity Activity `json:"activity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
