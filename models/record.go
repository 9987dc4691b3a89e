package models

import "time"

// Record is one day's logged completion count against an Activity.
// Date is normalized to local midnight, so the composite index enforces
// at most one record per (activity, day, user).
type Record struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       time.Time `gorm:"uniqueIndex:idx_records_activity_date_user;not null" json:"date"`
	Completed  int       `json:"completed"`
	Notes      string    `json:"notes"`
	ActivityID uint      `gorm:"uniqueIndex:idx_records_activity_date_user;not null" json:"activityId"`
	UserID     uint      `gorm:"uniqueIndex:idx_records_activity_date_user;index;not null" json:"userId"`

	Activity *Activity `json:"activity,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
