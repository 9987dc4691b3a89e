package services

import (
	"errors"
	"time"

	"github.com/rochiyat/mutabaah-app/models"

	"gorm.io/gorm"
)

type RecordService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

// NewRecordService wires the hub for live dashboard updates; hub may be
// nil in tests.
func NewRecordService(db *gorm.DB, hub *RealtimeHub) *RecordService {
	return &RecordService{db: db, hub: hub}
}

type CreateRecordInput struct {
	ActivityID uint
	Completed  int
	Notes      string
	Date       time.Time // zero value means today
}

type UpdateRecordInput struct {
	Completed *int    `json:"completed"`
	Notes     *string `json:"notes"`
}

type RecordFilter struct {
	ActivityID *uint
	StartDate  *time.Time
	EndDate    *time.Time
}

// List returns the caller's records newest first, optionally filtered by
// activity and date range.
func (s *RecordService) List(userID uint, f RecordFilter) ([]models.Record, error) {
	q := s.db.Where("user_id = ?", userID)
	if f.ActivityID != nil {
		q = q.Where("activity_id = ?", *f.ActivityID)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", dayStart(*f.StartDate))
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", dayEnd(*f.EndDate))
	}

	records := make([]models.Record, 0)
	err := q.Preload("Activity").Order("date DESC").Find(&records).Error
	return records, err
}

// Create logs a completion count against one of the caller's activities.
// The date is normalized to local midnight so the uniqueness constraint
// means one record per calendar day; a second create for the same day
// fails with ErrConflict.
func (s *RecordService) Create(userID uint, in CreateRecordInput) (*models.Record, error) {
	var activity models.Activity
	if err := s.db.First(&activity, in.ActivityID).Error; err != nil {
		return nil, ErrNotFound
	}
	if !IsOwner(userID, activity.UserID) {
		return nil, ErrNotFound
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	record := models.Record{
		ActivityID: in.ActivityID,
		UserID:     userID,
		Completed:  in.Completed,
		Notes:      in.Notes,
		Date:       dayStart(date),
	}
	if err := s.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	record.Activity = &activity
	if s.hub != nil {
		s.hub.Broadcast(userID, "record.created", record)
	}
	return &record, nil
}

func (s *RecordService) Update(userID, id uint, in UpdateRecordInput) (*models.Record, error) {
	var record models.Record
	if err := s.db.First(&record, id).Error; err != nil {
		return nil, ErrNotFound
	}
	if record.UserID != userID {
		return nil, ErrNotFound
	}

	if in.Completed != nil {
		record.Completed = *in.Completed
	}
	if in.Notes != nil {
		record.Notes = *in.Notes
	}

	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Activity").First(&record, record.ID).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, "record.updated", record)
	}
	return &record, nil
}

func (s *RecordService) Delete(userID, id uint) error {
	var record models.Record
	if err := s.db.First(&record, id).Error; err != nil {
		return ErrNotFound
	}
	if record.UserID != userID {
		return ErrNotFound
	}

	if err := s.db.Delete(&record).Error; err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, "record.deleted", map[string]uint{"id": id})
	}
	return nil
}
