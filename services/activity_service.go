package services

import (
	"github.com/rochiyat/mutabaah-app/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

type CreateActivityInput struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Target   int    `json:"target"`
	Unit     string `json:"unit"`
}

type UpdateActivityInput struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Target   *int    `json:"target"`
	Unit     *string `json:"unit"`
	IsActive *bool   `json:"isActive"`
}

// List returns the caller's activities, newest first, with their records.
func (s *ActivityService) List(userID uint) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	err := s.db.
		Where("user_id = ?", userID).
		Preload("Records").
		Order("created_at DESC").
		Find(&activities).Error
	return activities, err
}

func (s *ActivityService) Create(userID uint, in CreateActivityInput) (*models.Activity, error) {
	if in.Target <= 0 {
		in.Target = 1
	}
	if in.Unit == "" {
		in.Unit = "kali"
	}

	activity := models.Activity{
		Name:     in.Name,
		Category: in.Category,
		Target:   in.Target,
		Unit:     in.Unit,
		IsActive: true,
		UserID:   &userID,
	}
	if err := s.db.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// Update applies a partial merge. A foreign or missing activity is the
// same NotFound either way.
func (s *ActivityService) Update(userID, id uint, in UpdateActivityInput) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.First(&activity, id).Error; err != nil {
		return nil, ErrNotFound
	}
	if !IsOwner(userID, activity.UserID) {
		return nil, ErrNotFound
	}

	if in.Name != nil {
		activity.Name = *in.Name
	}
	if in.Category != nil {
		activity.Category = *in.Category
	}
	if in.Target != nil {
		activity.Target = *in.Target
	}
	if in.Unit != nil {
		activity.Unit = *in.Unit
	}
	if in.IsActive != nil {
		activity.IsActive = *in.IsActive
	}

	if err := s.db.Save(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) Delete(userID, id uint) error {
	var activity models.Activity
	if err := s.db.First(&activity, id).Error; err != nil {
		return ErrNotFound
	}
	if !IsOwner(userID, activity.UserID) {
		return ErrNotFound
	}
	return s.db.Delete(&activity).Error
}
