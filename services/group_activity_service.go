package services

import (
	"errors"

	"github.com/rochiyat/mutabaah-app/models"

	"gorm.io/gorm"
)

type GroupActivityService struct {
	db *gorm.DB
}

func NewGroupActivityService(db *gorm.DB) *GroupActivityService {
	return &GroupActivityService{db: db}
}

type AddGroupActivityInput struct {
	ActivityID uint `json:"activityId" binding:"required"`
	IsRequired bool `json:"isRequired"`
}

func (s *GroupActivityService) loadGroup(userID uint, role string, groupID uint) (*models.Group, error) {
	var group models.Group
	if err := s.db.Preload("Members").First(&group, groupID).Error; err != nil {
		return nil, ErrNotFound
	}
	if !CanViewGroup(userID, role, &group) {
		return nil, ErrNotFound
	}
	return &group, nil
}

// List returns the group's linked activities, newest first, to any caller
// who can see the group.
func (s *GroupActivityService) List(userID uint, role string, groupID uint) ([]models.GroupActivity, error) {
	if _, err := s.loadGroup(userID, role, groupID); err != nil {
		return nil, err
	}

	links := make([]models.GroupActivity, 0)
	err := s.db.
		Where("group_id = ?", groupID).
		Preload("Activity").
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// Add links an activity into the group. Admin only; a second link for the
// same activity fails with ErrConflict.
func (s *GroupActivityService) Add(userID uint, role string, groupID uint, in AddGroupActivityInput) (*models.GroupActivity, error) {
	group, err := s.loadGroup(userID, role, groupID)
	if err != nil {
		return nil, err
	}
	if !IsGroupAdmin(userID, group) {
		return nil, ErrForbidden
	}

	var activity models.Activity
	if err := s.db.First(&activity, in.ActivityID).Error; err != nil {
		return nil, ErrNotFound
	}

	link := models.GroupActivity{
		GroupID:    groupID,
		ActivityID: in.ActivityID,
		IsRequired: in.IsRequired,
	}
	if err := s.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	link.Activity = activity
	return &link, nil
}

func (s *GroupActivityService) Update(userID uint, role string, groupID, activityID uint, isRequired *bool) (*models.GroupActivity, error) {
	group, err := s.loadGroup(userID, role, groupID)
	if err != nil {
		return nil, err
	}
	if !IsGroupAdmin(userID, group) {
		return nil, ErrForbidden
	}

	var link models.GroupActivity
	if err := s.db.
		Where("group_id = ? AND activity_id = ?", groupID, activityID).
		First(&link).Error; err != nil {
		return nil, ErrNotFound
	}

	if isRequired != nil {
		link.IsRequired = *isRequired
	}
	if err := s.db.Model(&link).Update("is_required", link.IsRequired).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Activity").First(&link, link.ID).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *GroupActivityService) Remove(userID uint, role string, groupID, activityID uint) error {
	group, err := s.loadGroup(userID, role, groupID)
	if err != nil {
		return err
	}
	if !IsGroupAdmin(userID, group) {
		return ErrForbidden
	}

	res := s.db.
		Where("group_id = ? AND activity_id = ?", groupID, activityID).
		Delete(&models.GroupActivity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
