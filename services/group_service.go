package services

import (
	"github.com/rochiyat/mutabaah-app/models"

	"gorm.io/gorm"
)

type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

type CreateGroupInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateGroupInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (s *GroupService) preloaded() *gorm.DB {
	return s.db.
		Preload("Admin").
		Preload("Members").
		Preload("Activities.Activity")
}

// List returns every group for superadmins, otherwise only groups the
// caller administers or belongs to.
func (s *GroupService) List(userID uint, role string) ([]models.Group, error) {
	groups := make([]models.Group, 0)
	q := s.preloaded().Order("created_at DESC")

	if !IsSuperadmin(role) {
		memberOf := s.db.Table("group_members").
			Select("group_id").
			Where("user_id = ?", userID)
		q = q.Where("admin_id = ? OR id IN (?)", userID, memberOf)
	}

	err := q.Find(&groups).Error
	return groups, err
}

// Get hides groups the caller cannot see behind NotFound.
func (s *GroupService) Get(userID uint, role string, id uint) (*models.Group, error) {
	var group models.Group
	if err := s.preloaded().First(&group, id).Error; err != nil {
		return nil, ErrNotFound
	}
	if !CanViewGroup(userID, role, &group) {
		return nil, ErrNotFound
	}
	return &group, nil
}

func (s *GroupService) Create(userID uint, in CreateGroupInput) (*models.Group, error) {
	group := models.Group{
		Name:        in.Name,
		Description: in.Description,
		AdminID:     userID,
		IsActive:    true,
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, err
	}
	return s.reload(group.ID)
}

// Update is allowed for the group admin or a superadmin. Members who can
// see the group but lack the role get Forbidden; outsiders get NotFound.
func (s *GroupService) Update(userID uint, role string, id uint, in UpdateGroupInput) (*models.Group, error) {
	group, err := s.Get(userID, role, id)
	if err != nil {
		return nil, err
	}
	if !IsGroupAdmin(userID, group) && !IsSuperadmin(role) {
		return nil, ErrForbidden
	}

	if in.Name != nil {
		group.Name = *in.Name
	}
	if in.Description != nil {
		group.Description = *in.Description
	}
	if in.IsActive != nil {
		group.IsActive = *in.IsActive
	}

	if err := s.db.Model(&models.Group{ID: group.ID}).
		Select("name", "description", "is_active").
		Updates(map[string]any{
			"name":        group.Name,
			"description": group.Description,
			"is_active":   group.IsActive,
		}).Error; err != nil {
		return nil, err
	}
	return s.reload(id)
}

func (s *GroupService) Delete(userID uint, role string, id uint) error {
	group, err := s.Get(userID, role, id)
	if err != nil {
		return err
	}
	if !IsGroupAdmin(userID, group) && !IsSuperadmin(role) {
		return ErrForbidden
	}
	// Drop membership rows and activity links along with the group.
	return s.db.Select("Members", "Activities").Delete(&models.Group{ID: id}).Error
}

func (s *GroupService) Members(userID uint, role string, id uint) ([]models.User, error) {
	group, err := s.Get(userID, role, id)
	if err != nil {
		return nil, err
	}
	return group.Members, nil
}

// AddMember is admin-only; even superadmins manage membership through the
// group's own admin.
func (s *GroupService) AddMember(userID uint, role string, groupID, memberID uint) (*models.Group, error) {
	group, err := s.Get(userID, role, groupID)
	if err != nil {
		return nil, err
	}
	if !IsGroupAdmin(userID, group) {
		return nil, ErrForbidden
	}

	var member models.User
	if err := s.db.First(&member, memberID).Error; err != nil {
		return nil, ErrNotFound
	}

	if err := s.db.Model(group).Association("Members").Append(&member); err != nil {
		return nil, err
	}
	return s.reload(groupID)
}

func (s *GroupService) RemoveMember(userID uint, role string, groupID, memberID uint) (*models.Group, error) {
	group, err := s.Get(userID, role, groupID)
	if err != nil {
		return nil, err
	}
	if !IsGroupAdmin(userID, group) {
		return nil, ErrForbidden
	}

	if err := s.db.Model(group).Association("Members").Delete(&models.User{ID: memberID}); err != nil {
		return nil, err
	}
	return s.reload(groupID)
}

func (s *GroupService) reload(id uint) (*models.Group, error) {
	var group models.Group
	if err := s.preloaded().First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}
