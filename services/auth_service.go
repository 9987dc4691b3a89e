package services

import (
	"errors"
	"log"
	"time"

	"github.com/rochiyat/mutabaah-app/models"
	"github.com/rochiyat/mutabaah-app/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates an account and returns it with a fresh session token.
func (s *AuthService) Register(email, name, password string) (*models.User, string, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:    email,
		Name:     name,
		Password: hashed,
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials. The error is the same whether the email or
// the password was wrong.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) Profile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

// ForgotPassword stores a short-lived reset code and mails it. A missing
// email is not an error, so the endpoint never reveals which addresses
// are registered.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	if err := utils.SendResetEmail(user.Email, code); err != nil {
		log.Printf("reset email to %s failed: %v", user.Email, err)
	}
	return nil
}

func (s *AuthService) ResetPassword(code, newPassword string) error {
	if code == "" {
		return ErrInvalidResetCode
	}
	var user models.User
	if err := s.db.Where("reset_token = ?", code).First(&user).Error; err != nil {
		return ErrInvalidResetCode
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrInvalidResetCode
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}

// EnsureSuperadmin upserts the seed superadmin account used for
// cross-tenant group administration.
func (s *AuthService) EnsureSuperadmin(email, name, password string) error {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return s.db.Create(&models.User{
		Email:    email,
		Name:     name,
		Password: hashed,
		Role:     models.RoleSuperadmin,
		IsActive: true,
	}).Error
}
