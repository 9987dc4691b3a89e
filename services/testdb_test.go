package services

import (
	"path/filepath"
	"testing"

	"github.com/rochiyat/mutabaah-app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.Record{},
		&models.Group{},
		&models.GroupActivity{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Name:     email,
		Password: "x",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedActivity(t *testing.T, db *gorm.DB, userID uint, name string, target int, active bool) *models.Activity {
	t.Helper()

	activity := models.Activity{
		Name:     name,
		Target:   target,
		Unit:     "kali",
		IsActive: active,
		UserID:   &userID,
	}
	require.NoError(t, db.Create(&activity).Error)
	if !active {
		require.NoError(t, db.Model(&activity).Update("is_active", false).Error)
	}
	return &activity
}
