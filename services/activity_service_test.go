package services

import (
	"testing"

	"github.com/rochiyat/mutabaah-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCRUD(t *testing.T) {
	db := openTestDB(t)
	svc := NewActivityService(db)
	user := seedUser(t, db, "alice@example.com", models.RoleUser)

	activity, err := svc.Create(user.ID, CreateActivityInput{Name: "Quran", Category: "ibadah", Target: 5, Unit: "halaman"})
	require.NoError(t, err)
	assert.Equal(t, "Quran", activity.Name)
	assert.True(t, activity.IsActive)
	require.NotNil(t, activity.UserID)
	assert.Equal(t, user.ID, *activity.UserID)

	// Absent target and unit fall back to 1 "kali".
	defaulted, err := svc.Create(user.ID, CreateActivityInput{Name: "Sedekah"})
	require.NoError(t, err)
	assert.Equal(t, 1, defaulted.Target)
	assert.Equal(t, "kali", defaulted.Unit)

	list, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sedekah", list[0].Name, "newest first")

	name := "Tilawah"
	inactive := false
	updated, err := svc.Update(user.ID, activity.ID, UpdateActivityInput{Name: &name, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Tilawah", updated.Name)
	assert.False(t, updated.IsActive)

	require.NoError(t, svc.Delete(user.ID, activity.ID))
	assert.ErrorIs(t, svc.Delete(user.ID, activity.ID), ErrNotFound)
}

func TestActivityOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := NewActivityService(db)
	alice := seedUser(t, db, "alice@example.com", models.RoleUser)
	bob := seedUser(t, db, "bob@example.com", models.RoleUser)
	activity := seedActivity(t, db, alice.ID, "Quran", 5, true)

	list, err := svc.List(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	name := "hijacked"
	_, err = svc.Update(bob.ID, activity.ID, UpdateActivityInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(bob.ID, activity.ID), ErrNotFound)
}
