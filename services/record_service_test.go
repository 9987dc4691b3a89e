package services

import (
	"testing"
	"time"

	"github.com/rochiyat/mutabaah-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecordDuplicateDay(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecordService(db, nil)
	user := seedUser(t, db, "alice@example.com", models.RoleUser)
	activity := seedActivity(t, db, user.ID, "Quran", 5, true)

	_, err := svc.Create(user.ID, CreateRecordInput{ActivityID: activity.ID, Completed: 3})
	require.NoError(t, err)

	// Same activity, same day.
	_, err = svc.Create(user.ID, CreateRecordInput{ActivityID: activity.ID, Completed: 1})
	assert.ErrorIs(t, err, ErrConflict)

	// A different day is fine.
	_, err = svc.Create(user.ID, CreateRecordInput{
		ActivityID: activity.ID,
		Completed:  1,
		Date:       time.Now().AddDate(0, 0, -1),
	})
	assert.NoError(t, err)
}

func TestCreateRecordNormalizesDate(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecordService(db, nil)
	user := seedUser(t, db, "alice@example.com", models.RoleUser)
	activity := seedActivity(t, db, user.ID, "Quran", 5, true)

	afternoon := time.Date(2026, 3, 14, 15, 30, 0, 0, time.Local)
	record, err := svc.Create(user.ID, CreateRecordInput{
		ActivityID: activity.ID,
		Completed:  2,
		Date:       afternoon,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, record.Date.Hour())
	assert.Equal(t, 0, record.Date.Minute())
	assert.Equal(t, 14, record.Date.Day())
}

func TestCreateRecordForeignActivity(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecordService(db, nil)
	alice := seedUser(t, db, "alice@example.com", models.RoleUser)
	bob := seedUser(t, db, "bob@example.com", models.RoleUser)
	bobs := seedActivity(t, db, bob.ID, "Bob's habit", 1, true)

	_, err := svc.Create(alice.ID, CreateRecordInput{ActivityID: bobs.ID, Completed: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(alice.ID, CreateRecordInput{ActivityID: 999, Completed: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAndDeleteRecordOwnership(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecordService(db, nil)
	alice := seedUser(t, db, "alice@example.com", models.RoleUser)
	bob := seedUser(t, db, "bob@example.com", models.RoleUser)
	activity := seedActivity(t, db, alice.ID, "Quran", 5, true)

	record, err := svc.Create(alice.ID, CreateRecordInput{ActivityID: activity.ID, Completed: 1})
	require.NoError(t, err)

	completed := 4
	notes := "after maghrib"
	updated, err := svc.Update(alice.ID, record.ID, UpdateRecordInput{Completed: &completed, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Completed)
	assert.Equal(t, "after maghrib", updated.Notes)

	// Someone else's record is indistinguishable from a missing one.
	_, err = svc.Update(bob.ID, record.ID, UpdateRecordInput{Completed: &completed})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(bob.ID, record.ID), ErrNotFound)

	require.NoError(t, svc.Delete(alice.ID, record.ID))
	assert.ErrorIs(t, svc.Delete(alice.ID, record.ID), ErrNotFound)
}

func TestListRecordsFilters(t *testing.T) {
	db := openTestDB(t)
	svc := NewRecordService(db, nil)
	user := seedUser(t, db, "alice@example.com", models.RoleUser)
	quran := seedActivity(t, db, user.ID, "Quran", 5, true)
	dzikir := seedActivity(t, db, user.ID, "Dzikir", 3, true)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(user.ID, CreateRecordInput{
			ActivityID: quran.ID,
			Completed:  i + 1,
			Date:       time.Now().AddDate(0, 0, -i),
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(user.ID, CreateRecordInput{ActivityID: dzikir.ID, Completed: 1})
	require.NoError(t, err)

	all, err := svc.List(user.ID, RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].Date.Before(all[i].Date), "newest first")
	}

	byActivity, err := svc.List(user.ID, RecordFilter{ActivityID: &quran.ID})
	require.NoError(t, err)
	assert.Len(t, byActivity, 3)

	yesterday := time.Now().AddDate(0, 0, -1)
	ranged, err := svc.List(user.ID, RecordFilter{StartDate: &yesterday})
	require.NoError(t, err)
	assert.Len(t, ranged, 3, "two quran days plus dzikir today")
}
