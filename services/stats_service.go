package services

import (
	"time"

	"github.com/rochiyat/mutabaah-app/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type DashboardStats struct {
	TodayCompleted  int `json:"todayCompleted"`
	TodayTarget     int `json:"todayTarget"`
	Streak          int `json:"streak"`
	TotalActivities int `json:"totalActivities"`
}

type WeeklyPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Target    int    `json:"target"`
}

type WeeklyActivityStats struct {
	ActivityID   uint          `json:"activityId"`
	ActivityName string        `json:"activityName"`
	Data         []WeeklyPoint `json:"data"`
}

type MonthlyActivityStats struct {
	ActivityID     uint    `json:"activityId"`
	ActivityName   string  `json:"activityName"`
	TotalCompleted int     `json:"totalCompleted"`
	TotalTarget    int     `json:"totalTarget"`
	Percentage     float64 `json:"percentage"`
}

// Dashboard sums today's completions and the daily target across the
// caller's active activities. Streak is a fixed placeholder: the
// consecutive-day computation was never implemented upstream and is
// pending product clarification.
func (s *StatsService) Dashboard(userID uint) (*DashboardStats, error) {
	today := dayStart(time.Now())

	var completed int
	err := s.db.Model(&models.Record{}).
		Where("user_id = ? AND date >= ?", userID, today).
		Select("COALESCE(SUM(completed), 0)").
		Scan(&completed).Error
	if err != nil {
		return nil, err
	}

	var activities []models.Activity
	if err := s.db.Where("user_id = ?", userID).Find(&activities).Error; err != nil {
		return nil, err
	}

	target := 0
	for _, a := range activities {
		if a.IsActive {
			target += a.Target
		}
	}

	return &DashboardStats{
		TodayCompleted:  completed,
		TodayTarget:     target,
		Streak:          0,
		TotalActivities: len(activities),
	}, nil
}

// Weekly emits, per activity, one entry for each of the 7 days of the
// current week (Monday start, pinned explicitly), zero-filling days
// without a record.
func (s *StatsService) Weekly(userID uint) ([]WeeklyActivityStats, error) {
	start := startOfWeek(time.Now())
	end := dayEnd(start.AddDate(0, 0, 6))

	var activities []models.Activity
	if err := s.db.Where("user_id = ?", userID).Find(&activities).Error; err != nil {
		return nil, err
	}

	stats := make([]WeeklyActivityStats, 0, len(activities))
	for _, activity := range activities {
		var records []models.Record
		err := s.db.
			Where("activity_id = ? AND user_id = ? AND date BETWEEN ? AND ?",
				activity.ID, userID, start, end).
			Find(&records).Error
		if err != nil {
			return nil, err
		}

		idx := map[string]models.Record{}
		for _, r := range records {
			idx[r.Date.Format("2006-01-02")] = r
		}

		data := make([]WeeklyPoint, 0, 7)
		for i := 0; i < 7; i++ {
			key := start.AddDate(0, 0, i).Format("2006-01-02")
			data = append(data, WeeklyPoint{
				Date:      key,
				Completed: idx[key].Completed, // zero value when missing
				Target:    activity.Target,
			})
		}

		stats = append(stats, WeeklyActivityStats{
			ActivityID:   activity.ID,
			ActivityName: activity.Name,
			Data:         data,
		})
	}
	return stats, nil
}

// Monthly sums each activity's completions over the current calendar
// month against target × daysInMonth. Zero targets yield 0%, never a
// division by zero.
func (s *StatsService) Monthly(userID uint) ([]MonthlyActivityStats, error) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	daysInMonth := last.Day()

	var activities []models.Activity
	if err := s.db.Where("user_id = ?", userID).Find(&activities).Error; err != nil {
		return nil, err
	}

	stats := make([]MonthlyActivityStats, 0, len(activities))
	for _, activity := range activities {
		var completed int
		err := s.db.Model(&models.Record{}).
			Where("activity_id = ? AND user_id = ? AND date BETWEEN ? AND ?",
				activity.ID, userID, first, dayEnd(last)).
			Select("COALESCE(SUM(completed), 0)").
			Scan(&completed).Error
		if err != nil {
			return nil, err
		}

		totalTarget := activity.Target * daysInMonth
		percentage := 0.0
		if totalTarget > 0 {
			percentage = float64(completed) / float64(totalTarget) * 100.0
		}

		stats = append(stats, MonthlyActivityStats{
			ActivityID:     activity.ID,
			ActivityName:   activity.Name,
			TotalCompleted: completed,
			TotalTarget:    totalTarget,
			Percentage:     percentage,
		})
	}
	return stats, nil
}

// ---------- date helpers ----------

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfWeek returns local midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}
