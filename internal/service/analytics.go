// Package service computes derived insights over stored records.
package service

import (
	"time"

	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/store"
)

// DefaultSummaryDays is the summary window applied when a request
// gives no explicit range.
const DefaultSummaryDays = 30

type DataCompleteness struct {
	HasSleep    bool `json:"has_sleep"`
	HasRecovery bool `json:"has_recovery"`
	HasCycle    bool `json:"has_cycle"`
	HasWorkout  bool `json:"has_workout"`
}

// DailySummary condenses one day of records into headline metrics.
// Pointer fields are nil when the underlying record is missing.
type DailySummary struct {
	UserID            string           `json:"user_id"`
	Date              string           `json:"date"`
	RecoveryScore     *float64         `json:"recovery_score,omitempty"`
	SleepQualityScore *float64         `json:"sleep_quality_score,omitempty"`
	TotalStrain       *float64         `json:"total_strain,omitempty"`
	SleepDurationHrs  *float64         `json:"sleep_duration_hours,omitempty"`
	AverageHRV        *float64         `json:"average_hrv,omitempty"`
	RestingHeartRate  *float64         `json:"resting_heart_rate,omitempty"`
	RespiratoryRate   *float64         `json:"respiratory_rate,omitempty"`
	Completeness      DataCompleteness `json:"data_completeness"`
	ComputedAt        time.Time        `json:"computed_at"`
}

// SleepQualityScore rates a night 0-100: up to 40 points for duration
// (7-9 h is optimal), up to 40 for efficiency (asleep vs. in bed), and
// up to 20 for few disturbances (two points lost per disturbance).
func SleepQualityScore(rec internal.SleepRecord) float64 {
	hours := rec.End.Sub(rec.Start).Hours()

	var durationScore float64
	switch {
	case hours >= 7 && hours <= 9:
		durationScore = 40
	case hours >= 6 && hours < 7:
		durationScore = 30
	case hours >= 5 && hours < 6:
		durationScore = 20
	case hours > 9 && hours <= 10:
		durationScore = 30
	default:
		durationScore = 10
	}

	stages := rec.Score.StageSummary
	inBed := stages.TotalInBedTime.Duration()
	var efficiencyScore float64
	if inBed > 0 {
		asleep := inBed - stages.TotalAwakeTime.Duration() - stages.TotalNoDataTime.Duration()
		efficiencyScore = float64(asleep) / float64(inBed) * 40
		if efficiencyScore > 40 {
			efficiencyScore = 40
		}
	}

	disturbanceScore := 20 - float64(stages.DisturbanceCount)*2
	if disturbanceScore < 0 {
		disturbanceScore = 0
	}

	total := durationScore + efficiencyScore + disturbanceScore
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return float64(int(total + 0.5))
}

// ComputeDailySummary folds whichever records exist for one date into
// a summary. Missing record types just leave their metrics nil.
func ComputeDailySummary(userID, date string, sleep *internal.SleepRecord,
	recovery *internal.RecoveryRecord, cycle *internal.CycleRecord, workoutCount int) DailySummary {

	summary := DailySummary{
		UserID: userID,
		Date:   date,
		Completeness: DataCompleteness{
			HasSleep:    sleep != nil,
			HasRecovery: recovery != nil,
			HasCycle:    cycle != nil,
			HasWorkout:  workoutCount > 0,
		},
		ComputedAt: time.Now(),
	}

	if sleep != nil {
		quality := SleepQualityScore(*sleep)
		hours := sleep.End.Sub(sleep.Start).Hours()
		resp := sleep.Score.RespiratoryRate
		summary.SleepQualityScore = &quality
		summary.SleepDurationHrs = &hours
		summary.RespiratoryRate = &resp
	}
	if recovery != nil {
		score := recovery.Score.RecoveryScore
		hrv := recovery.Score.HRVRMSSD
		rhr := recovery.Score.RestingHeartRate
		summary.RecoveryScore = &score
		summary.AverageHRV = &hrv
		summary.RestingHeartRate = &rhr
	}
	if cycle != nil {
		strain := cycle.Score.Strain
		summary.TotalStrain = &strain
	}
	return summary
}

// DailySummaries walks each day in [start, end] and summarizes the
// user's records for it. Sleep is matched by wake day (end timestamp),
// the same rule the recovery generator uses.
func DailySummaries(s *store.Store, userID string, start, end time.Time) []DailySummary {
	// Normalize to calendar-day bounds so midnight-anchored records on
	// the first day are not cut off by a mid-day start.
	lo := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	hi := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).Add(24 * time.Hour)

	sleeps := s.GetSleepData(userID, lo.AddDate(0, 0, -1), hi)
	recoveries := s.GetRecoveryData(userID, lo, hi)
	cycles := s.GetCycleData(userID, lo, hi)
	workouts := s.GetWorkoutData(userID, lo, hi)

	sleepByDay := make(map[string]internal.SleepRecord)
	for _, rec := range sleeps {
		sleepByDay[rec.End.Format("2006-01-02")] = rec
	}
	recoveryByDay := make(map[string]internal.RecoveryRecord)
	for _, rec := range recoveries {
		recoveryByDay[rec.CreatedAt.Format("2006-01-02")] = rec
	}
	cycleByDay := make(map[string]internal.CycleRecord)
	for _, rec := range cycles {
		cycleByDay[rec.Start.Format("2006-01-02")] = rec
	}
	workoutsByDay := make(map[string]int)
	for _, rec := range workouts {
		workoutsByDay[rec.Start.Format("2006-01-02")]++
	}

	var summaries []DailySummary
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		var sleep *internal.SleepRecord
		if rec, ok := sleepByDay[date]; ok {
			sleep = &rec
		}
		var recovery *internal.RecoveryRecord
		if rec, ok := recoveryByDay[date]; ok {
			recovery = &rec
		}
		var cycle *internal.CycleRecord
		if rec, ok := cycleByDay[date]; ok {
			cycle = &rec
		}
		summaries = append(summaries,
			ComputeDailySummary(userID, date, sleep, recovery, cycle, workoutsByDay[date]))
	}
	return summaries
}
