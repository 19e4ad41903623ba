package generate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/wearmock/internal"
)

func TestSleepSevenDayScenario(t *testing.T) {
	g := New(NewRand())
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	records := g.Sleep("u1", start, end)
	require.Len(t, records, 7)

	for i, rec := range records {
		assert.Equal(t, "u1", rec.UserID)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.Nap)
		assert.Equal(t, internal.ScoreStateScored, rec.ScoreState)

		hours := rec.End.Sub(rec.Start).Hours()
		assert.GreaterOrEqual(t, hours, internal.SleepHoursMin)
		assert.LessOrEqual(t, hours, internal.SleepHoursMax)

		// Sorted, and no two records overlap.
		if i > 0 {
			assert.True(t, rec.Start.After(records[i-1].End),
				"night %d starts before night %d ended", i, i-1)
		}
	}
}

func TestSleepBedtimeWindow(t *testing.T) {
	g := New(NewRand())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		rec := g.sleepForNight("u1", day)
		bedtime := rec.Start.Sub(day)
		assert.GreaterOrEqual(t, bedtime, 22*time.Hour)
		assert.Less(t, bedtime, 24*time.Hour)
	}
}

func TestSleepStagesSumToInBedTime(t *testing.T) {
	g := New(NewRand())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		rec := g.sleepForNight("u1", day)
		st := rec.Score.StageSummary

		sum := st.TotalAwakeTime.Duration() + st.TotalLightSleepTime.Duration() +
			st.TotalSlowWaveSleepTime.Duration() + st.TotalREMSleepTime.Duration() +
			st.TotalNoDataTime.Duration()
		assert.Equal(t, st.TotalInBedTime.Duration(), sum)
		assert.Equal(t, rec.End.Sub(rec.Start), st.TotalInBedTime.Duration())
	}
}

func TestSleepScoreRanges(t *testing.T) {
	g := New(NewRand())
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := g.Sleep("u1", start, start.AddDate(0, 0, 59))

	for _, rec := range records {
		sc := rec.Score
		for _, pct := range []float64{sc.SleepPerformancePercentage, sc.SleepConsistencyPercentage, sc.SleepEfficiencyPercentage} {
			assert.GreaterOrEqual(t, pct, internal.PercentageMin)
			assert.LessOrEqual(t, pct, internal.PercentageMax)
		}
		assert.GreaterOrEqual(t, sc.RespiratoryRate, internal.RespiratoryRateMin)
		assert.LessOrEqual(t, sc.RespiratoryRate, internal.RespiratoryRateMax)
		assert.Equal(t, sc.SleepNeeded.Total.Duration(),
			sc.SleepNeeded.Baseline.Duration()+sc.SleepNeeded.NeedFromDebt.Duration()+sc.SleepNeeded.NeedFromStrain.Duration())
	}
}

// Longer nights should score higher on average.
func TestSleepPerformanceRisesWithDuration(t *testing.T) {
	g := New(NewRand())
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	var shortSum, shortN, longSum, longN float64
	for i := 0; i < 2000; i++ {
		rec := g.sleepForNight("u1", day)
		hours := rec.End.Sub(rec.Start).Hours()
		if hours < 7.5 {
			shortSum += rec.Score.SleepPerformancePercentage
			shortN++
		} else if hours > 8.5 {
			longSum += rec.Score.SleepPerformancePercentage
			longN++
		}
	}
	require.NotZero(t, shortN)
	require.NotZero(t, longN)
	assert.Greater(t, longSum/longN, shortSum/shortN)
}
