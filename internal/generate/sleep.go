package generate

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourname/wearmock/internal"
)

// Stage fractions of total time in bed, before jitter.
const (
	awakeFraction = 0.05
	lightFraction = 0.50
	deepFraction  = 0.20
	remFraction   = 0.25
)

// Sleep emits exactly one night of sleep per calendar day in
// [start, end] inclusive. Bedtime falls in [22:00, 24:00) and duration
// in [7, 9] hours, so consecutive records can never overlap: the
// latest possible end (09:00 next day) is always before the earliest
// possible next bedtime (22:00).
func (g *Generator) Sleep(userID string, start, end time.Time) []internal.SleepRecord {
	var records []internal.SleepRecord
	for day := dayOf(start); !day.After(dayOf(end)); day = day.AddDate(0, 0, 1) {
		records = append(records, g.sleepForNight(userID, day))
	}
	return records
}

func (g *Generator) sleepForNight(userID string, day time.Time) internal.SleepRecord {
	bedOffset := time.Duration(g.between(0, 2) * float64(time.Hour))
	bedtime := day.Add(22*time.Hour + bedOffset)

	durationHours := g.between(internal.SleepHoursMin, internal.SleepHoursMax)
	duration := time.Duration(durationHours * float64(time.Hour))
	wake := bedtime.Add(duration)

	score := internal.SleepScore{
		StageSummary:    g.stageSummary(duration),
		SleepNeeded:     g.sleepNeeded(),
		RespiratoryRate: clamp(15+g.noise(2.5), internal.RespiratoryRateMin, internal.RespiratoryRateMax),
	}

	// Score baselines rise with duration: 7h sleeps start around 60,
	// 9h sleeps around 90.
	base := 60 + (durationHours-internal.SleepHoursMin)*15
	score.SleepPerformancePercentage = roundPct(base + g.noise(10))
	score.SleepConsistencyPercentage = roundPct(base + g.noise(15))
	score.SleepEfficiencyPercentage = roundPct(base + 8 + g.noise(8))

	return internal.SleepRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		CreatedAt:  wake,
		UpdatedAt:  wake,
		Start:      bedtime,
		End:        wake,
		Nap:        false,
		ScoreState: internal.ScoreStateScored,
		Score:      score,
	}
}

// stageSummary splits time in bed across stages. Each nominal fraction
// is jittered by up to two percentage points, then the set is
// renormalized so the stages sum to the full in-bed duration.
func (g *Generator) stageSummary(inBed time.Duration) internal.StageSummary {
	awake := awakeFraction + g.noise(0.02)
	light := lightFraction + g.noise(0.02)
	deep := deepFraction + g.noise(0.02)
	rem := remFraction + g.noise(0.02)
	total := awake + light + deep + rem

	awakeDur := time.Duration(float64(inBed) * awake / total)
	lightDur := time.Duration(float64(inBed) * light / total)
	deepDur := time.Duration(float64(inBed) * deep / total)
	// The REM bucket absorbs the rounding residue so the four stages
	// sum to the in-bed time exactly.
	remDur := inBed - awakeDur - lightDur - deepDur

	return internal.StageSummary{
		TotalInBedTime:         internal.Millis(inBed),
		TotalAwakeTime:         internal.Millis(awakeDur),
		TotalNoDataTime:        0,
		TotalLightSleepTime:    internal.Millis(lightDur),
		TotalSlowWaveSleepTime: internal.Millis(deepDur),
		TotalREMSleepTime:      internal.Millis(remDur),
		SleepCycleCount:        3 + g.rnd.Intn(3),
		DisturbanceCount:       g.rnd.Intn(11),
	}
}

func (g *Generator) sleepNeeded() internal.SleepNeeded {
	baseline := 8 * time.Hour
	debt := time.Duration(g.between(0, 1) * float64(time.Hour))
	strainNeed := time.Duration(g.between(0, 0.5) * float64(time.Hour))
	return internal.SleepNeeded{
		Baseline:       internal.Millis(baseline),
		NeedFromDebt:   internal.Millis(debt),
		NeedFromStrain: internal.Millis(strainNeed),
		Total:          internal.Millis(baseline + debt + strainNeed),
	}
}

// dayOf truncates to local midnight.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func roundPct(v float64) float64 {
	return float64(int(clamp(v, internal.PercentageMin, internal.PercentageMax) + 0.5))
}
