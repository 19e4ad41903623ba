package generate

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourname/wearmock/internal"
)

type sport struct {
	id        int
	name      string
	intensity float64 // strain multiplier per hour of effort
	distance  bool    // covers ground; distance stays zero otherwise
	outdoor   bool    // altitude stays zero for indoor sports
	speedKmh  float64
}

var sports = []sport{
	{id: 0, name: "running", intensity: 1.3, distance: true, outdoor: true, speedKmh: 10},
	{id: 1, name: "cycling", intensity: 1.1, distance: true, outdoor: true, speedKmh: 25},
	{id: 33, name: "swimming", intensity: 1.2, distance: true, outdoor: false, speedKmh: 3},
	{id: 45, name: "weightlifting", intensity: 0.9, distance: false, outdoor: false},
	{id: 52, name: "hiking", intensity: 0.8, distance: true, outdoor: true, speedKmh: 5},
	{id: 34, name: "tennis", intensity: 1.0, distance: false, outdoor: true},
	{id: 44, name: "yoga", intensity: 0.5, distance: false, outdoor: false},
	{id: 48, name: "functional fitness", intensity: 1.15, distance: false, outdoor: false},
}

// Workouts allocates 3-5 sessions per calendar week across distinct
// days of [start, end], then fills in each session. Never every day:
// the weekly target caps at five.
func (g *Generator) Workouts(userID string, start, end time.Time) []internal.WorkoutRecord {
	var records []internal.WorkoutRecord
	first := dayOf(start)
	last := dayOf(end)

	for weekStart := first; !weekStart.After(last); weekStart = weekStart.AddDate(0, 0, 7) {
		var days []time.Time
		for i := 0; i < 7; i++ {
			d := weekStart.AddDate(0, 0, i)
			if d.After(last) {
				break
			}
			days = append(days, d)
		}
		target := internal.WorkoutsPerWeekMin +
			g.rnd.Intn(internal.WorkoutsPerWeekMax-internal.WorkoutsPerWeekMin+1)
		if target > len(days) {
			target = len(days)
		}
		for _, d := range g.pickDays(days, target) {
			records = append(records, g.workoutForDay(userID, d))
		}
	}
	return records
}

// pickDays samples n distinct days via a partial Fisher-Yates shuffle.
func (g *Generator) pickDays(days []time.Time, n int) []time.Time {
	picked := make([]time.Time, len(days))
	copy(picked, days)
	for i := 0; i < n; i++ {
		j := i + g.rnd.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:n]
}

func (g *Generator) workoutForDay(userID string, day time.Time) internal.WorkoutRecord {
	sp := sports[g.rnd.Intn(len(sports))]

	minutes := internal.WorkoutMinutesMin +
		g.rnd.Intn(internal.WorkoutMinutesMax-internal.WorkoutMinutesMin+1)
	duration := time.Duration(minutes) * time.Minute
	durHours := duration.Hours()

	// Waking-hours start; a 90-minute session beginning at 20:00 still
	// ends well before midnight.
	startOffset := time.Duration(g.between(6, 20) * float64(time.Hour))
	start := day.Add(startOffset)
	end := start.Add(duration)

	strain := clamp(durHours*10*sp.intensity+g.noise(2), internal.StrainMin, internal.StrainMax)
	avgHR := clamp(90+4*strain+g.noise(10), internal.HeartRateMin, internal.HeartRateMax-10)
	maxHR := clamp(avgHR+10+g.between(0, 40), avgHR+1, internal.HeartRateMax)
	kilojoule := clamp(durHours*(1500+150*strain)+g.noise(300), 0, 1e6)

	var distance float64
	if sp.distance {
		distance = durHours * sp.speedKmh * 1000 * (1 + g.noise(0.15))
	}
	var altGain, altChange float64
	if sp.outdoor {
		altGain = g.between(0, 300)
		altChange = altGain * g.noise(0.5)
	}

	return internal.WorkoutRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: end,
		UpdatedAt: end,
		Start:     start,
		End:       end,
		SportID:   sp.id,
		SportName: sp.name,
		Score: internal.WorkoutScore{
			Strain:              strain,
			AverageHeartRate:    avgHR,
			MaxHeartRate:        maxHR,
			Kilojoule:           kilojoule,
			PercentRecorded:     g.between(95, 100),
			DistanceMeter:       distance,
			AltitudeGainMeter:   altGain,
			AltitudeChangeMeter: altChange,
			ZoneDuration:        g.zoneSplit(duration),
		},
	}
}

// zoneSplit distributes the session across the six heart-rate zones
// with random weights. Zone zero absorbs the rounding residue so the
// buckets sum to the session duration exactly.
func (g *Generator) zoneSplit(total time.Duration) internal.ZoneDurations {
	weights := make([]float64, 6)
	sum := 0.0
	for i := range weights {
		weights[i] = 0.1 + g.rnd.Float64()
		sum += weights[i]
	}

	buckets := make([]time.Duration, 6)
	allocated := time.Duration(0)
	for i := 1; i < 6; i++ {
		buckets[i] = time.Duration(float64(total) * weights[i] / sum)
		allocated += buckets[i]
	}
	buckets[0] = total - allocated

	return internal.ZoneDurations{
		ZoneZero:  internal.Millis(buckets[0]),
		ZoneOne:   internal.Millis(buckets[1]),
		ZoneTwo:   internal.Millis(buckets[2]),
		ZoneThree: internal.Millis(buckets[3]),
		ZoneFour:  internal.Millis(buckets[4]),
		ZoneFive:  internal.Millis(buckets[5]),
	}
}
