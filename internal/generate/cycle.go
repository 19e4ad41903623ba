package generate

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourname/wearmock/internal"
)

// Cycles emits one physiological cycle per day in [start, end]. Cycle
// boundaries are exact midnight-to-midnight 24-hour spans; that is an
// invariant, not a tendency.
func (g *Generator) Cycles(userID string, start, end time.Time) []internal.CycleRecord {
	var records []internal.CycleRecord
	for day := dayOf(start); !day.After(dayOf(end)); day = day.AddDate(0, 0, 1) {
		records = append(records, g.cycleForDay(userID, day))
	}
	return records
}

func (g *Generator) cycleForDay(userID string, day time.Time) internal.CycleRecord {
	// Roughly half the days carry a workout, which shifts the strain
	// sampling range upward.
	var strain float64
	if g.rnd.Float64() < 0.5 {
		strain = g.between(10, internal.StrainMax)
	} else {
		strain = g.between(internal.StrainMin, 10)
	}

	avgHR := clamp(60+3*strain+g.noise(8), internal.HeartRateMin, internal.HeartRateMax-10)
	maxHR := clamp(avgHR+10+g.between(0, 50), avgHR+1, internal.HeartRateMax)
	kilojoule := clamp(4000+350*strain+g.noise(600), 0, 1e6)

	cycleEnd := day.Add(24 * time.Hour)
	return internal.CycleRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: cycleEnd,
		UpdatedAt: cycleEnd,
		Start:     day,
		End:       cycleEnd,
		Score: internal.CycleScore{
			Strain:           strain,
			Kilojoule:        kilojoule,
			AverageHeartRate: avgHR,
			MaxHeartRate:     maxHR,
		},
	}
}
