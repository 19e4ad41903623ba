package generate

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourname/wearmock/internal"
)

// defaultSleepQuality is used for days with no matching sleep record.
const defaultSleepQuality = 0.5

// Recovery derives one record per day in [start, end] from the user's
// sleep series. A day is matched to the sleep record whose *end*
// timestamp falls on that calendar day; the end-keyed matching is kept
// on purpose, day-boundary quirks included, because consumers were
// built against it.
func (g *Generator) Recovery(userID string, start, end time.Time, sleeps []internal.SleepRecord) []internal.RecoveryRecord {
	byWakeDay := make(map[time.Time]internal.SleepRecord, len(sleeps))
	for _, s := range sleeps {
		byWakeDay[dayOf(s.End)] = s
	}

	var records []internal.RecoveryRecord
	for day := dayOf(start); !day.After(dayOf(end)); day = day.AddDate(0, 0, 1) {
		quality := defaultSleepQuality
		sleepID := ""
		createdAt := day.Add(8 * time.Hour)
		if s, ok := byWakeDay[day]; ok {
			quality = s.Score.SleepPerformancePercentage / 100
			sleepID = s.ID
			createdAt = s.End
		}
		records = append(records, g.recoveryForDay(userID, sleepID, createdAt, quality))
	}
	return records
}

func (g *Generator) recoveryForDay(userID, sleepID string, createdAt time.Time, quality float64) internal.RecoveryRecord {
	// 70% sleep-linked, 30% noise.
	recovery := clamp(70*quality+30*g.rnd.Float64(),
		internal.RecoveryScoreMin, internal.RecoveryScoreMax)

	// Resting HR falls as recovery rises, HRV climbs with it.
	restingHR := clamp(90-0.35*recovery+g.noise(5),
		internal.RestingHeartRateMin, internal.RestingHeartRateMax)
	hrv := clamp(20+recovery+g.noise(15), internal.HRVMin, internal.HRVMax)

	// SpO2 and skin temperature correlate only weakly.
	spo2 := clamp(97+(recovery-50)/100+g.noise(1.5), internal.SpO2Min, internal.SpO2Max)
	skinTemp := clamp(34.5+(recovery-50)/200+g.noise(0.7),
		internal.SkinTempMin, internal.SkinTempMax)

	return internal.RecoveryRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
		SleepID:     sleepID,
		Calibrating: g.rnd.Float64() < 0.05,
		Score: internal.RecoveryScore{
			RecoveryScore:    recovery,
			RestingHeartRate: restingHR,
			HRVRMSSD:         hrv,
			SpO2Percentage:   spo2,
			SkinTempCelsius:  skinTemp,
		},
	}
}
