package internal

// Physiological bounds every generator honors. These are part of the
// API contract: any record the server emits stays inside them.
const (
	HeartRateMin = 40.0
	HeartRateMax = 200.0

	RestingHeartRateMin = 40.0
	RestingHeartRateMax = 100.0

	HRVMin = 20.0
	HRVMax = 150.0

	StrainMin = 0.0
	StrainMax = 21.0

	RecoveryScoreMin = 0.0
	RecoveryScoreMax = 100.0

	PercentageMin = 0.0
	PercentageMax = 100.0

	RespiratoryRateMin = 12.0
	RespiratoryRateMax = 20.0

	SpO2Min = 95.0
	SpO2Max = 100.0

	SkinTempMin = 33.0
	SkinTempMax = 36.0

	SleepHoursMin = 7.0
	SleepHoursMax = 9.0

	WorkoutsPerWeekMin = 3
	WorkoutsPerWeekMax = 5

	WorkoutMinutesMin = 20
	WorkoutMinutesMax = 90
)

// DefaultHistoryDays is the query window applied when a collection
// request gives no explicit start/end, and the depth of the seeded
// backfill.
const DefaultHistoryDays = 90
