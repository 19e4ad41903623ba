package internal

import (
	"encoding/json"
	"time"
)

// Millis is a duration that marshals as integer milliseconds, the unit
// the wearable API uses on the wire.
type Millis time.Duration

func (m Millis) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(m).Milliseconds())
}

func (m *Millis) UnmarshalJSON(b []byte) error {
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Millis(time.Duration(v) * time.Millisecond)
	return nil
}

// Duration returns the underlying time.Duration.
func (m Millis) Duration() time.Duration { return time.Duration(m) }

// TimeSeriesRecord is implemented by every per-user record type. The
// store's generic sort and range-filter logic only needs the owning
// user and the record's primary time field.
type TimeSeriesRecord interface {
	OwnerID() string
	PrimaryTime() time.Time
}

type User struct {
	ID        string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ScoreStateScored marks a fully scored record. The mock always emits
// scored records; the constant exists because the upstream API carries
// the field on every sleep payload.
const ScoreStateScored = "SCORED"

type SleepRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	Nap        bool       `json:"nap"`
	ScoreState string     `json:"score_state"`
	Score      SleepScore `json:"score"`
}

func (r SleepRecord) OwnerID() string        { return r.UserID }
func (r SleepRecord) PrimaryTime() time.Time { return r.Start }

type SleepScore struct {
	StageSummary    StageSummary `json:"stage_summary"`
	SleepNeeded     SleepNeeded  `json:"sleep_needed"`
	RespiratoryRate float64      `json:"respiratory_rate"`
	// All three are 0-100 percentages.
	SleepPerformancePercentage float64 `json:"sleep_performance_percentage"`
	SleepConsistencyPercentage float64 `json:"sleep_consistency_percentage"`
	SleepEfficiencyPercentage  float64 `json:"sleep_efficiency_percentage"`
}

type StageSummary struct {
	TotalInBedTime         Millis `json:"total_in_bed_time_milli"`
	TotalAwakeTime         Millis `json:"total_awake_time_milli"`
	TotalNoDataTime        Millis `json:"total_no_data_time_milli"`
	TotalLightSleepTime    Millis `json:"total_light_sleep_time_milli"`
	TotalSlowWaveSleepTime Millis `json:"total_slow_wave_sleep_time_milli"`
	TotalREMSleepTime      Millis `json:"total_rem_sleep_time_milli"`
	SleepCycleCount        int    `json:"sleep_cycle_count"`
	DisturbanceCount       int    `json:"disturbance_count"`
}

type SleepNeeded struct {
	Baseline       Millis `json:"baseline_milli"`
	NeedFromDebt   Millis `json:"need_from_sleep_debt_milli"`
	NeedFromStrain Millis `json:"need_from_recent_strain_milli"`
	Total          Millis `json:"total_milli"`
}

type RecoveryRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// CycleID and SleepID are back-references resolved by lookup; the
	// records they name live in their own collections.
	CycleID     string        `json:"cycle_id"`
	SleepID     string        `json:"sleep_id"`
	Calibrating bool          `json:"user_calibrating"`
	Score       RecoveryScore `json:"score"`
}

func (r RecoveryRecord) OwnerID() string        { return r.UserID }
func (r RecoveryRecord) PrimaryTime() time.Time { return r.CreatedAt }

type RecoveryScore struct {
	RecoveryScore    float64 `json:"recovery_score"`
	RestingHeartRate float64 `json:"resting_heart_rate"`
	HRVRMSSD         float64 `json:"hrv_rmssd_milli"`
	SpO2Percentage   float64 `json:"spo2_percentage"`
	SkinTempCelsius  float64 `json:"skin_temp_celsius"`
}

type CycleRecord struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Score     CycleScore `json:"score"`
}

func (r CycleRecord) OwnerID() string        { return r.UserID }
func (r CycleRecord) PrimaryTime() time.Time { return r.Start }

type CycleScore struct {
	Strain           float64 `json:"strain"`
	Kilojoule        float64 `json:"kilojoule"`
	AverageHeartRate float64 `json:"average_heart_rate"`
	MaxHeartRate     float64 `json:"max_heart_rate"`
}

type WorkoutRecord struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Start     time.Time    `json:"start"`
	End       time.Time    `json:"end"`
	SportID   int          `json:"sport_id"`
	SportName string       `json:"sport_name"`
	Score     WorkoutScore `json:"score"`
}

func (r WorkoutRecord) OwnerID() string        { return r.UserID }
func (r WorkoutRecord) PrimaryTime() time.Time { return r.Start }

type WorkoutScore struct {
	Strain              float64       `json:"strain"`
	AverageHeartRate    float64       `json:"average_heart_rate"`
	MaxHeartRate        float64       `json:"max_heart_rate"`
	Kilojoule           float64       `json:"kilojoule"`
	PercentRecorded     float64       `json:"percent_recorded"`
	DistanceMeter       float64       `json:"distance_meter"`
	AltitudeGainMeter   float64       `json:"altitude_gain_meter"`
	AltitudeChangeMeter float64       `json:"altitude_change_meter"`
	ZoneDuration        ZoneDurations `json:"zone_duration"`
}

// ZoneDurations splits a session across the six heart-rate zones. The
// buckets always sum to the session duration.
type ZoneDurations struct {
	ZoneZero  Millis `json:"zone_zero_milli"`
	ZoneOne   Millis `json:"zone_one_milli"`
	ZoneTwo   Millis `json:"zone_two_milli"`
	ZoneThree Millis `json:"zone_three_milli"`
	ZoneFour  Millis `json:"zone_four_milli"`
	ZoneFive  Millis `json:"zone_five_milli"`
}

// Total is the sum of all six zone buckets.
func (z ZoneDurations) Total() time.Duration {
	return z.ZoneZero.Duration() + z.ZoneOne.Duration() + z.ZoneTwo.Duration() +
		z.ZoneThree.Duration() + z.ZoneFour.Duration() + z.ZoneFive.Duration()
}
