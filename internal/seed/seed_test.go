package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/generate"
	"github.com/yourname/wearmock/internal/store"
)

func TestRunSeedsRosterWithHistory(t *testing.T) {
	s := store.New(internal.NewNopLogger())
	g := generate.New(generate.NewRand())

	const days = 30
	require.NoError(t, Run(s, g, 3, days, internal.NewNopLogger()))

	users := s.Users()
	require.Len(t, users, 3)

	// Wide query bounds: the latest night's bedtime can sit later in
	// the current day than time.Now.
	end := time.Now().AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -(days + 2))
	for _, u := range users {
		assert.NotEmpty(t, u.Email)

		sleeps := s.GetSleepData(u.ID, start, end)
		assert.Len(t, sleeps, days)
		cycles := s.GetCycleData(u.ID, start, end)
		assert.Len(t, cycles, days)
		recoveries := s.GetRecoveryData(u.ID, start, end)
		assert.Len(t, recoveries, days)
		workouts := s.GetWorkoutData(u.ID, start, end)
		assert.NotEmpty(t, workouts)
	}
}

func TestRunCapsAtRosterSize(t *testing.T) {
	s := store.New(internal.NewNopLogger())
	g := generate.New(generate.NewRand())

	require.NoError(t, Run(s, g, 100, 2, internal.NewNopLogger()))
	assert.Len(t, s.Users(), len(roster))
}

func TestBackfillLinksRecoveriesToCycles(t *testing.T) {
	s := store.New(internal.NewNopLogger())
	g := generate.New(generate.NewRand())
	s.AddUser(&internal.User{ID: "u1"})

	end := time.Now()
	start := end.AddDate(0, 0, -9)
	require.NoError(t, BackfillUser(s, g, "u1", start, end))

	cycles := s.GetCycleData("u1", start.AddDate(0, 0, -1), end.AddDate(0, 0, 1))
	cycleIDs := make(map[string]bool, len(cycles))
	for _, c := range cycles {
		cycleIDs[c.ID] = true
	}

	recoveries := s.GetRecoveryData("u1", start.AddDate(0, 0, -1), end.AddDate(0, 0, 1))
	require.NotEmpty(t, recoveries)
	for _, rec := range recoveries {
		assert.True(t, cycleIDs[rec.CycleID], "recovery %s points at unknown cycle %q", rec.ID, rec.CycleID)
	}
}

func TestBackfillUnknownUser(t *testing.T) {
	s := store.New(internal.NewNopLogger())
	g := generate.New(generate.NewRand())
	err := BackfillUser(s, g, "ghost", time.Now().AddDate(0, 0, -5), time.Now())
	assert.Error(t, err)
}
