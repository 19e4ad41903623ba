package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/wearmock/internal"
)

func newTestStore() *Store {
	return New(internal.NewNopLogger())
}

func sleepAt(id, userID string, start time.Time, dur time.Duration) internal.SleepRecord {
	return internal.SleepRecord{
		ID:     id,
		UserID: userID,
		Start:  start,
		End:    start.Add(dur),
	}
}

func TestAddAndGetUser(t *testing.T) {
	s := newTestStore()
	s.AddUser(&internal.User{ID: "u1", Email: "a@example.com", FirstName: "A", LastName: "One"})

	u, err := s.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)

	_, err = s.GetUser("nope")
	assert.Error(t, err)

	// Last write wins on the identifier.
	s.AddUser(&internal.User{ID: "u1", Email: "b@example.com"})
	u, err = s.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", u.Email)
}

func TestSleepDataSortedOnWrite(t *testing.T) {
	s := newTestStore()
	base := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)

	// Insert out of order across two calls.
	s.AddSleepData("u1", []internal.SleepRecord{
		sleepAt("c", "u1", base.AddDate(0, 0, 2), 8*time.Hour),
	})
	s.AddSleepData("u1", []internal.SleepRecord{
		sleepAt("a", "u1", base, 8*time.Hour),
		sleepAt("b", "u1", base.AddDate(0, 0, 1), 8*time.Hour),
	})

	got := s.GetSleepData("u1", base.AddDate(0, 0, -1), base.AddDate(0, 0, 10))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestDateRangeInclusive(t *testing.T) {
	s := newTestStore()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	var recs []internal.CycleRecord
	for i := 0; i < 5; i++ {
		day := base.AddDate(0, 0, i)
		recs = append(recs, internal.CycleRecord{ID: day.Format("2006-01-02"), UserID: "u1", Start: day, End: day.Add(24 * time.Hour)})
	}
	s.AddCycleData("u1", recs)

	// Both endpoints are inclusive.
	got := s.GetCycleData("u1", base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
	require.Len(t, got, 3)
	assert.Equal(t, "2024-03-02", got[0].ID)
	assert.Equal(t, "2024-03-04", got[2].ID)
}

func TestMissingUserYieldsEmpty(t *testing.T) {
	s := newTestStore()
	got := s.GetWorkoutData("ghost", time.Now().AddDate(0, 0, -90), time.Now())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTokenLifecycle(t *testing.T) {
	s := newTestStore()
	s.AddUser(&internal.User{ID: "u1"})

	// Pin the clock so TTL arithmetic is exact.
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	token, err := s.CreateToken("u1", 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// TTL 0 still validates at the creation instant.
	userID, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	// Any elapsed time past expiry fails and evicts.
	now = now.Add(5 * time.Millisecond)
	_, err = s.ValidateToken(token)
	assert.Error(t, err)

	// Idempotent: a second validation of the evicted token also fails.
	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestCreateTokenUnknownUser(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateToken("ghost", time.Hour)
	assert.Error(t, err)
}

func TestMultipleTokensCoexist(t *testing.T) {
	s := newTestStore()
	s.AddUser(&internal.User{ID: "u1"})

	t1, err := s.CreateToken("u1", time.Hour)
	require.NoError(t, err)
	t2, err := s.CreateToken("u1", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)

	for _, token := range []string{t1, t2} {
		userID, err := s.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
	}
}

func TestGetUserByTokenFailsClosed(t *testing.T) {
	s := newTestStore()
	s.AddUser(&internal.User{ID: "u1", Email: "a@example.com"})

	_, err := s.GetUserByToken("bogus")
	assert.Error(t, err)

	token, err := s.CreateToken("u1", time.Hour)
	require.NoError(t, err)
	u, err := s.GetUserByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestRecoverySortedByCreatedAt(t *testing.T) {
	s := newTestStore()
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s.AddRecoveryData("u1", []internal.RecoveryRecord{
		{ID: "later", UserID: "u1", CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "earlier", UserID: "u1", CreatedAt: base},
	})
	got := s.GetRecoveryData("u1", base.AddDate(0, 0, -1), base.AddDate(0, 0, 2))
	require.Len(t, got, 2)
	assert.Equal(t, "earlier", got[0].ID)
}
