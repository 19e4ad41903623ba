// Package store is the single source of truth for users, tokens, and
// every per-user time series. All state is process-lifetime and
// in-memory; restarting the server resets it.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/yourname/wearmock/internal"
)

type Store struct {
	mu         sync.RWMutex
	users      map[string]*internal.User
	tokens     map[string]tokenEntry
	sleeps     map[string][]internal.SleepRecord
	recoveries map[string][]internal.RecoveryRecord
	cycles     map[string][]internal.CycleRecord
	workouts   map[string][]internal.WorkoutRecord
	logger     internal.Logger
	now        func() time.Time
}

func New(logger internal.Logger) *Store {
	return &Store{
		users:      make(map[string]*internal.User),
		tokens:     make(map[string]tokenEntry),
		sleeps:     make(map[string][]internal.SleepRecord),
		recoveries: make(map[string][]internal.RecoveryRecord),
		cycles:     make(map[string][]internal.CycleRecord),
		workouts:   make(map[string][]internal.WorkoutRecord),
		logger:     logger,
		now:        time.Now,
	}
}

// AddUser inserts or overwrites a user by identifier. Last write wins.
func (s *Store) AddUser(u *internal.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) GetUser(id string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, internal.NotFoundError("store: user not found")
	}
	return u, nil
}

// GetUserByToken resolves a bearer token to its owner. It fails closed:
// any token invalidity surfaces as an authentication error, never as a
// partially resolved user.
func (s *Store) GetUserByToken(token string) (*internal.User, error) {
	userID, err := s.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, internal.AuthenticationError("store: token owner no longer exists")
	}
	return u, nil
}

// Users returns the current roster, sorted by identifier.
func (s *Store) Users() []internal.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// appendSorted appends records and re-sorts the whole collection by
// primary time. Sorting on every write means readers never observe
// out-of-order data regardless of insertion order.
func appendSorted[T internal.TimeSeriesRecord](dst, recs []T) []T {
	dst = append(dst, recs...)
	sort.SliceStable(dst, func(i, j int) bool {
		return dst[i].PrimaryTime().Before(dst[j].PrimaryTime())
	})
	return dst
}

// rangeInclusive returns the subsequence whose primary time falls in
// [start, end], inclusive on both ends. Input must already be sorted.
func rangeInclusive[T internal.TimeSeriesRecord](recs []T, start, end time.Time) []T {
	out := make([]T, 0)
	for _, r := range recs {
		t := r.PrimaryTime()
		if t.Before(start) {
			continue
		}
		if t.After(end) {
			break
		}
		out = append(out, r)
	}
	return out
}

func (s *Store) AddSleepData(userID string, recs []internal.SleepRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sleeps[userID] = appendSorted(s.sleeps[userID], recs)
}

// GetSleepData returns the user's sleep records in [start, end]. An
// unknown user yields an empty slice, never an error.
func (s *Store) GetSleepData(userID string, start, end time.Time) []internal.SleepRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rangeInclusive(s.sleeps[userID], start, end)
}

func (s *Store) AddRecoveryData(userID string, recs []internal.RecoveryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recoveries[userID] = appendSorted(s.recoveries[userID], recs)
}

func (s *Store) GetRecoveryData(userID string, start, end time.Time) []internal.RecoveryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rangeInclusive(s.recoveries[userID], start, end)
}

func (s *Store) AddCycleData(userID string, recs []internal.CycleRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycles[userID] = appendSorted(s.cycles[userID], recs)
}

func (s *Store) GetCycleData(userID string, start, end time.Time) []internal.CycleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rangeInclusive(s.cycles[userID], start, end)
}

func (s *Store) AddWorkoutData(userID string, recs []internal.WorkoutRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts[userID] = appendSorted(s.workouts[userID], recs)
}

func (s *Store) GetWorkoutData(userID string, start, end time.Time) []internal.WorkoutRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rangeInclusive(s.workouts[userID], start, end)
}
