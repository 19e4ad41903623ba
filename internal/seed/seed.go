// Package seed pre-populates the store with a fixed roster of users
// and a rolling window of history. Re-seeding on startup is the only
// persistence this server has.
package seed

import (
	"fmt"
	"time"

	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/generate"
	"github.com/yourname/wearmock/internal/store"
)

var roster = []internal.User{
	{ID: "user-1001", Email: "alice.park@example.com", FirstName: "Alice", LastName: "Park"},
	{ID: "user-1002", Email: "ben.okafor@example.com", FirstName: "Ben", LastName: "Okafor"},
	{ID: "user-1003", Email: "carla.mendez@example.com", FirstName: "Carla", LastName: "Mendez"},
	{ID: "user-1004", Email: "dmitri.volkov@example.com", FirstName: "Dmitri", LastName: "Volkov"},
	{ID: "user-1005", Email: "emi.tanaka@example.com", FirstName: "Emi", LastName: "Tanaka"},
	{ID: "user-1006", Email: "farid.haddad@example.com", FirstName: "Farid", LastName: "Haddad"},
}

// Run seeds users tokens can be issued against, each with days of
// backfilled history ending today. It must complete before the server
// starts answering requests; the store is not built for concurrent
// seeding.
func Run(s *store.Store, g *generate.Generator, users, days int, logger internal.Logger) error {
	if users > len(roster) {
		users = len(roster)
	}
	end := time.Now()
	start := end.AddDate(0, 0, -(days - 1))

	for _, u := range roster[:users] {
		u := u
		s.AddUser(&u)
		if err := BackfillUser(s, g, u.ID, start, end); err != nil {
			return fmt.Errorf("seed: backfill %s: %w", u.ID, err)
		}
		logger.Infof("seeded %s with %d days of history", u.ID, days)
	}
	return nil
}

// BackfillUser generates and stores all four series for one user.
// Sleep goes first because recovery derives from it; cycle ids are
// linked onto recoveries by calendar day afterwards.
func BackfillUser(s *store.Store, g *generate.Generator, userID string, start, end time.Time) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}

	sleeps := g.Sleep(userID, start, end)
	cycles := g.Cycles(userID, start, end)
	recoveries := g.Recovery(userID, start, end, sleeps)
	workouts := g.Workouts(userID, start, end)

	linkCycles(recoveries, cycles)

	s.AddSleepData(userID, sleeps)
	s.AddCycleData(userID, cycles)
	s.AddRecoveryData(userID, recoveries)
	s.AddWorkoutData(userID, workouts)
	return nil
}

// linkCycles points each recovery at the cycle covering the same
// calendar day. The link is a plain identifier reference.
func linkCycles(recoveries []internal.RecoveryRecord, cycles []internal.CycleRecord) {
	byDay := make(map[string]string, len(cycles))
	for _, c := range cycles {
		byDay[c.Start.Format("2006-01-02")] = c.ID
	}
	for i := range recoveries {
		recoveries[i].CycleID = byDay[recoveries[i].CreatedAt.Format("2006-01-02")]
	}
}
