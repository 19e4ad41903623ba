package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/auth"
	"github.com/yourname/wearmock/internal/service"
)

// GetDailySummaries condenses the user's records into per-day
// summaries. Default window: last 30 days.
func GetDailySummaries(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		now := time.Now()
		start := now.AddDate(0, 0, -(service.DefaultSummaryDays - 1))
		end := now
		if raw := c.Query("start"); raw != "" {
			t, err := parseDate(raw)
			if err != nil {
				HandleError(c, app.Logger(), internal.ValidationError("invalid start date: "+raw), "daily summaries")
				return
			}
			start = t
		}
		if raw := c.Query("end"); raw != "" {
			t, err := parseDate(raw)
			if err != nil {
				HandleError(c, app.Logger(), internal.ValidationError("invalid end date: "+raw), "daily summaries")
				return
			}
			end = t
		}
		if end.Before(start) {
			HandleError(c, app.Logger(), internal.ValidationError("end date before start date"), "daily summaries")
			return
		}

		summaries := service.DailySummaries(app.Store(), user.ID, start, end)
		HandleSuccess(c, app.Logger(), summaries, nil)
	}
}
