package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/wearmock/internal/auth"
	"github.com/yourname/wearmock/internal/pagination"
)

func GetSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		start, end, err := parseWindow(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid sleep query")
			return
		}
		limit, err := parseLimit(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid sleep query")
			return
		}
		records := app.Store().GetSleepData(user.ID, start, end)
		page, next, err := pagination.Page(records, limit, c.Query("nextToken"))
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid continuation token")
			return
		}
		HandleSuccess(c, app.Logger(), page, pageMeta(next))
	}
}

func GetRecovery(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		start, end, err := parseWindow(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid recovery query")
			return
		}
		limit, err := parseLimit(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid recovery query")
			return
		}
		records := app.Store().GetRecoveryData(user.ID, start, end)
		page, next, err := pagination.Page(records, limit, c.Query("nextToken"))
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid continuation token")
			return
		}
		HandleSuccess(c, app.Logger(), page, pageMeta(next))
	}
}

func GetCycles(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		start, end, err := parseWindow(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid cycle query")
			return
		}
		limit, err := parseLimit(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid cycle query")
			return
		}
		records := app.Store().GetCycleData(user.ID, start, end)
		page, next, err := pagination.Page(records, limit, c.Query("nextToken"))
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid continuation token")
			return
		}
		HandleSuccess(c, app.Logger(), page, pageMeta(next))
	}
}

func GetWorkouts(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		start, end, err := parseWindow(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid workout query")
			return
		}
		limit, err := parseLimit(c)
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid workout query")
			return
		}
		records := app.Store().GetWorkoutData(user.ID, start, end)
		page, next, err := pagination.Page(records, limit, c.Query("nextToken"))
		if err != nil {
			HandleError(c, app.Logger(), err, "invalid continuation token")
			return
		}
		HandleSuccess(c, app.Logger(), page, pageMeta(next))
	}
}

func pageMeta(next string) map[string]any {
	meta := map[string]any{}
	if next != "" {
		meta["next_token"] = next
	}
	return meta
}
