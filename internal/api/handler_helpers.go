package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/response"
)

func HandleError(c *gin.Context, logger internal.Logger, err error, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)

	var appErr *internal.AppError
	if !errors.As(err, &appErr) {
		appErr = internal.NewAppError(500, msg+": "+err.Error())
	}
	c.JSON(appErr.Code, response.FromAppError(appErr))
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Debugf("[request_id=%s] Success", requestID)
	c.JSON(200, response.Success(data, meta))
}

// parseWindow reads the optional start/end query params. Dates accept
// RFC3339 or plain YYYY-MM-DD; the default window is the last
// DefaultHistoryDays up to now. A bad date or inverted range rejects,
// never silently falls back.
func parseWindow(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -internal.DefaultHistoryDays)
	end := now

	if raw := c.Query("start"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, internal.ValidationError("invalid start date: " + raw)
		}
		start = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, internal.ValidationError("invalid end date: " + raw)
		}
		end = t
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, internal.ValidationError("end date before start date")
	}
	return start, end, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

// parseLimit reads the optional limit query param. A non-integer limit
// rejects; an integer outside [1, 100] is clamped downstream.
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, internal.ValidationError("invalid limit: " + raw)
	}
	return n, nil
}
