package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/wearmock/internal/auth"
)

// NewRouter builds the gin engine with the full route table. Shared
// between main and the HTTP tests.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(CORSMiddleware())
	r.Use(LoggingMiddleware(app.Logger()))

	v1 := r.Group("/v1")
	v1.POST("/oauth/token", PostToken(app))

	protected := v1.Group("")
	protected.Use(auth.Middleware(app.Store(), app.Logger()))
	protected.GET("/user/profile", GetProfile(app))
	protected.GET("/sleep", GetSleep(app))
	protected.GET("/recovery", GetRecovery(app))
	protected.GET("/cycle", GetCycles(app))
	protected.GET("/workout", GetWorkouts(app))
	protected.GET("/analytics/daily", GetDailySummaries(app))

	return r
}
