package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hslcabal/team-roster-service/internal/service"
	"github.com/hslcabal/team-roster-service/pkg/response"
)

// corsMiddleware emits the permissive cross-origin policy the API promises:
// any origin, the four supported methods, and a Content-Type request header.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	})
}

// Register mounts middleware and all public routes on the given engine.
// Fixed routes (health probes, docs) are claimed first; everything else goes
// through the dispatcher.
func Register(r *gin.Engine, repo Pinger, teamSvc service.TeamService, playerSvc service.PlayerService, basePath string) {
	r.Use(gin.Recovery(), corsMiddleware())

	h := NewHealthHandler(repo)
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	RegisterDocs(r)

	d := NewDispatcher(basePath, NewTeamHandler(teamSvc), NewPlayerHandler(playerSvc))
	d.Register(r)
}

// RegisterDegraded wires an engine for a process whose store pool could not be
// built: liveness still answers, readiness fails, and every API request gets
// the fixed connection-failure response.
func RegisterDegraded(r *gin.Engine) {
	r.Use(gin.Recovery(), corsMiddleware())

	r.GET("/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
	})
	r.NoRoute(func(c *gin.Context) {
		response.WriteFailure(c, http.StatusInternalServerError, response.MsgConnectionFailed)
	})
}
