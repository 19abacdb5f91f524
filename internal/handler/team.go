package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hslcabal/team-roster-service/internal/service"
	"github.com/hslcabal/team-roster-service/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) list(c *gin.Context) {
	teams, err := h.svc.ListTeams(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, teams)
}
