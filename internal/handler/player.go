package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hslcabal/team-roster-service/internal/service"
	"github.com/hslcabal/team-roster-service/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

// playerCreated is the 201 payload for a freshly added player.
type playerCreated struct {
	Message    string `json:"message"`
	PlayerID   int64  `json:"player_id"`
	PlayerPath string `json:"player_path"`
}

// parseID tolerates non-numeric segments by yielding 0, an id no row ever
// has, so the ordinary existence checks produce the right not-found response.
func parseID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}

func (h *PlayerHandler) listByTeam(c *gin.Context, teamSeg string) {
	players, err := h.svc.ListPlayers(c.Request.Context(), parseID(teamSeg))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *PlayerHandler) get(c *gin.Context, teamSeg, playerSeg string) {
	p, err := h.svc.GetPlayer(c.Request.Context(), parseID(teamSeg), parseID(playerSeg))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, p)
}

func (h *PlayerHandler) create(c *gin.Context, teamSeg string) {
	teamID := parseID(teamSeg)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.WriteError(c, service.ErrInvalidPlayerData)
		return
	}
	id, err := h.svc.AddPlayer(c.Request.Context(), teamID, body)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, playerCreated{
		Message:    "Player added successfully",
		PlayerID:   id,
		PlayerPath: fmt.Sprintf("teams/%d/players/%d", teamID, id),
	})
}

func (h *PlayerHandler) update(c *gin.Context, teamSeg, playerSeg string) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.WriteError(c, service.ErrInvalidJSON)
		return
	}
	if err := h.svc.UpdatePlayer(c.Request.Context(), parseID(teamSeg), parseID(playerSeg), body); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteMessage(c, http.StatusOK, "Player updated successfully")
}

func (h *PlayerHandler) remove(c *gin.Context, teamSeg, playerSeg string) {
	if err := h.svc.DeletePlayer(c.Request.Context(), parseID(teamSeg), parseID(playerSeg)); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteMessage(c, http.StatusOK, "Player deleted successfully")
}
