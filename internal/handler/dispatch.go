package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hslcabal/team-roster-service/pkg/response"
)

// segPlayers is the literal token required verbatim at the third position of
// every player route; any other token falls through to the default branch.
const segPlayers = "players"

// Dispatcher maps (method, segment shape) pairs to resource handlers. It is
// mounted as the engine's NoRoute fallback so it sees every request the fixed
// routes (health, docs) don't claim.
type Dispatcher struct {
	basePath string
	teams    *TeamHandler
	players  *PlayerHandler
}

func NewDispatcher(basePath string, teams *TeamHandler, players *PlayerHandler) *Dispatcher {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	return &Dispatcher{basePath: basePath, teams: teams, players: players}
}

// Register mounts the dispatcher on the engine.
func (d *Dispatcher) Register(r *gin.Engine) {
	r.NoRoute(d.dispatch)
}

// segments resolves the resource path from either addressing mode: the flat
// ?resource= form, or a clean URL with the base prefix stripped. Empty
// fragments are discarded so both modes yield the same segment list.
func (d *Dispatcher) segments(c *gin.Context) []string {
	raw := c.Query("resource")
	if raw == "" {
		raw = strings.TrimPrefix(c.Request.URL.Path, d.basePath)
	}
	parts := strings.Split(raw, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// dispatch matches shape+method combinations in fixed priority order. Shapes
// are matched structurally and exactly; anything under teams that misses the
// table is a method rejection, anything else is an unknown endpoint.
func (d *Dispatcher) dispatch(c *gin.Context) {
	segs := d.segments(c)
	if len(segs) == 0 || segs[0] != "teams" {
		response.WriteFailure(c, http.StatusNotFound, response.MsgEndpointNotFound)
		return
	}

	method := c.Request.Method
	switch {
	case method == http.MethodGet && len(segs) == 1:
		d.teams.list(c)
	case method != http.MethodGet && len(segs) == 1:
		response.WriteFailure(c, http.StatusMethodNotAllowed, response.MsgTeamsReadOnly)
	case method == http.MethodGet && len(segs) == 3 && segs[2] == segPlayers:
		d.players.listByTeam(c, segs[1])
	case method == http.MethodGet && len(segs) == 4 && segs[2] == segPlayers:
		d.players.get(c, segs[1], segs[3])
	case method == http.MethodPost && len(segs) == 3 && segs[2] == segPlayers:
		d.players.create(c, segs[1])
	case method == http.MethodPatch && len(segs) == 4 && segs[2] == segPlayers:
		d.players.update(c, segs[1], segs[3])
	case method == http.MethodDelete && len(segs) == 4 && segs[2] == segPlayers:
		d.players.remove(c, segs[1], segs[3])
	default:
		response.WriteFailure(c, http.StatusMethodNotAllowed, response.MsgMethodNotAllowed)
	}
}
