// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/hslcabal/team-roster-service/internal/model"
)

// Sentinel errors the response encoder maps to client-facing failures.
// Team and player absence stay distinct so the two 404s never blur together.
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidPlayerData = errors.New("invalid player data")
	ErrInvalidJSON       = errors.New("invalid json data")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
)

// TeamService defines team-oriented use cases. Teams are managed out-of-band,
// so listing is the whole surface.
type TeamService interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
}

// PlayerService defines player-oriented use cases. The mutating operations
// take the raw request body because decoding happens only after the team (and
// player) existence checks have passed.
type PlayerService interface {
	ListPlayers(ctx context.Context, teamID int64) ([]model.Player, error)
	GetPlayer(ctx context.Context, teamID, playerID int64) (model.Player, error)
	AddPlayer(ctx context.Context, teamID int64, body []byte) (int64, error)
	UpdatePlayer(ctx context.Context, teamID, playerID int64, body []byte) error
	DeletePlayer(ctx context.Context, teamID, playerID int64) error
}
