package repository

import (
	"context"

	"github.com/hslcabal/team-roster-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TeamRepository declares persistence operations for teams.
// Teams are seeded out-of-band, so the surface is read-only: listing,
// existence checks and the age aggregate that backs average_age.
type TeamRepository interface {
	List(ctx context.Context) ([]model.Team, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// AgeSummary computes the team's mean player age by two independent
	// formulas in a single aggregate query. Averages are nil for empty teams.
	AgeSummary(ctx context.Context, teamID int64) (model.TeamAgeSummary, error)
}

// PlayerRepository declares persistence operations for players.
// Every lookup and mutation is scoped by (team_id, player_id) so a player
// under a different team behaves exactly like a missing player.
type PlayerRepository interface {
	ListByTeam(ctx context.Context, teamID int64) ([]model.Player, error)
	GetByTeam(ctx context.Context, teamID, playerID int64) (model.Player, error)
	ExistsInTeam(ctx context.Context, teamID, playerID int64) (bool, error)
	Create(ctx context.Context, teamID int64, p model.NewPlayer) (int64, error)
	Update(ctx context.Context, teamID, playerID int64, patch model.PlayerPatch) error
	Delete(ctx context.Context, teamID, playerID int64) error
}
