package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/hslcabal/team-roster-service/internal/model"
	"github.com/hslcabal/team-roster-service/internal/repository"
)

type teamRepository struct{ pool *pgxpool.Pool }

func NewTeamRepository(pool *pgxpool.Pool) repository.TeamRepository {
	return &teamRepository{pool: pool}
}

func (r *teamRepository) List(ctx context.Context) ([]model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT team_id, name, sport FROM teams ORDER BY name`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	teams := make([]model.Team, 0)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Sport); err != nil {
			return nil, repository.MapPgError(err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return teams, nil
}

// Exists performs a lightweight check to see if a team with the given ID exists.
func (r *teamRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE team_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

// AgeSummary computes the mean player age of a team two ways in one aggregate
// query: whole calendar years via age(), and elapsed days divided by 365.25.
// Both AVGs come back NULL for a team without players, which scans into nil.
func (r *teamRepository) AgeSummary(ctx context.Context, teamID int64) (model.TeamAgeSummary, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.TeamAgeSummary{}, err
	}
	row := r.pool.QueryRow(ctx,
		`SELECT
			AVG(EXTRACT(YEAR FROM age(CURRENT_DATE, date_of_birth))),
			AVG((CURRENT_DATE - date_of_birth)::numeric / 365.25),
			COUNT(player_id)
		 FROM players WHERE team_id = $1`,
		teamID,
	)
	var out model.TeamAgeSummary
	if err := row.Scan(&out.CalendarAvg, &out.DayCountAvg, &out.PlayerCount); err != nil {
		return model.TeamAgeSummary{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.TeamRepository = (*teamRepository)(nil)
