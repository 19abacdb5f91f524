package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/hslcabal/team-roster-service/internal/model"
	"github.com/hslcabal/team-roster-service/internal/repository"
)

const dateLayout = "2006-01-02"

type playerRepository struct{ pool *pgxpool.Pool }

func NewPlayerRepository(pool *pgxpool.Pool) repository.PlayerRepository {
	return &playerRepository{pool: pool}
}

func (r *playerRepository) ListByTeam(ctx context.Context, teamID int64) ([]model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT player_id, surname, given_names, nationality, date_of_birth
		 FROM players WHERE team_id = $1`,
		teamID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	players := make([]model.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return players, nil
}

func (r *playerRepository) GetByTeam(ctx context.Context, teamID, playerID int64) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	row := r.pool.QueryRow(ctx,
		`SELECT player_id, surname, given_names, nationality, date_of_birth
		 FROM players WHERE team_id = $1 AND player_id = $2`,
		teamID, playerID,
	)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapPgError(err)
	}
	return p, nil
}

// ExistsInTeam checks for a player under a specific team; a matching player_id
// under another team does not count.
func (r *playerRepository) ExistsInTeam(ctx context.Context, teamID, playerID int64) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM players WHERE team_id = $1 AND player_id = $2)`,
		teamID, playerID,
	).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

func (r *playerRepository) Create(ctx context.Context, teamID int64, p model.NewPlayer) (int64, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO players (team_id, surname, given_names, nationality, date_of_birth)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING player_id`,
		teamID, p.Surname, p.GivenNames, p.Nationality, p.DateOfBirth,
	).Scan(&id)
	if err != nil {
		return 0, repository.MapPgError(err)
	}
	return id, nil
}

// Update folds only the present patch slots into the SET list, numbering
// placeholders as it goes.
func (r *playerRepository) Update(ctx context.Context, teamID, playerID int64, patch model.PlayerPatch) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	set := make([]string, 0, 4)
	args := make([]any, 0, 6)
	add := func(col string, val *string) {
		if val != nil {
			args = append(args, *val)
			set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}
	add("surname", patch.Surname)
	add("given_names", patch.GivenNames)
	add("nationality", patch.Nationality)
	add("date_of_birth", patch.DateOfBirth)
	if len(set) == 0 {
		return nil
	}

	args = append(args, teamID, playerID)
	query := fmt.Sprintf(
		`UPDATE players SET %s WHERE team_id = $%d AND player_id = $%d`,
		strings.Join(set, ", "), len(args)-1, len(args),
	)
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, teamID, playerID int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM players WHERE team_id = $1 AND player_id = $2`,
		teamID, playerID,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// scanPlayer reads a player row, formatting the DATE column back to the
// YYYY-MM-DD wire shape.
func scanPlayer(row pgx.Row) (model.Player, error) {
	var p model.Player
	var dob time.Time
	if err := row.Scan(&p.ID, &p.Surname, &p.GivenNames, &p.Nationality, &dob); err != nil {
		return model.Player{}, err
	}
	p.DateOfBirth = dob.Format(dateLayout)
	return p, nil
}

var _ repository.PlayerRepository = (*playerRepository)(nil)
