// Package postgres holds the pgx-backed implementations of the repository
// contracts. Each repository owns its SQL and maps driver errors to domain
// errors before they leave this package.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/hslcabal/team-roster-service/internal/repository"
)

type pinger struct{ pool *pgxpool.Pool }

// NewPinger adapts pgxpool to the repository.Pinger interface.
func NewPinger(pool *pgxpool.Pool) repository.Pinger { return &pinger{pool: pool} }

func (p *pinger) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

// helper to assert we didn't accidentally nil the pool
func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}
