package service

import (
	"context"
	"errors"
	"time"

	"github.com/hslcabal/team-roster-service/internal/model"
	"github.com/hslcabal/team-roster-service/internal/repository"
	"github.com/rs/zerolog"
)

type playerService struct {
	players repository.PlayerRepository
	teams   repository.TeamRepository
	log     zerolog.Logger
}

func NewPlayerService(players repository.PlayerRepository, teams repository.TeamRepository, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{players: players, teams: teams, log: l}
}

func (s *playerService) ListPlayers(ctx context.Context, teamID int64) ([]model.Player, error) {
	if err := s.ensureTeam(ctx, teamID); err != nil {
		return nil, err
	}
	players, err := s.players.ListByTeam(ctx, teamID)
	if err != nil {
		s.log.Error().Err(err).Int64("team_id", teamID).Msg("list players failed")
		return nil, err
	}
	return players, nil
}

func (s *playerService) GetPlayer(ctx context.Context, teamID, playerID int64) (model.Player, error) {
	if err := s.ensureTeam(ctx, teamID); err != nil {
		return model.Player{}, err
	}
	p, err := s.players.GetByTeam(ctx, teamID, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Player{}, ErrPlayerNotFound
		}
		s.log.Error().Err(err).Int64("team_id", teamID).Int64("player_id", playerID).Msg("get player failed")
		return model.Player{}, err
	}
	return p, nil
}

// AddPlayer inserts a new player once the team is known to exist and the body
// carries all four required fields. Field content is deliberately not checked.
func (s *playerService) AddPlayer(ctx context.Context, teamID int64, body []byte) (int64, error) {
	start := time.Now()
	if err := s.ensureTeam(ctx, teamID); err != nil {
		return 0, err
	}
	np, err := parseNewPlayer(body)
	if err != nil {
		s.log.Debug().Int64("team_id", teamID).Msg("player payload rejected")
		return 0, err
	}
	id, err := s.players.Create(ctx, teamID, np)
	if err != nil {
		s.log.Error().Err(err).Int64("team_id", teamID).Msg("create player failed")
		return 0, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("team_id", teamID).Int64("player_id", id).Msg("player added")
	return id, nil
}

// UpdatePlayer applies a partial update. The body is decoded only after both
// existence checks pass; a well-formed body with no recognized fields is an
// error, not a no-op.
func (s *playerService) UpdatePlayer(ctx context.Context, teamID, playerID int64, body []byte) error {
	if err := s.ensureTeam(ctx, teamID); err != nil {
		return err
	}
	if err := s.ensurePlayer(ctx, teamID, playerID); err != nil {
		return err
	}
	patch, err := parsePlayerPatch(body)
	if err != nil {
		return err
	}
	if patch.IsZero() {
		return ErrNoFieldsToUpdate
	}
	if err := s.players.Update(ctx, teamID, playerID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlayerNotFound
		}
		s.log.Error().Err(err).Int64("team_id", teamID).Int64("player_id", playerID).Msg("update player failed")
		return err
	}
	s.log.Info().Int64("team_id", teamID).Int64("player_id", playerID).Msg("player updated")
	return nil
}

func (s *playerService) DeletePlayer(ctx context.Context, teamID, playerID int64) error {
	if err := s.ensureTeam(ctx, teamID); err != nil {
		return err
	}
	if err := s.ensurePlayer(ctx, teamID, playerID); err != nil {
		return err
	}
	if err := s.players.Delete(ctx, teamID, playerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlayerNotFound
		}
		s.log.Error().Err(err).Int64("team_id", teamID).Int64("player_id", playerID).Msg("delete player failed")
		return err
	}
	s.log.Info().Int64("team_id", teamID).Int64("player_id", playerID).Msg("player deleted")
	return nil
}

// ensureTeam short-circuits every player operation when the referenced team is
// missing, before any player data is touched.
func (s *playerService) ensureTeam(ctx context.Context, teamID int64) error {
	exists, err := s.teams.Exists(ctx, teamID)
	if err != nil {
		s.log.Error().Err(err).Int64("team_id", teamID).Msg("team existence check failed")
		return err
	}
	if !exists {
		return ErrTeamNotFound
	}
	return nil
}

func (s *playerService) ensurePlayer(ctx context.Context, teamID, playerID int64) error {
	exists, err := s.players.ExistsInTeam(ctx, teamID, playerID)
	if err != nil {
		s.log.Error().Err(err).Int64("team_id", teamID).Int64("player_id", playerID).Msg("player existence check failed")
		return err
	}
	if !exists {
		return ErrPlayerNotFound
	}
	return nil
}
