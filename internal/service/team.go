package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hslcabal/team-roster-service/internal/model"
	"github.com/hslcabal/team-roster-service/internal/repository"
	"github.com/rs/zerolog"
)

// ageDivergenceTolerance is the maximum gap, in years, allowed between the two
// average-age formulas before the discrepancy is logged. The check is advisory:
// the calendar-based value is returned either way.
const ageDivergenceTolerance = 0.1

// teamService holds team use-case logic: aggregation policy, no transport / SQL details.
type teamService struct {
	repo repository.TeamRepository
	log  zerolog.Logger
}

func NewTeamService(repo repository.TeamRepository, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{repo: repo, log: l}
}

// ListTeams returns all teams ordered by name, each decorated with its
// computed average age and the relative path to its player collection.
func (s *teamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	start := time.Now()
	teams, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list teams failed")
		return nil, err
	}

	for i := range teams {
		summary, err := s.repo.AgeSummary(ctx, teams[i].ID)
		if err != nil {
			s.log.Error().Err(err).Int64("team_id", teams[i].ID).Msg("age summary failed")
			return nil, err
		}
		teams[i].AverageAge = s.resolveAverageAge(teams[i].ID, summary)
		teams[i].PlayersPath = fmt.Sprintf("teams/%d/players", teams[i].ID)
	}

	s.log.Debug().Dur("took", time.Since(start)).Int("count", len(teams)).Msg("teams listed")
	return teams, nil
}

// resolveAverageAge cross-checks the two formulas and settles on the
// calendar-based mean, rounded to one decimal. Empty teams yield nil.
func (s *teamService) resolveAverageAge(teamID int64, summary model.TeamAgeSummary) *float64 {
	if summary.PlayerCount == 0 || summary.CalendarAvg == nil {
		return nil
	}
	if summary.DayCountAvg != nil {
		if diff := math.Abs(*summary.CalendarAvg - *summary.DayCountAvg); diff > ageDivergenceTolerance {
			s.log.Warn().
				Int64("team_id", teamID).
				Float64("calendar_avg", *summary.CalendarAvg).
				Float64("day_count_avg", *summary.DayCountAvg).
				Float64("diff", diff).
				Msg("average age computations diverge")
		}
	}
	rounded := math.Round(*summary.CalendarAvg*10) / 10
	return &rounded
}
