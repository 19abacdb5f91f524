// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// Team represents a sports team managed outside this API.
// AverageAge is computed on read and is nil for teams without players.
type Team struct {
	ID          int64    `json:"team_id"`
	Name        string   `json:"name"`
	Sport       string   `json:"sport"`
	AverageAge  *float64 `json:"average_age"`
	PlayersPath string   `json:"players_path"`
}

// Player represents an athlete belonging to a team.
// DateOfBirth is carried as a plain YYYY-MM-DD string; its content is not
// validated by this API.
type Player struct {
	ID          int64  `json:"player_id"`
	Surname     string `json:"surname"`
	GivenNames  string `json:"given_names"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"date_of_birth"`
}

// NewPlayer is the complete field set required to create a player.
type NewPlayer struct {
	Surname     string
	GivenNames  string
	Nationality string
	DateOfBirth string
}

// PlayerPatch carries an optional slot per updatable player field.
// Only non-nil slots are folded into the UPDATE statement.
type PlayerPatch struct {
	Surname     *string `json:"surname"`
	GivenNames  *string `json:"given_names"`
	Nationality *string `json:"nationality"`
	DateOfBirth *string `json:"date_of_birth"`
}

// IsZero reports whether the patch contains no recognized fields.
func (p PlayerPatch) IsZero() bool {
	return p.Surname == nil && p.GivenNames == nil && p.Nationality == nil && p.DateOfBirth == nil
}

// TeamAgeSummary holds the two independently computed mean ages for a team.
// CalendarAvg uses whole calendar-year differences; DayCountAvg divides the
// total day count by 365.25. Both are nil when the team has no players.
type TeamAgeSummary struct {
	CalendarAvg *float64
	DayCountAvg *float64
	PlayerCount int
}
