package response_test

import (
	"errors"
	"testing"

	"github.com/hslcabal/team-roster-service/internal/repository"
	"github.com/hslcabal/team-roster-service/internal/service"
	"github.com/hslcabal/team-roster-service/pkg/response"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantMsg  string
	}{
		{"team not found", service.ErrTeamNotFound, 404, "Team not found"},
		{"player not found", service.ErrPlayerNotFound, 404, "Player not found"},
		{"invalid player data", service.ErrInvalidPlayerData, 400, "Invalid player data"},
		{"invalid json", service.ErrInvalidJSON, 400, "Invalid JSON data"},
		{"no fields", service.ErrNoFieldsToUpdate, 400, "No fields to update"},
		{"repository leak", repository.ErrNotFound, 500, "Database error"},
		{"conflict", repository.ErrConflict, 500, "Database error"},
		{"unknown", errors.New("boom"), 500, "Database error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error != tc.wantMsg {
				t.Fatalf("unexpected mapping: got (%d,%q) want (%d,%q)", code, payload.Error, tc.wantCode, tc.wantMsg)
			}
		})
	}
}
