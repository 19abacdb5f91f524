package service

import (
	"encoding/json"

	"github.com/hslcabal/team-roster-service/internal/model"
)

// newPlayerBody uses pointer fields so structural presence of every required
// field can be told apart from a zero value.
type newPlayerBody struct {
	Surname     *string `json:"surname"`
	GivenNames  *string `json:"given_names"`
	Nationality *string `json:"nationality"`
	DateOfBirth *string `json:"date_of_birth"`
}

// parseNewPlayer decodes a create payload. Malformed JSON and a missing field
// are the same failure here; the update path keeps them distinct.
func parseNewPlayer(data []byte) (model.NewPlayer, error) {
	var b newPlayerBody
	if err := json.Unmarshal(data, &b); err != nil {
		return model.NewPlayer{}, ErrInvalidPlayerData
	}
	if b.Surname == nil || b.GivenNames == nil || b.Nationality == nil || b.DateOfBirth == nil {
		return model.NewPlayer{}, ErrInvalidPlayerData
	}
	return model.NewPlayer{
		Surname:     *b.Surname,
		GivenNames:  *b.GivenNames,
		Nationality: *b.Nationality,
		DateOfBirth: *b.DateOfBirth,
	}, nil
}

// parsePlayerPatch decodes an update payload into the optional-slot patch.
// Only syntax is judged here; an all-absent patch is the caller's concern.
func parsePlayerPatch(data []byte) (model.PlayerPatch, error) {
	var p model.PlayerPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return model.PlayerPatch{}, ErrInvalidJSON
	}
	return p, nil
}
