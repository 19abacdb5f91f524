package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hslcabal/team-roster-service/internal/model"
	"github.com/hslcabal/team-roster-service/internal/repository"
	"github.com/hslcabal/team-roster-service/internal/service"
)

// fakePlayerRepo keeps players in a map keyed by id, remembering which team
// each belongs to. touched flips on any access so tests can prove the
// short-circuit ordering.
type fakePlayerRepo struct {
	nextID  int64
	players map[int64]model.Player
	teamOf  map[int64]int64
	touched bool
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{nextID: 1, players: map[int64]model.Player{}, teamOf: map[int64]int64{}}
}

func (f *fakePlayerRepo) ListByTeam(_ context.Context, teamID int64) ([]model.Player, error) {
	f.touched = true
	out := make([]model.Player, 0)
	for id, p := range f.players {
		if f.teamOf[id] == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlayerRepo) GetByTeam(_ context.Context, teamID, playerID int64) (model.Player, error) {
	f.touched = true
	p, ok := f.players[playerID]
	if !ok || f.teamOf[playerID] != teamID {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePlayerRepo) ExistsInTeam(_ context.Context, teamID, playerID int64) (bool, error) {
	f.touched = true
	_, ok := f.players[playerID]
	return ok && f.teamOf[playerID] == teamID, nil
}

func (f *fakePlayerRepo) Create(_ context.Context, teamID int64, np model.NewPlayer) (int64, error) {
	f.touched = true
	id := f.nextID
	f.nextID++
	f.players[id] = model.Player{
		ID:          id,
		Surname:     np.Surname,
		GivenNames:  np.GivenNames,
		Nationality: np.Nationality,
		DateOfBirth: np.DateOfBirth,
	}
	f.teamOf[id] = teamID
	return id, nil
}

func (f *fakePlayerRepo) Update(_ context.Context, teamID, playerID int64, patch model.PlayerPatch) error {
	f.touched = true
	p, ok := f.players[playerID]
	if !ok || f.teamOf[playerID] != teamID {
		return repository.ErrNotFound
	}
	if patch.Surname != nil {
		p.Surname = *patch.Surname
	}
	if patch.GivenNames != nil {
		p.GivenNames = *patch.GivenNames
	}
	if patch.Nationality != nil {
		p.Nationality = *patch.Nationality
	}
	if patch.DateOfBirth != nil {
		p.DateOfBirth = *patch.DateOfBirth
	}
	f.players[playerID] = p
	return nil
}

func (f *fakePlayerRepo) Delete(_ context.Context, teamID, playerID int64) error {
	f.touched = true
	if _, ok := f.players[playerID]; !ok || f.teamOf[playerID] != teamID {
		return repository.ErrNotFound
	}
	delete(f.players, playerID)
	delete(f.teamOf, playerID)
	return nil
}

var _ repository.PlayerRepository = (*fakePlayerRepo)(nil)

func newPlayerService(teams *fakeTeamRepo, players *fakePlayerRepo) service.PlayerService {
	return service.NewPlayerService(players, teams, zerolog.New(io.Discard))
}

const validPlayerBody = `{"surname":"Smith","given_names":"Jan Willem","nationality":"NED","date_of_birth":"1998-04-17"}`

func TestPlayerService_TeamMissingShortCircuits(t *testing.T) {
	teams := newFakeTeamRepo() // no teams exist
	players := newFakePlayerRepo()
	svc := newPlayerService(teams, players)
	ctx := context.Background()

	ops := []struct {
		name string
		run  func() error
	}{
		{"list", func() error { _, err := svc.ListPlayers(ctx, 999); return err }},
		{"get", func() error { _, err := svc.GetPlayer(ctx, 999, 1); return err }},
		{"add", func() error { _, err := svc.AddPlayer(ctx, 999, []byte(validPlayerBody)); return err }},
		{"update", func() error { return svc.UpdatePlayer(ctx, 999, 1, []byte(`{"surname":"X"}`)) }},
		{"delete", func() error { return svc.DeletePlayer(ctx, 999, 1) }},
	}
	for _, op := range ops {
		players.touched = false
		if err := op.run(); !errors.Is(err, service.ErrTeamNotFound) {
			t.Fatalf("%s: expected ErrTeamNotFound, got %v", op.name, err)
		}
		if players.touched {
			t.Fatalf("%s: player store was touched for a missing team", op.name)
		}
	}
}

func TestPlayerService_AddGetRoundTrip(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.existing[1] = true
	players := newFakePlayerRepo()
	svc := newPlayerService(teams, players)
	ctx := context.Background()

	id, err := svc.AddPlayer(ctx, 1, []byte(validPlayerBody))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	got, err := svc.GetPlayer(ctx, 1, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	want := model.Player{ID: id, Surname: "Smith", GivenNames: "Jan Willem", Nationality: "NED", DateOfBirth: "1998-04-17"}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestPlayerService_AddPlayer_InvalidData(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.existing[1] = true
	players := newFakePlayerRepo()
	svc := newPlayerService(teams, players)
	ctx := context.Background()

	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"surname":"Smith"}`},
		{"malformed", `{"surname":`},
		{"null body", `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddPlayer(ctx, 1, []byte(tc.body)); !errors.Is(err, service.ErrInvalidPlayerData) {
				t.Fatalf("expected ErrInvalidPlayerData, got %v", err)
			}
			if len(players.players) != 0 {
				t.Fatalf("no row should have been inserted")
			}
		})
	}
}

func TestPlayerService_UpdatePlayer_PartialFieldsOnly(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.existing[1] = true
	players := newFakePlayerRepo()
	svc := newPlayerService(teams, players)
	ctx := context.Background()

	id, err := svc.AddPlayer(ctx, 1, []byte(validPlayerBody))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdatePlayer(ctx, 1, id, []byte(`{"nationality":"ESP"}`)); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := svc.GetPlayer(ctx, 1, id)
	if got.Nationality != "ESP" {
		t.Fatalf("nationality not updated: %+v", got)
	}
	if got.Surname != "Smith" || got.GivenNames != "Jan Willem" || got.DateOfBirth != "1998-04-17" {
		t.Fatalf("absent fields must stay untouched: %+v", got)
	}
}

func TestPlayerService_UpdatePlayer_BadBodies(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.existing[1] = true
	players := newFakePlayerRepo()
	svc := newPlayerService(teams, players)
	ctx := context.Background()

	id, _ := svc.AddPlayer(ctx, 1, []byte(validPlayerBody))

	if err := svc.UpdatePlayer(ctx, 1, id, []byte(`{not json`)); !errors.Is(err, service.ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	if err := svc.UpdatePlayer(ctx, 1, id, []byte(`{}`)); !errors.Is(err, service.ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate for empty object, got %v", err)
	}
	if err := svc.UpdatePlayer(ctx, 1, id, []byte(`{"position":"goalkeeper"}`)); !errors.Is(err, service.ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate for unrecognized fields, got %v", err)
	}
}

func TestPlayerService_UpdatePlayer_ChecksRunBeforeBodyParsing(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.existing[1] = true
	players := newFakePlayerRepo()
	svc := newPlayerService(teams, players)
	ctx := context.Background()

	// Malformed body against a missing player: the existence failure wins.
	if err := svc.UpdatePlayer(ctx, 1, 42, []byte(`{not json`)); !errors.Is(err, service.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestPlayerService_DeleteThenOperationsFail(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.existing[1] = true
	players := newFakePlayerRepo()
	svc := newPlayerService(teams, players)
	ctx := context.Background()

	id, _ := svc.AddPlayer(ctx, 1, []byte(validPlayerBody))
	if err := svc.DeletePlayer(ctx, 1, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetPlayer(ctx, 1, id); !errors.Is(err, service.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound after delete, got %v", err)
	}
	// Repeated delete is a 404-class failure, never a success.
	if err := svc.DeletePlayer(ctx, 1, id); !errors.Is(err, service.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound on repeat delete, got %v", err)
	}
}

func TestPlayerService_NoCrossTeamLeak(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.existing[1] = true
	teams.existing[2] = true
	players := newFakePlayerRepo()
	svc := newPlayerService(teams, players)
	ctx := context.Background()

	id, _ := svc.AddPlayer(ctx, 2, []byte(validPlayerBody))

	// The player exists, but under team 2; team 1 must not reveal it.
	if _, err := svc.GetPlayer(ctx, 1, id); !errors.Is(err, service.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if err := svc.DeletePlayer(ctx, 1, id); !errors.Is(err, service.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}
