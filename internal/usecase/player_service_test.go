package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/infrastructure/repository/localstore"
)

func newPlayerServiceFixture(t *testing.T) (*PlayerService, *TeamService, context.Context) {
	t.Helper()

	store := localstore.NewMemory()
	ctx := context.Background()

	tournamentRepo := localstore.NewTournamentRepository(store)
	teamRepo := localstore.NewTeamRepository(store)
	for _, item := range []team.Team{
		{ID: "tm-1", TournamentID: "t1", Name: "Uno"},
		{ID: "tm-2", TournamentID: "t1", Name: "Dos"},
	} {
		if err := teamRepo.Save(ctx, item); err != nil {
			t.Fatalf("save team: %v", err)
		}
	}

	players := NewPlayerService(localstore.NewPlayerRepository(store), teamRepo, &seqIDGenerator{prefix: "pl"})
	teams := NewTeamService(tournamentRepo, teamRepo, localstore.NewCoachRepository(store), &seqIDGenerator{prefix: "tm"})
	return players, teams, ctx
}

func TestPlayerService_CreateAndAssign(t *testing.T) {
	t.Parallel()

	players, _, ctx := newPlayerServiceFixture(t)

	created, err := players.Create(ctx, CreatePlayerInput{
		TeamID:   "tm-1",
		Name:     "  Diego Torres  ",
		Position: "Delantero",
		Number:   9,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.Name != "Diego Torres" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}
	if !created.Assigned() {
		t.Fatalf("expected the player assigned: %+v", created)
	}

	moved, err := players.AssignToTeam(ctx, created.ID, "tm-2")
	if err != nil {
		t.Fatalf("assign to team: %v", err)
	}
	if moved.TeamID != "tm-2" {
		t.Fatalf("team after move: got %s", moved.TeamID)
	}

	free, err := players.AssignToTeam(ctx, created.ID, "")
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if free.Assigned() {
		t.Fatalf("expected the player unassigned: %+v", free)
	}

	if _, err := players.AssignToTeam(ctx, created.ID, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("assign to unknown team: got %v, want ErrNotFound", err)
	}
}

func TestPlayerService_Create_Rejections(t *testing.T) {
	t.Parallel()

	players, _, ctx := newPlayerServiceFixture(t)

	cases := []struct {
		name  string
		input CreatePlayerInput
		want  error
	}{
		{"missing name", CreatePlayerInput{TeamID: "tm-1", Position: "Portero", Number: 1}, ErrInvalidInput},
		{"zero number", CreatePlayerInput{TeamID: "tm-1", Name: "Jorge", Position: "Portero"}, ErrInvalidInput},
		{"bad foot", CreatePlayerInput{TeamID: "tm-1", Name: "Jorge", Position: "Portero", Number: 1, DominantFoot: "upward"}, ErrInvalidInput},
		{"unknown team", CreatePlayerInput{TeamID: "ghost", Name: "Jorge", Position: "Portero", Number: 1}, ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := players.Create(ctx, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestPlayerService_OrphansAfterTeamDelete(t *testing.T) {
	t.Parallel()

	players, teams, ctx := newPlayerServiceFixture(t)

	onTeam, err := players.Create(ctx, CreatePlayerInput{
		TeamID: "tm-1", Name: "Diego", Position: "Delantero", Number: 9,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	unassigned, err := players.Create(ctx, CreatePlayerInput{
		Name: "Libre", Position: "Mediocampista", Number: 8,
	})
	if err != nil {
		t.Fatalf("create unassigned player: %v", err)
	}

	// Deleting the team keeps its players; they surface as orphans.
	if err := teams.Delete(ctx, "tm-1"); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	loose, err := players.ListUnassignedOrOrphaned(ctx)
	if err != nil {
		t.Fatalf("list orphans: %v", err)
	}
	found := make(map[string]bool, len(loose))
	for _, item := range loose {
		found[item.ID] = true
	}
	if !found[onTeam.ID] || !found[unassigned.ID] {
		t.Fatalf("expected both players loose, got %v", found)
	}

	// The orphan still exists and keeps its stale team id.
	got, err := players.Get(ctx, onTeam.ID)
	if err != nil {
		t.Fatalf("get orphan: %v", err)
	}
	if got.TeamID != "tm-1" {
		t.Fatalf("orphan team id rewritten: %q", got.TeamID)
	}
}
