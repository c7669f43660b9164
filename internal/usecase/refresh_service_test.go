package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/tournament"
	"github.com/ligasmart/ligasmart/internal/infrastructure/repository/localstore"
	"github.com/ligasmart/ligasmart/internal/platform/logging"
)

func TestRefreshService_RebuildAll(t *testing.T) {
	t.Parallel()

	store := localstore.NewMemory()
	ctx := context.Background()
	if err := localstore.Seed(ctx, store); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	tournamentRepo := localstore.NewTournamentRepository(store)

	// A second, empty tournament still refreshes cleanly.
	if err := tournamentRepo.Save(ctx, tournament.Tournament{
		ID:          "t-empty",
		Name:        "Copa Vacía",
		Format:      tournament.FormatFive,
		StartDate:   time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		Status:      tournament.StatusUpcoming,
		OrganizerID: "org-1",
	}); err != nil {
		t.Fatalf("save tournament: %v", err)
	}

	standingService := NewStandingService(
		tournamentRepo,
		localstore.NewTeamRepository(store),
		localstore.NewMatchRepository(store),
		localstore.NewStandingRepository(store),
	)
	service := NewRefreshService(tournamentRepo, standingService, logging.NewNop())

	result, err := service.RebuildAll(ctx)
	if err != nil {
		t.Fatalf("rebuild all: %v", err)
	}

	if result.TournamentCount != 2 {
		t.Fatalf("tournament count: got %d, want 2", result.TournamentCount)
	}
	if result.SuccessCount != 2 || result.FailedCount != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("expected a task per tournament, got %d", len(result.Tasks))
	}

	seeded, err := localstore.NewStandingRepository(store).ListByTournament(ctx, localstore.SeedTournamentID)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(seeded) != 4 {
		t.Fatalf("expected a row per seeded team, got %d", len(seeded))
	}
	if seeded[0].Position != 1 || seeded[0].Points < seeded[len(seeded)-1].Points {
		t.Fatalf("table not ranked: first=%+v last=%+v", seeded[0], seeded[len(seeded)-1])
	}
}

func TestRefreshService_RebuildAll_NoTournaments(t *testing.T) {
	t.Parallel()

	store := localstore.NewMemory()
	tournamentRepo := localstore.NewTournamentRepository(store)
	standingService := NewStandingService(
		tournamentRepo,
		localstore.NewTeamRepository(store),
		localstore.NewMatchRepository(store),
		localstore.NewStandingRepository(store),
	)
	service := NewRefreshService(tournamentRepo, standingService, logging.NewNop())

	result, err := service.RebuildAll(context.Background())
	if err != nil {
		t.Fatalf("rebuild all: %v", err)
	}
	if result.TournamentCount != 0 || len(result.Tasks) != 0 {
		t.Fatalf("expected an empty result, got %+v", result)
	}
}
