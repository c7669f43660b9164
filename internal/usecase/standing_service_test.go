package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/domain/tournament"
	"github.com/ligasmart/ligasmart/internal/infrastructure/repository/localstore"
)

type tableFixture struct {
	store     *localstore.Store
	standings *StandingService
	matchRepo *localstore.MatchRepository
}

func newTableFixture(t *testing.T) (*tableFixture, context.Context) {
	t.Helper()

	store := localstore.NewMemory()
	ctx := context.Background()

	tournamentRepo := localstore.NewTournamentRepository(store)
	teamRepo := localstore.NewTeamRepository(store)
	matchRepo := localstore.NewMatchRepository(store)

	require.NoError(t, tournamentRepo.Save(ctx, tournament.Tournament{
		ID:          "t1",
		Name:        "Copa Barrio",
		Format:      tournament.FormatSeven,
		StartDate:   time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		Status:      tournament.StatusActive,
		OrganizerID: "org-1",
		TeamIDs:     []string{"a", "b"},
	}))
	for _, item := range []team.Team{
		{ID: "a", TournamentID: "t1", Name: "A"},
		{ID: "b", TournamentID: "t1", Name: "B"},
	} {
		require.NoError(t, teamRepo.Save(ctx, item))
	}

	day := time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC)
	require.NoError(t, matchRepo.Save(ctx, finished("m1", "a", "b", 2, 0, day)))
	require.NoError(t, matchRepo.Save(ctx, finished("m2", "b", "a", 1, 1, day.AddDate(0, 0, 7))))
	require.NoError(t, matchRepo.Save(ctx, match.Match{
		ID: "m3", TournamentID: "t1", HomeTeamID: "a", AwayTeamID: "b",
		Date: day.AddDate(0, 0, 14), Time: "16:00", Status: match.StatusScheduled,
	}))

	fixture := &tableFixture{
		store:     store,
		matchRepo: matchRepo,
		standings: NewStandingService(tournamentRepo, teamRepo, matchRepo, localstore.NewStandingRepository(store)),
	}
	return fixture, ctx
}

func TestStandingService_TableByTournament(t *testing.T) {
	t.Parallel()

	fixture, ctx := newTableFixture(t)

	rows, err := fixture.standings.TableByTournament(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "a", rows[0].TeamID)
	require.Equal(t, 4, rows[0].Points)
	require.Equal(t, "DW", rows[0].Form)
	require.Equal(t, "b", rows[1].TeamID)
	require.Equal(t, 1, rows[1].Points)
	require.Equal(t, "DL", rows[1].Form)

	// The computed table is persisted for later reads.
	standingRepo := localstore.NewStandingRepository(fixture.store)
	persisted, err := standingRepo.ListByTournament(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, rows, persisted)
}

func TestStandingService_TableByTournament_UnknownTournament(t *testing.T) {
	t.Parallel()

	fixture, ctx := newTableFixture(t)
	_, err := fixture.standings.TableByTournament(ctx, "nope")
	require.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestStandingService_FormByTeam(t *testing.T) {
	t.Parallel()

	fixture, ctx := newTableFixture(t)
	form, err := fixture.standings.FormByTeam(ctx, "t1", "a")
	require.NoError(t, err)
	require.Equal(t, "DW", form)
}

func TestPredictionService_UpcomingByTournament(t *testing.T) {
	t.Parallel()

	fixture, ctx := newTableFixture(t)
	service := NewPredictionService(fixture.matchRepo, fixture.standings)

	predictions, err := service.UpcomingByTournament(ctx, "t1", 0)
	require.NoError(t, err)
	require.Len(t, predictions, 1, "only the scheduled fixture is predicted")

	p := predictions[0]
	require.Equal(t, "m3", p.MatchID)
	require.Equal(t, "a", p.HomeTeamID)
	require.GreaterOrEqual(t, p.Outcome.Draw, 15)
	require.Greater(t, p.Outcome.Home, p.Outcome.Away, "a leads the table and should be favored")
	require.NotEmpty(t, p.Confidence)
}
