package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/player"
	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/infrastructure/repository/localstore"
)

// seqIDGenerator hands out id-1, id-2, ... so created entities stay
// distinguishable.
type seqIDGenerator struct {
	prefix string
	n      int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

func newMatchServiceFixture(t *testing.T) (*MatchService, context.Context) {
	t.Helper()

	store := localstore.NewMemory()
	ctx := context.Background()

	teamRepo := localstore.NewTeamRepository(store)
	playerRepo := localstore.NewPlayerRepository(store)
	for _, item := range []team.Team{
		{ID: "home", TournamentID: "t1", Name: "Home"},
		{ID: "away", TournamentID: "t1", Name: "Away"},
		{ID: "other", TournamentID: "t2", Name: "Other"},
	} {
		if err := teamRepo.Save(ctx, item); err != nil {
			t.Fatalf("save team: %v", err)
		}
	}
	if err := playerRepo.Save(ctx, player.Player{ID: "p1", TeamID: "home", Name: "Diego Torres"}); err != nil {
		t.Fatalf("save player: %v", err)
	}

	service := NewMatchService(
		localstore.NewMatchRepository(store),
		localstore.NewEventRepository(store),
		teamRepo,
		playerRepo,
		localstore.NewRefereeRepository(store),
		&seqIDGenerator{prefix: "id"},
	)
	return service, ctx
}

func scheduleTestMatch(t *testing.T, service *MatchService, ctx context.Context) match.Match {
	t.Helper()

	item, err := service.Schedule(ctx, CreateMatchInput{
		TournamentID: "t1",
		HomeTeamID:   "home",
		AwayTeamID:   "away",
		Date:         time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC),
		Time:         "16:00",
		Venue:        "Estadio Central",
	})
	if err != nil {
		t.Fatalf("schedule match: %v", err)
	}
	return item
}

func TestMatchService_Lifecycle(t *testing.T) {
	t.Parallel()

	service, ctx := newMatchServiceFixture(t)
	item := scheduleTestMatch(t, service, ctx)

	if item.Status != match.StatusScheduled {
		t.Fatalf("new match status: got %s", item.Status)
	}
	if item.HomeScore != nil || item.AwayScore != nil {
		t.Fatalf("scheduled match must not carry scores: %+v", item)
	}

	live, err := service.Start(ctx, item.ID)
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	if live.Status != match.StatusLive {
		t.Fatalf("started match status: got %s", live.Status)
	}
	if home, away := live.Score(); home != 0 || away != 0 {
		t.Fatalf("started match should open 0-0, got %d-%d", home, away)
	}

	if _, err := service.Start(ctx, item.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("restarting a live match: got %v, want ErrConflict", err)
	}

	scored, err := service.UpdateScore(ctx, item.ID, 2, 1)
	if err != nil {
		t.Fatalf("update score: %v", err)
	}
	if home, away := scored.Score(); home != 2 || away != 1 {
		t.Fatalf("score line: got %d-%d", home, away)
	}

	done, err := service.Finish(ctx, item.ID)
	if err != nil {
		t.Fatalf("finish match: %v", err)
	}
	if done.Status != match.StatusFinished {
		t.Fatalf("finished match status: got %s", done.Status)
	}
	if home, away := done.Score(); home != 2 || away != 1 {
		t.Fatalf("finishing changed the score: %d-%d", home, away)
	}

	// Transitions are forward-only.
	if _, err := service.Finish(ctx, item.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("refinishing: got %v, want ErrConflict", err)
	}
	if _, err := service.UpdateScore(ctx, item.ID, 3, 1); !errors.Is(err, ErrConflict) {
		t.Fatalf("scoring a finished match: got %v, want ErrConflict", err)
	}
}

func TestMatchService_Schedule_Rejections(t *testing.T) {
	t.Parallel()

	service, ctx := newMatchServiceFixture(t)
	base := CreateMatchInput{
		TournamentID: "t1",
		HomeTeamID:   "home",
		AwayTeamID:   "away",
		Date:         time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC),
		Time:         "16:00",
		Venue:        "Estadio Central",
	}

	t.Run("same team on both sides", func(t *testing.T) {
		input := base
		input.AwayTeamID = input.HomeTeamID
		if _, err := service.Schedule(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("got %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unknown team", func(t *testing.T) {
		input := base
		input.AwayTeamID = "ghost"
		if _, err := service.Schedule(ctx, input); !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("team from another tournament", func(t *testing.T) {
		input := base
		input.AwayTeamID = "other"
		if _, err := service.Schedule(ctx, input); !errors.Is(err, ErrConflict) {
			t.Fatalf("got %v, want ErrConflict", err)
		}
	})

	t.Run("unknown referee", func(t *testing.T) {
		input := base
		input.RefereeID = "nobody"
		if _, err := service.Schedule(ctx, input); !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})
}

func TestMatchService_RecordEvent(t *testing.T) {
	t.Parallel()

	service, ctx := newMatchServiceFixture(t)
	item := scheduleTestMatch(t, service, ctx)

	input := RecordEventInput{
		MatchID:  item.ID,
		Type:     match.EventGoal,
		PlayerID: "p1",
		TeamID:   "home",
		Minute:   23,
	}

	if _, err := service.RecordEvent(ctx, input); !errors.Is(err, ErrConflict) {
		t.Fatalf("event on a scheduled match: got %v, want ErrConflict", err)
	}

	if _, err := service.Start(ctx, item.ID); err != nil {
		t.Fatalf("start match: %v", err)
	}

	later := input
	later.Minute = 78
	later.Type = match.EventYellowCard
	if _, err := service.RecordEvent(ctx, later); err != nil {
		t.Fatalf("record event: %v", err)
	}
	if _, err := service.RecordEvent(ctx, input); err != nil {
		t.Fatalf("record event: %v", err)
	}

	t.Run("events come back minute ascending", func(t *testing.T) {
		events, err := service.ListEvents(ctx, item.ID)
		if err != nil {
			t.Fatalf("list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Minute != 23 || events[1].Minute != 78 {
			t.Fatalf("events out of order: %d then %d", events[0].Minute, events[1].Minute)
		}
	})

	t.Run("team must be playing the match", func(t *testing.T) {
		foreign := input
		foreign.TeamID = "other"
		if _, err := service.RecordEvent(ctx, foreign); !errors.Is(err, ErrConflict) {
			t.Fatalf("got %v, want ErrConflict", err)
		}
	})

	t.Run("player must exist", func(t *testing.T) {
		unknown := input
		unknown.PlayerID = "ghost"
		if _, err := service.RecordEvent(ctx, unknown); !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("minute must be positive", func(t *testing.T) {
		bad := input
		bad.Minute = 0
		if _, err := service.RecordEvent(ctx, bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("got %v, want ErrInvalidInput", err)
		}
	})

	if _, err := service.Finish(ctx, item.ID); err != nil {
		t.Fatalf("finish match: %v", err)
	}
	if _, err := service.RecordEvent(ctx, input); !errors.Is(err, ErrConflict) {
		t.Fatalf("event on a finished match: got %v, want ErrConflict", err)
	}
}
