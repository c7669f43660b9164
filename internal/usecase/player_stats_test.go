package usecase

import (
	"testing"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/player"
)

func TestAggregatePlayerStats(t *testing.T) {
	t.Parallel()

	players := []player.Player{
		{ID: "p1", Name: "Diego Torres"},
		{ID: "p2", Name: "Luis Ramirez"},
	}
	events := []match.Event{
		{ID: "e1", MatchID: "m1", PlayerID: "p1", Type: match.EventGoal, Minute: 12},
		{ID: "e2", MatchID: "m1", PlayerID: "p1", Type: match.EventGoal, Minute: 55},
		{ID: "e3", MatchID: "m2", PlayerID: "p1", Type: match.EventYellowCard, Minute: 70},
		{ID: "e4", MatchID: "m1", PlayerID: "p2", Type: match.EventRedCard, Minute: 88},
		{ID: "e5", MatchID: "m1", PlayerID: "p2", Type: match.EventSubstitution, Minute: 60},
		{ID: "e6", MatchID: "m1", PlayerID: "stranger", Type: match.EventGoal, Minute: 30},
	}

	stats := AggregatePlayerStats(players, events)
	if len(stats) != 2 {
		t.Fatalf("expected a row per player, got %d", len(stats))
	}

	if s := stats[0]; s.Goals != 2 || s.YellowCards != 1 || s.RedCards != 0 {
		t.Fatalf("unexpected stats for p1: %+v", s)
	}
	if s := stats[1]; s.Goals != 0 || s.YellowCards != 0 || s.RedCards != 1 {
		t.Fatalf("unexpected stats for p2: %+v", s)
	}
}

func TestAggregatePlayerStats_NoEvents(t *testing.T) {
	t.Parallel()

	stats := AggregatePlayerStats([]player.Player{{ID: "p1"}}, nil)
	if len(stats) != 1 {
		t.Fatalf("expected 1 row, got %d", len(stats))
	}
	if s := stats[0]; s.Goals != 0 || s.YellowCards != 0 || s.RedCards != 0 {
		t.Fatalf("expected zeroed stats, got %+v", s)
	}
}
