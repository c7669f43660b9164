package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/player"
	"github.com/ligasmart/ligasmart/internal/domain/team"
)

// PlayerStats is a player augmented with per-type event counts.
type PlayerStats struct {
	Player      player.Player
	Goals       int
	YellowCards int
	RedCards    int
}

// AggregatePlayerStats counts goal and card events per input player.
// Substitutions and events for unknown players are ignored. Quadratic in
// players times events, which is fine at amateur-league cardinalities.
func AggregatePlayerStats(players []player.Player, events []match.Event) []PlayerStats {
	out := make([]PlayerStats, 0, len(players))
	for _, p := range players {
		stats := PlayerStats{Player: p}
		for _, e := range events {
			if e.PlayerID != p.ID {
				continue
			}
			switch e.Type {
			case match.EventGoal:
				stats.Goals++
			case match.EventYellowCard:
				stats.YellowCards++
			case match.EventRedCard:
				stats.RedCards++
			}
		}
		out = append(out, stats)
	}

	return out
}

type PlayerStatsService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	eventRepo  match.EventRepository
}

func NewPlayerStatsService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	eventRepo match.EventRepository,
) *PlayerStatsService {
	return &PlayerStatsService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
	}
}

// ByTournament aggregates stats for every player on the tournament's
// teams, scoped to events recorded in the tournament's matches.
func (s *PlayerStatsService) ByTournament(ctx context.Context, tournamentID string) ([]PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.ByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams by tournament: %w", err)
	}
	players := make([]player.Player, 0)
	for _, item := range teams {
		teamPlayers, err := s.playerRepo.ListByTeam(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("list players by team: %w", err)
		}
		players = append(players, teamPlayers...)
	}

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches by tournament: %w", err)
	}
	matchIDs := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		matchIDs[m.ID] = struct{}{}
	}

	allEvents, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	events := make([]match.Event, 0, len(allEvents))
	for _, e := range allEvents {
		if _, ok := matchIDs[e.MatchID]; ok {
			events = append(events, e)
		}
	}

	return AggregatePlayerStats(players, events), nil
}

// TopScorers returns the tournament's best scorers, goals descending,
// capped at limit. Players without goals are excluded.
func (s *PlayerStatsService) TopScorers(ctx context.Context, tournamentID string, limit int) ([]PlayerStats, error) {
	stats, err := s.ByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	scorers := make([]PlayerStats, 0, len(stats))
	for _, item := range stats {
		if item.Goals > 0 {
			scorers = append(scorers, item)
		}
	}
	sort.SliceStable(scorers, func(i, j int) bool {
		return scorers[i].Goals > scorers[j].Goals
	})
	if limit > 0 && len(scorers) > limit {
		scorers = scorers[:limit]
	}

	return scorers, nil
}
