package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/standing"
	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/domain/tournament"
)

type StandingService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	standingRepo   standing.Repository
}

func NewStandingService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	standingRepo standing.Repository,
) *StandingService {
	return &StandingService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		standingRepo:   standingRepo,
	}
}

// TableByTournament recomputes the tournament's table from its teams and
// matches, annotates each row with the team's form, persists the result
// and returns it.
func (s *StandingService) TableByTournament(ctx context.Context, tournamentID string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TableByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams by tournament: %w", err)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches by tournament: %w", err)
	}

	rows := BuildStandings(teams, matches)
	for i := range rows {
		rows[i].Form = TeamForm(rows[i].TeamID, matches)
	}

	if err := s.standingRepo.ReplaceByTournament(ctx, tournamentID, rows); err != nil {
		return nil, fmt.Errorf("replace standings: %w", err)
	}

	return rows, nil
}

// FormByTeam computes the recent-results string for one team of the
// tournament.
func (s *StandingService) FormByTeam(ctx context.Context, tournamentID, teamID string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.FormByTeam")
	defer span.End()

	if strings.TrimSpace(tournamentID) == "" || strings.TrimSpace(teamID) == "" {
		return "", fmt.Errorf("%w: tournament id and team id are required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return "", fmt.Errorf("list matches by tournament: %w", err)
	}

	return TeamForm(teamID, matches), nil
}
