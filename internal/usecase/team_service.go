package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/coach"
	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/domain/tournament"
	"github.com/ligasmart/ligasmart/internal/platform/id"
)

type CreateTeamInput struct {
	TournamentID string `validate:"required"`
	Name         string `validate:"required"`
	Logo         string
	FoundedDate  *time.Time
	CoachID      string
}

type UpdateTeamInput struct {
	Name        string `validate:"required"`
	Logo        string
	FoundedDate *time.Time
	CoachID     string
}

type TeamService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	coachRepo      coach.Repository
	idGen          id.Generator
}

func NewTeamService(tournamentRepo tournament.Repository, teamRepo team.Repository, coachRepo coach.Repository, idGen id.Generator) *TeamService {
	return &TeamService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		coachRepo:      coachRepo,
		idGen:          idGen,
	}
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	if err := validateInput(input); err != nil {
		return team.Team{}, err
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, input.TournamentID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, input.TournamentID)
	}
	if err := s.checkCoach(ctx, input.CoachID); err != nil {
		return team.Team{}, err
	}

	item := team.Team{
		ID:           s.idGen.NewID(),
		TournamentID: input.TournamentID,
		Name:         strings.TrimSpace(input.Name),
		Logo:         input.Logo,
		FoundedDate:  input.FoundedDate,
		CoachID:      input.CoachID,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Save(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("save team: %w", err)
	}

	return item, nil
}

func (s *TeamService) Update(ctx context.Context, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	if err := validateInput(input); err != nil {
		return team.Team{}, err
	}

	item, err := s.get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if err := s.checkCoach(ctx, input.CoachID); err != nil {
		return team.Team{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Logo = input.Logo
	item.FoundedDate = input.FoundedDate
	item.CoachID = input.CoachID
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Save(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("save team: %w", err)
	}

	return item, nil
}

// Delete removes only the team row. Players and matches that reference it
// are left in place; downstream consumers filter them out, and orphaned
// players stay visible through PlayerService.ListUnassignedOrOrphaned.
func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if _, err := s.get(ctx, teamID); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

func (s *TeamService) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	items, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams by tournament: %w", err)
	}
	return items, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	return s.get(ctx, teamID)
}

func (s *TeamService) get(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) checkCoach(ctx context.Context, coachID string) error {
	if coachID == "" {
		return nil
	}
	_, exists, err := s.coachRepo.GetByID(ctx, coachID)
	if err != nil {
		return fmt.Errorf("get coach: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: coach=%s", ErrNotFound, coachID)
	}
	return nil
}
