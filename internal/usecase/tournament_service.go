package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/domain/tournament"
	"github.com/ligasmart/ligasmart/internal/platform/id"
)

// minTeamsToActivate guards tournament activation; a league table needs
// at least two teams to mean anything.
const minTeamsToActivate = 2

type CreateTournamentInput struct {
	Name        string    `validate:"required"`
	Format      string    `validate:"required,oneof=5 7 11"`
	StartDate   time.Time `validate:"required"`
	EndDate     time.Time
	OrganizerID string `validate:"required"`
	Rules       string
}

type UpdateTournamentInput struct {
	Name      string    `validate:"required"`
	Format    string    `validate:"required,oneof=5 7 11"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time
	Rules     string
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	idGen          id.Generator
}

func NewTournamentService(tournamentRepo tournament.Repository, teamRepo team.Repository, idGen id.Generator) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		idGen:          idGen,
	}
}

func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Create")
	defer span.End()

	if err := validateInput(input); err != nil {
		return tournament.Tournament{}, err
	}

	item := tournament.Tournament{
		ID:          s.idGen.NewID(),
		Name:        strings.TrimSpace(input.Name),
		Format:      input.Format,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      tournament.StatusUpcoming,
		OrganizerID: input.OrganizerID,
		Rules:       input.Rules,
	}
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.tournamentRepo.Save(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("save tournament: %w", err)
	}

	return item, nil
}

func (s *TournamentService) Update(ctx context.Context, tournamentID string, input UpdateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Update")
	defer span.End()

	if err := validateInput(input); err != nil {
		return tournament.Tournament{}, err
	}

	item, err := s.get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Format = input.Format
	item.StartDate = input.StartDate
	item.EndDate = input.EndDate
	item.Rules = input.Rules
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.tournamentRepo.Save(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("save tournament: %w", err)
	}

	return item, nil
}

// SetStatus moves the tournament through upcoming -> active -> completed.
// Activation requires enough enrolled teams.
func (s *TournamentService) SetStatus(ctx context.Context, tournamentID, status string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.SetStatus")
	defer span.End()

	item, err := s.get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	if status == tournament.StatusActive && len(item.TeamIDs) < minTeamsToActivate {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament needs at least %d teams to activate", ErrConflict, minTeamsToActivate)
	}

	item.Status = status
	if err := item.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.tournamentRepo.Save(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("save tournament: %w", err)
	}

	return item, nil
}

// EnrollTeam adds an existing team of this tournament to the enrolled set.
func (s *TournamentService) EnrollTeam(ctx context.Context, tournamentID, teamID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.EnrollTeam")
	defer span.End()

	item, err := s.get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	enrolled, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	if enrolled.TournamentID != item.ID {
		return tournament.Tournament{}, fmt.Errorf("%w: team %s belongs to another tournament", ErrConflict, teamID)
	}
	if item.HasTeam(teamID) {
		return item, nil
	}

	item.TeamIDs = append(item.TeamIDs, teamID)
	if err := s.tournamentRepo.Save(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("save tournament: %w", err)
	}

	return item, nil
}

// WithdrawTeam removes a team from the enrolled set. The team entity and
// its matches are untouched.
func (s *TournamentService) WithdrawTeam(ctx context.Context, tournamentID, teamID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.WithdrawTeam")
	defer span.End()

	item, err := s.get(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, err
	}

	out := item.TeamIDs[:0]
	for _, idValue := range item.TeamIDs {
		if idValue != teamID {
			out = append(out, idValue)
		}
	}
	item.TeamIDs = out
	if err := s.tournamentRepo.Save(ctx, item); err != nil {
		return tournament.Tournament{}, fmt.Errorf("save tournament: %w", err)
	}

	return item, nil
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.List")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return items, nil
}

func (s *TournamentService) Get(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Get")
	defer span.End()

	return s.get(ctx, tournamentID)
}

func (s *TournamentService) Delete(ctx context.Context, tournamentID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Delete")
	defer span.End()

	if _, err := s.get(ctx, tournamentID); err != nil {
		return err
	}
	if err := s.tournamentRepo.Delete(ctx, tournamentID); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}
	return nil
}

func (s *TournamentService) get(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}
