package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/player"
	"github.com/ligasmart/ligasmart/internal/domain/referee"
	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/platform/id"
)

type CreateMatchInput struct {
	TournamentID string    `validate:"required"`
	HomeTeamID   string    `validate:"required"`
	AwayTeamID   string    `validate:"required,nefield=HomeTeamID"`
	Date         time.Time `validate:"required"`
	Time         string    `validate:"required"`
	Venue        string    `validate:"required"`
	RefereeID    string
}

type RecordEventInput struct {
	MatchID     string `validate:"required"`
	Type        string `validate:"required,oneof=goal yellow_card red_card substitution"`
	PlayerID    string `validate:"required"`
	TeamID      string `validate:"required"`
	Minute      int    `validate:"gt=0"`
	Description string
}

type MatchService struct {
	matchRepo   match.Repository
	eventRepo   match.EventRepository
	teamRepo    team.Repository
	playerRepo  player.Repository
	refereeRepo referee.Repository
	idGen       id.Generator
}

func NewMatchService(
	matchRepo match.Repository,
	eventRepo match.EventRepository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	refereeRepo referee.Repository,
	idGen id.Generator,
) *MatchService {
	return &MatchService{
		matchRepo:   matchRepo,
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		refereeRepo: refereeRepo,
		idGen:       idGen,
	}
}

// Schedule creates a new fixture in the scheduled state. Both teams must
// exist and belong to the match's tournament.
func (s *MatchService) Schedule(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Schedule")
	defer span.End()

	if err := validateInput(input); err != nil {
		return match.Match{}, err
	}
	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		item, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		if item.TournamentID != input.TournamentID {
			return match.Match{}, fmt.Errorf("%w: team %s is not part of tournament %s", ErrConflict, teamID, input.TournamentID)
		}
	}
	if err := s.checkReferee(ctx, input.RefereeID); err != nil {
		return match.Match{}, err
	}

	item := match.Match{
		ID:           s.idGen.NewID(),
		TournamentID: input.TournamentID,
		HomeTeamID:   input.HomeTeamID,
		AwayTeamID:   input.AwayTeamID,
		Date:         input.Date,
		Time:         input.Time,
		Venue:        input.Venue,
		Status:       match.StatusScheduled,
		RefereeID:    input.RefereeID,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	return item, nil
}

// Start moves a scheduled match to live with a 0-0 score line.
func (s *MatchService) Start(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Start")
	defer span.End()

	item, err := s.get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Status != match.StatusScheduled {
		return match.Match{}, fmt.Errorf("%w: match %s is %s, not scheduled", ErrConflict, matchID, item.Status)
	}

	zero := 0
	home, away := zero, zero
	item.Status = match.StatusLive
	item.HomeScore = &home
	item.AwayScore = &away
	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	return item, nil
}

// UpdateScore sets the current score line of a live match.
func (s *MatchService) UpdateScore(ctx context.Context, matchID string, homeScore, awayScore int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateScore")
	defer span.End()

	if homeScore < 0 || awayScore < 0 {
		return match.Match{}, fmt.Errorf("%w: scores must not be negative", ErrInvalidInput)
	}

	item, err := s.get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Status != match.StatusLive {
		return match.Match{}, fmt.Errorf("%w: match %s is %s, not live", ErrConflict, matchID, item.Status)
	}

	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	return item, nil
}

// Finish moves a live match to finished, freezing its score line. The
// transition is forward-only; a finished match never reopens.
func (s *MatchService) Finish(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Finish")
	defer span.End()

	item, err := s.get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Status != match.StatusLive {
		return match.Match{}, fmt.Errorf("%w: match %s is %s, not live", ErrConflict, matchID, item.Status)
	}

	item.Status = match.StatusFinished
	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	return item, nil
}

// RecordEvent appends an immutable event to a live match. The acting team
// must be one of the two sides; the acting player must exist.
func (s *MatchService) RecordEvent(ctx context.Context, input RecordEventInput) (match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordEvent")
	defer span.End()

	if err := validateInput(input); err != nil {
		return match.Event{}, err
	}

	item, err := s.get(ctx, input.MatchID)
	if err != nil {
		return match.Event{}, err
	}
	if item.Status != match.StatusLive {
		return match.Event{}, fmt.Errorf("%w: events can only be recorded while the match is live", ErrConflict)
	}
	if !item.Involves(input.TeamID) {
		return match.Event{}, fmt.Errorf("%w: team %s is not playing match %s", ErrConflict, input.TeamID, input.MatchID)
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return match.Event{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return match.Event{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	event := match.Event{
		ID:          s.idGen.NewID(),
		MatchID:     input.MatchID,
		Type:        input.Type,
		PlayerID:    input.PlayerID,
		TeamID:      input.TeamID,
		Minute:      input.Minute,
		Description: input.Description,
	}
	if err := event.Validate(); err != nil {
		return match.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.eventRepo.Append(ctx, event); err != nil {
		return match.Event{}, fmt.Errorf("append event: %w", err)
	}

	return event, nil
}

// ListEvents returns a match's events ordered by minute ascending.
func (s *MatchService) ListEvents(ctx context.Context, matchID string) ([]match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListEvents")
	defer span.End()

	if _, err := s.get(ctx, matchID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list events by match: %w", err)
	}
	return events, nil
}

func (s *MatchService) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches by tournament: %w", err)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	return s.get(ctx, matchID)
}

func (s *MatchService) get(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) checkReferee(ctx context.Context, refereeID string) error {
	if refereeID == "" {
		return nil
	}
	_, exists, err := s.refereeRepo.GetByID(ctx, refereeID)
	if err != nil {
		return fmt.Errorf("get referee: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: referee=%s", ErrNotFound, refereeID)
	}
	return nil
}
