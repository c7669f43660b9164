package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/player"
	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/platform/id"
)

type CreatePlayerInput struct {
	TeamID   string
	Name     string `validate:"required"`
	Position string `validate:"required"`
	Number   int    `validate:"gt=0"`

	Photo            string
	BirthDate        *time.Time
	Nationality      string
	HeightCM         int `validate:"gte=0"`
	WeightKG         int `validate:"gte=0"`
	DominantFoot     string `validate:"omitempty,oneof=left right both"`
	Email            string `validate:"omitempty,email"`
	Phone            string
	EmergencyContact string
	BloodType        string
	MedicalNotes     string
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      id.Generator
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, idGen id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
	}
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	if err := validateInput(input); err != nil {
		return player.Player{}, err
	}
	if err := s.checkTeam(ctx, input.TeamID); err != nil {
		return player.Player{}, err
	}

	item := player.Player{
		ID:               s.idGen.NewID(),
		TeamID:           input.TeamID,
		Name:             strings.TrimSpace(input.Name),
		Position:         input.Position,
		Number:           input.Number,
		Photo:            input.Photo,
		BirthDate:        input.BirthDate,
		Nationality:      input.Nationality,
		HeightCM:         input.HeightCM,
		WeightKG:         input.WeightKG,
		DominantFoot:     input.DominantFoot,
		Email:            input.Email,
		Phone:            input.Phone,
		EmergencyContact: input.EmergencyContact,
		BloodType:        input.BloodType,
		MedicalNotes:     input.MedicalNotes,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Save(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("save player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	if err := validateInput(input); err != nil {
		return player.Player{}, err
	}

	item, err := s.get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	if err := s.checkTeam(ctx, input.TeamID); err != nil {
		return player.Player{}, err
	}

	updated := item
	updated.TeamID = input.TeamID
	updated.Name = strings.TrimSpace(input.Name)
	updated.Position = input.Position
	updated.Number = input.Number
	updated.Photo = input.Photo
	updated.BirthDate = input.BirthDate
	updated.Nationality = input.Nationality
	updated.HeightCM = input.HeightCM
	updated.WeightKG = input.WeightKG
	updated.DominantFoot = input.DominantFoot
	updated.Email = input.Email
	updated.Phone = input.Phone
	updated.EmergencyContact = input.EmergencyContact
	updated.BloodType = input.BloodType
	updated.MedicalNotes = input.MedicalNotes
	if err := updated.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Save(ctx, updated); err != nil {
		return player.Player{}, fmt.Errorf("save player: %w", err)
	}

	return updated, nil
}

// AssignToTeam moves the player to teamID; an empty teamID unassigns.
func (s *PlayerService) AssignToTeam(ctx context.Context, playerID, teamID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AssignToTeam")
	defer span.End()

	item, err := s.get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	if err := s.checkTeam(ctx, teamID); err != nil {
		return player.Player{}, err
	}

	item.TeamID = teamID
	if err := s.playerRepo.Save(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("save player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if _, err := s.get(ctx, playerID); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return items, nil
}

// ListUnassignedOrOrphaned returns players with no team plus players whose
// team id no longer resolves (left behind by a team deletion).
func (s *PlayerService) ListUnassignedOrOrphaned(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListUnassignedOrOrphaned")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0)
	for _, item := range items {
		if !item.Assigned() {
			out = append(out, item)
			continue
		}
		_, exists, err := s.teamRepo.GetByID(ctx, item.TeamID)
		if err != nil {
			return nil, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			out = append(out, item)
		}
	}

	return out, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	return s.get(ctx, playerID)
}

func (s *PlayerService) get(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) checkTeam(ctx context.Context, teamID string) error {
	if teamID == "" {
		return nil
	}
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}
