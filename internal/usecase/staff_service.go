package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ligasmart/ligasmart/internal/domain/coach"
	"github.com/ligasmart/ligasmart/internal/domain/referee"
	"github.com/ligasmart/ligasmart/internal/platform/id"
)

type RefereeInput struct {
	Name            string `validate:"required"`
	License         string `validate:"required"`
	ExperienceYears int    `validate:"gte=0"`
	Email           string `validate:"required,email"`
	Phone           string
	Photo           string
}

type CoachInput struct {
	Name            string `validate:"required"`
	License         string
	ExperienceYears int    `validate:"gte=0"`
	Email           string `validate:"required,email"`
	Phone           string
	Photo           string
	Specialty       string
}

type RefereeService struct {
	refereeRepo referee.Repository
	idGen       id.Generator
}

func NewRefereeService(refereeRepo referee.Repository, idGen id.Generator) *RefereeService {
	return &RefereeService{refereeRepo: refereeRepo, idGen: idGen}
}

func (s *RefereeService) Create(ctx context.Context, input RefereeInput) (referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.Create")
	defer span.End()

	if err := validateInput(input); err != nil {
		return referee.Referee{}, err
	}

	item := referee.Referee{
		ID:              s.idGen.NewID(),
		Name:            strings.TrimSpace(input.Name),
		License:         input.License,
		ExperienceYears: input.ExperienceYears,
		Email:           input.Email,
		Phone:           input.Phone,
		Photo:           input.Photo,
	}
	if err := item.Validate(); err != nil {
		return referee.Referee{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.refereeRepo.Save(ctx, item); err != nil {
		return referee.Referee{}, fmt.Errorf("save referee: %w", err)
	}

	return item, nil
}

func (s *RefereeService) Update(ctx context.Context, refereeID string, input RefereeInput) (referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.Update")
	defer span.End()

	if err := validateInput(input); err != nil {
		return referee.Referee{}, err
	}

	item, exists, err := s.refereeRepo.GetByID(ctx, refereeID)
	if err != nil {
		return referee.Referee{}, fmt.Errorf("get referee: %w", err)
	}
	if !exists {
		return referee.Referee{}, fmt.Errorf("%w: referee=%s", ErrNotFound, refereeID)
	}

	item.Name = strings.TrimSpace(input.Name)
	item.License = input.License
	item.ExperienceYears = input.ExperienceYears
	item.Email = input.Email
	item.Phone = input.Phone
	item.Photo = input.Photo
	if err := s.refereeRepo.Save(ctx, item); err != nil {
		return referee.Referee{}, fmt.Errorf("save referee: %w", err)
	}

	return item, nil
}

func (s *RefereeService) Delete(ctx context.Context, refereeID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.Delete")
	defer span.End()

	if err := s.refereeRepo.Delete(ctx, refereeID); err != nil {
		return fmt.Errorf("delete referee: %w", err)
	}
	return nil
}

func (s *RefereeService) List(ctx context.Context) ([]referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefereeService.List")
	defer span.End()

	items, err := s.refereeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list referees: %w", err)
	}
	return items, nil
}

type CoachService struct {
	coachRepo coach.Repository
	idGen     id.Generator
}

func NewCoachService(coachRepo coach.Repository, idGen id.Generator) *CoachService {
	return &CoachService{coachRepo: coachRepo, idGen: idGen}
}

func (s *CoachService) Create(ctx context.Context, input CoachInput) (coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.Create")
	defer span.End()

	if err := validateInput(input); err != nil {
		return coach.Coach{}, err
	}

	item := coach.Coach{
		ID:              s.idGen.NewID(),
		Name:            strings.TrimSpace(input.Name),
		License:         input.License,
		ExperienceYears: input.ExperienceYears,
		Email:           input.Email,
		Phone:           input.Phone,
		Photo:           input.Photo,
		Specialty:       input.Specialty,
	}
	if err := item.Validate(); err != nil {
		return coach.Coach{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.coachRepo.Save(ctx, item); err != nil {
		return coach.Coach{}, fmt.Errorf("save coach: %w", err)
	}

	return item, nil
}

func (s *CoachService) Update(ctx context.Context, coachID string, input CoachInput) (coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.Update")
	defer span.End()

	if err := validateInput(input); err != nil {
		return coach.Coach{}, err
	}

	item, exists, err := s.coachRepo.GetByID(ctx, coachID)
	if err != nil {
		return coach.Coach{}, fmt.Errorf("get coach: %w", err)
	}
	if !exists {
		return coach.Coach{}, fmt.Errorf("%w: coach=%s", ErrNotFound, coachID)
	}

	item.Name = strings.TrimSpace(input.Name)
	item.License = input.License
	item.ExperienceYears = input.ExperienceYears
	item.Email = input.Email
	item.Phone = input.Phone
	item.Photo = input.Photo
	item.Specialty = input.Specialty
	if err := s.coachRepo.Save(ctx, item); err != nil {
		return coach.Coach{}, fmt.Errorf("save coach: %w", err)
	}

	return item, nil
}

func (s *CoachService) Delete(ctx context.Context, coachID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.Delete")
	defer span.End()

	if err := s.coachRepo.Delete(ctx, coachID); err != nil {
		return fmt.Errorf("delete coach: %w", err)
	}
	return nil
}

func (s *CoachService) List(ctx context.Context) ([]coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CoachService.List")
	defer span.End()

	items, err := s.coachRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	return items, nil
}
