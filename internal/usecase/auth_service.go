package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ligasmart/ligasmart/internal/domain/user"
	"github.com/ligasmart/ligasmart/internal/platform/id"
)

type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=admin referee coach fan"`
}

// AuthService manages the user collection and the single current session.
// Passwords are bcrypt-hashed before they touch the store.
type AuthService struct {
	userRepo   user.Repository
	sessions   user.SessionStore
	idGen      id.Generator
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(userRepo user.Repository, sessions user.SessionStore, idGen id.Generator) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		idGen:      idGen,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	if err := validateInput(input); err != nil {
		return user.User{}, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, exists, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: email %s is already registered", ErrConflict, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	item := user.User{
		ID:           s.idGen.NewID(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		Role:         input.Role,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.userRepo.Save(ctx, item); err != nil {
		return user.User{}, fmt.Errorf("save user: %w", err)
	}

	return item, nil
}

// Login verifies the credentials and replaces the current session. The
// same opaque error covers unknown email and wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (user.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return user.Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.Session{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists || bcrypt.CompareHashAndPassword([]byte(item.PasswordHash), []byte(password)) != nil {
		return user.Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	session := user.Session{
		UserID:    item.ID,
		Email:     item.Email,
		Name:      item.Name,
		Role:      item.Role,
		Photo:     item.Photo,
		StartedAt: s.now().UTC(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return user.Session{}, fmt.Errorf("set session: %w", err)
	}

	return session, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns the active session, or ErrUnauthorized when nobody is
// logged in.
func (s *AuthService) Current(ctx context.Context) (user.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Current")
	defer span.End()

	session, ok, err := s.sessions.Get(ctx)
	if err != nil {
		return user.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !ok {
		return user.Session{}, fmt.Errorf("%w: no active session", ErrUnauthorized)
	}
	return session, nil
}
