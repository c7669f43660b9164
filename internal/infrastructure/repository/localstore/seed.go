package localstore

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/player"
	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/domain/tournament"
	"github.com/ligasmart/ligasmart/internal/domain/user"
)

const SeedTournamentID = "copa-ligasmart-2025"

func intPtr(v int) *int { return &v }

// Seed populates an empty store with a demo tournament: four teams, a few
// finished and scheduled matches, a live match with events, and default
// users. Existing collections are left untouched.
func Seed(ctx context.Context, store *Store) error {
	tournamentRepo := NewTournamentRepository(store)
	if existing, err := tournamentRepo.List(ctx); err != nil {
		return err
	} else if len(existing) > 0 {
		return nil
	}

	start := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	if err := tournamentRepo.Save(ctx, tournament.Tournament{
		ID:          SeedTournamentID,
		Name:        "Copa LigaSmart 2025",
		Format:      tournament.FormatSeven,
		StartDate:   start,
		EndDate:     start.AddDate(0, 3, 0),
		Status:      tournament.StatusActive,
		OrganizerID: "user-admin",
		TeamIDs:     []string{"halcones", "jaguares", "leones", "tigres"},
	}); err != nil {
		return err
	}

	teamRepo := NewTeamRepository(store)
	for _, item := range []team.Team{
		{ID: "halcones", TournamentID: SeedTournamentID, Name: "Halcones FC"},
		{ID: "jaguares", TournamentID: SeedTournamentID, Name: "Jaguares City"},
		{ID: "leones", TournamentID: SeedTournamentID, Name: "Leones FC"},
		{ID: "tigres", TournamentID: SeedTournamentID, Name: "Tigres United"},
	} {
		if err := teamRepo.Save(ctx, item); err != nil {
			return err
		}
	}

	playerRepo := NewPlayerRepository(store)
	for _, item := range []player.Player{
		{ID: "p-halcones-9", TeamID: "halcones", Name: "Diego Rivas", Position: "Delantero", Number: 9},
		{ID: "p-halcones-10", TeamID: "halcones", Name: "Marco Solís", Position: "Mediocampista", Number: 10},
		{ID: "p-jaguares-7", TeamID: "jaguares", Name: "Luis Castañeda", Position: "Delantero", Number: 7},
		{ID: "p-leones-4", TeamID: "leones", Name: "Andrés Peralta", Position: "Defensa", Number: 4},
		{ID: "p-tigres-1", TeamID: "tigres", Name: "Jorge Medina", Position: "Portero", Number: 1},
	} {
		if err := playerRepo.Save(ctx, item); err != nil {
			return err
		}
	}

	matchRepo := NewMatchRepository(store)
	matchDay := func(offset int) time.Time { return start.AddDate(0, 0, offset) }
	for _, item := range []match.Match{
		{
			ID: "m1", TournamentID: SeedTournamentID,
			HomeTeamID: "halcones", AwayTeamID: "jaguares",
			Date: matchDay(2), Time: "16:00", Venue: "Estadio Central",
			Status: match.StatusFinished, HomeScore: intPtr(3), AwayScore: intPtr(1),
		},
		{
			ID: "m2", TournamentID: SeedTournamentID,
			HomeTeamID: "leones", AwayTeamID: "tigres",
			Date: matchDay(2), Time: "18:30", Venue: "Cancha Norte",
			Status: match.StatusFinished, HomeScore: intPtr(1), AwayScore: intPtr(1),
		},
		{
			ID: "m3", TournamentID: SeedTournamentID,
			HomeTeamID: "halcones", AwayTeamID: "leones",
			Date: matchDay(9), Time: "16:00", Venue: "Estadio Central",
			Status: match.StatusFinished, HomeScore: intPtr(2), AwayScore: intPtr(0),
		},
		{
			ID: "m4", TournamentID: SeedTournamentID,
			HomeTeamID: "tigres", AwayTeamID: "jaguares",
			Date: matchDay(9), Time: "18:30", Venue: "Cancha Norte",
			Status: match.StatusLive, HomeScore: intPtr(0), AwayScore: intPtr(1),
		},
		{
			ID: "m5", TournamentID: SeedTournamentID,
			HomeTeamID: "jaguares", AwayTeamID: "leones",
			Date: matchDay(16), Time: "16:00", Venue: "Estadio Central",
			Status: match.StatusScheduled,
		},
		{
			ID: "m6", TournamentID: SeedTournamentID,
			HomeTeamID: "tigres", AwayTeamID: "halcones",
			Date: matchDay(16), Time: "18:30", Venue: "Cancha Norte",
			Status: match.StatusScheduled,
		},
	} {
		if err := matchRepo.Save(ctx, item); err != nil {
			return err
		}
	}

	eventRepo := NewEventRepository(store)
	for _, item := range []match.Event{
		{ID: "e1", MatchID: "m1", Type: match.EventGoal, PlayerID: "p-halcones-9", TeamID: "halcones", Minute: 12},
		{ID: "e2", MatchID: "m1", Type: match.EventGoal, PlayerID: "p-halcones-9", TeamID: "halcones", Minute: 44},
		{ID: "e3", MatchID: "m1", Type: match.EventYellowCard, PlayerID: "p-jaguares-7", TeamID: "jaguares", Minute: 51},
		{ID: "e4", MatchID: "m1", Type: match.EventGoal, PlayerID: "p-jaguares-7", TeamID: "jaguares", Minute: 63},
		{ID: "e5", MatchID: "m1", Type: match.EventGoal, PlayerID: "p-halcones-10", TeamID: "halcones", Minute: 78},
		{ID: "e6", MatchID: "m4", Type: match.EventGoal, PlayerID: "p-jaguares-7", TeamID: "jaguares", Minute: 23},
	} {
		if err := eventRepo.Append(ctx, item); err != nil {
			return err
		}
	}

	userRepo := NewUserRepository(store)
	for _, seed := range []struct {
		id, name, email, role, password string
	}{
		{"user-admin", "Admin", "admin@ligasmart.app", user.RoleAdmin, "admin123"},
		{"user-referee", "Árbitro Demo", "arbitro@ligasmart.app", user.RoleReferee, "arbitro123"},
		{"user-coach", "Entrenador Demo", "entrenador@ligasmart.app", user.RoleCoach, "entrenador123"},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := userRepo.Save(ctx, user.User{
			ID:           seed.id,
			Email:        seed.email,
			Name:         seed.name,
			Role:         seed.role,
			PasswordHash: string(hash),
			CreatedAt:    start,
		}); err != nil {
			return err
		}
	}

	return nil
}
