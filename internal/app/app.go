package app

import (
	"github.com/ligasmart/ligasmart/internal/config"
	"github.com/ligasmart/ligasmart/internal/infrastructure/repository/localstore"
	"github.com/ligasmart/ligasmart/internal/platform/id"
	"github.com/ligasmart/ligasmart/internal/platform/logging"
	"github.com/ligasmart/ligasmart/internal/usecase"
)

// App wires the store, repositories and services together.
type App struct {
	Store *localstore.Store

	Tournaments *usecase.TournamentService
	Teams       *usecase.TeamService
	Players     *usecase.PlayerService
	Matches     *usecase.MatchService
	Referees    *usecase.RefereeService
	Coaches     *usecase.CoachService
	Standings   *usecase.StandingService
	Predictions *usecase.PredictionService
	PlayerStats *usecase.PlayerStatsService
	Refresh     *usecase.RefreshService
	Auth        *usecase.AuthService

	Logger *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, err := localstore.Open(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	tournamentRepo := localstore.NewTournamentRepository(store)
	teamRepo := localstore.NewTeamRepository(store)
	playerRepo := localstore.NewPlayerRepository(store)
	matchRepo := localstore.NewMatchRepository(store)
	eventRepo := localstore.NewEventRepository(store)
	standingRepo := localstore.NewStandingRepository(store)
	refereeRepo := localstore.NewRefereeRepository(store)
	coachRepo := localstore.NewCoachRepository(store)
	userRepo := localstore.NewUserRepository(store)
	sessionStore := localstore.NewSessionStore(store)

	idGen := id.NewUUIDGenerator()

	standingService := usecase.NewStandingService(tournamentRepo, teamRepo, matchRepo, standingRepo)

	return &App{
		Store:       store,
		Tournaments: usecase.NewTournamentService(tournamentRepo, teamRepo, idGen),
		Teams:       usecase.NewTeamService(tournamentRepo, teamRepo, coachRepo, idGen),
		Players:     usecase.NewPlayerService(playerRepo, teamRepo, idGen),
		Matches:     usecase.NewMatchService(matchRepo, eventRepo, teamRepo, playerRepo, refereeRepo, idGen),
		Referees:    usecase.NewRefereeService(refereeRepo, idGen),
		Coaches:     usecase.NewCoachService(coachRepo, idGen),
		Standings:   standingService,
		Predictions: usecase.NewPredictionService(matchRepo, standingService),
		PlayerStats: usecase.NewPlayerStatsService(teamRepo, playerRepo, matchRepo, eventRepo),
		Refresh:     usecase.NewRefreshService(tournamentRepo, standingService, logger),
		Auth:        usecase.NewAuthService(userRepo, sessionStore, idGen),
		Logger:      logger,
	}, nil
}
