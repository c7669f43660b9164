package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/standing"
)

// defaultUpcomingLimit mirrors how many fixtures the source app previewed.
const defaultUpcomingLimit = 5

// MatchPrediction pairs an upcoming fixture with its predicted split.
type MatchPrediction struct {
	MatchID    string
	HomeTeamID string
	AwayTeamID string
	Date       time.Time
	Time       string
	Venue      string
	Outcome    Prediction
	Confidence string
}

type PredictionService struct {
	matchRepo       match.Repository
	standingService *StandingService
}

func NewPredictionService(matchRepo match.Repository, standingService *StandingService) *PredictionService {
	return &PredictionService{
		matchRepo:       matchRepo,
		standingService: standingService,
	}
}

// UpcomingByTournament predicts the tournament's next scheduled fixtures
// from the current table. Teams without a table row (never enrolled) get
// a zeroed standing, which the smoothing constant tolerates. A limit of
// zero or less falls back to the default.
func (s *PredictionService) UpcomingByTournament(ctx context.Context, tournamentID string, limit int) ([]MatchPrediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.UpcomingByTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	table, err := s.standingService.TableByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	byTeam := make(map[string]standing.Standing, len(table))
	for _, row := range table {
		byTeam[row.TeamID] = row
	}

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches by tournament: %w", err)
	}

	out := make([]MatchPrediction, 0, limit)
	for _, m := range matches {
		if m.Status != match.StatusScheduled {
			continue
		}
		outcome := PredictOutcome(byTeam[m.HomeTeamID], byTeam[m.AwayTeamID])
		out = append(out, MatchPrediction{
			MatchID:    m.ID,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			Date:       m.Date,
			Time:       m.Time,
			Venue:      m.Venue,
			Outcome:    outcome,
			Confidence: ConfidenceLabel(outcome),
		})
		if len(out) == limit {
			break
		}
	}

	return out, nil
}
