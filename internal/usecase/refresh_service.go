package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ligasmart/ligasmart/internal/domain/tournament"
	"github.com/ligasmart/ligasmart/internal/platform/logging"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"

	defaultRefreshWorkers = 4
)

type RefreshResult struct {
	TournamentCount int                 `json:"tournament_count"`
	SuccessCount    int                 `json:"success_count"`
	FailedCount     int                 `json:"failed_count"`
	WorkerCount     int                 `json:"worker_count"`
	Tasks           []RefreshTaskResult `json:"tasks"`
}

type RefreshTaskResult struct {
	TournamentID string `json:"tournament_id"`
	Status       string `json:"status"`
	Rows         int    `json:"rows"`
	DurationMs   int64  `json:"duration_ms"`
	Message      string `json:"message,omitempty"`
}

// RefreshService rebuilds and persists the standings table of every
// tournament over a bounded worker pool. Each tournament's table is an
// independent computation, so tasks run concurrently without coordination.
type RefreshService struct {
	tournamentRepo  tournament.Repository
	standingService *StandingService
	logger          *logging.Logger
	maxWorkers      int
}

func NewRefreshService(tournamentRepo tournament.Repository, standingService *StandingService, logger *logging.Logger) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RefreshService{
		tournamentRepo:  tournamentRepo,
		standingService: standingService,
		logger:          logger,
		maxWorkers:      defaultRefreshWorkers,
	}
}

func (s *RefreshService) RebuildAll(ctx context.Context) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.RebuildAll")
	defer span.End()

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("list tournaments: %w", err)
	}

	workers := s.maxWorkers
	if workers > len(tournaments) {
		workers = len(tournaments)
	}
	if workers < 1 {
		workers = 1
	}

	result := RefreshResult{
		TournamentCount: len(tournaments),
		WorkerCount:     workers,
		Tasks:           make([]RefreshTaskResult, len(tournaments)),
	}
	if len(tournaments) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for idx, item := range tournaments {
		idx, item := idx, item
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			result.Tasks[idx] = s.rebuildOne(ctx, item.ID)
		})
		if submitErr != nil {
			wg.Done()
			result.Tasks[idx] = RefreshTaskResult{
				TournamentID: item.ID,
				Status:       refreshStatusFailed,
				Message:      submitErr.Error(),
			}
		}
	}
	wg.Wait()

	for _, task := range result.Tasks {
		if task.Status == refreshStatusSuccess {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
	}

	s.logger.InfoContext(ctx, "standings refresh finished",
		"tournaments", result.TournamentCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)

	return result, nil
}

func (s *RefreshService) rebuildOne(ctx context.Context, tournamentID string) RefreshTaskResult {
	startedAt := time.Now()
	rows, err := s.standingService.TableByTournament(ctx, tournamentID)
	task := RefreshTaskResult{
		TournamentID: tournamentID,
		DurationMs:   time.Since(startedAt).Milliseconds(),
	}
	if err != nil {
		task.Status = refreshStatusFailed
		task.Message = err.Error()
		s.logger.WarnContext(ctx, "standings refresh failed", "tournament_id", tournamentID, "error", err)
		return task
	}

	task.Status = refreshStatusSuccess
	task.Rows = len(rows)
	return task
}
