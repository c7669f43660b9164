package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sourcegraph/conc/pool"

	"github.com/ligasmart/ligasmart/internal/app"
	"github.com/ligasmart/ligasmart/internal/config"
	"github.com/ligasmart/ligasmart/internal/domain/standing"
	"github.com/ligasmart/ligasmart/internal/infrastructure/repository/localstore"
	"github.com/ligasmart/ligasmart/internal/platform/logging"
	"github.com/ligasmart/ligasmart/internal/usecase"
)

const usage = `usage: ligasmart <command> [flags]

commands:
  tournaments            list tournaments
  table                  print the league table
  scorers                print top scorers
  predict                print predictions for upcoming fixtures
  summary                table, scorers and predictions in one pass
  refresh                rebuild standings for every tournament
  seed                   load the demo dataset into the store

flags:
  -tournament <id>       tournament to operate on
  -limit <n>             row cap for scorers/predictions (default 5)
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	tournamentID := flags.String("tournament", localstore.SeedTournamentID, "tournament id")
	limit := flags.Int("limit", 5, "row cap for scorers/predictions")
	if err := flags.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("open store", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if cfg.SeedDemo || command == "seed" {
		if err := localstore.Seed(ctx, application.Store); err != nil {
			logger.Error("seed store", "error", err)
			os.Exit(1)
		}
		if command == "seed" {
			fmt.Println("demo data loaded")
			return
		}
	}

	if err := run(ctx, application, command, *tournamentID, *limit); err != nil {
		logger.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, application *app.App, command, tournamentID string, limit int) error {
	switch command {
	case "tournaments":
		return printTournaments(ctx, application)
	case "table":
		rows, err := application.Standings.TableByTournament(ctx, tournamentID)
		if err != nil {
			return err
		}
		return printTable(ctx, application, tournamentID, rows)
	case "scorers":
		scorers, err := application.PlayerStats.TopScorers(ctx, tournamentID, limit)
		if err != nil {
			return err
		}
		printScorers(scorers)
		return nil
	case "predict":
		predictions, err := application.Predictions.UpcomingByTournament(ctx, tournamentID, limit)
		if err != nil {
			return err
		}
		return printPredictions(ctx, application, tournamentID, predictions)
	case "summary":
		return printSummary(ctx, application, tournamentID, limit)
	case "refresh":
		result, err := application.Refresh.RebuildAll(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("refreshed %d tournaments (%d ok, %d failed)\n",
			result.TournamentCount, result.SuccessCount, result.FailedCount)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// printSummary fetches the three views concurrently; they are independent
// reads over the same snapshot.
func printSummary(ctx context.Context, application *app.App, tournamentID string, limit int) error {
	var (
		scorers     []usecase.PlayerStats
		table       []standing.Standing
		predictions []usecase.MatchPrediction
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		table, err = application.Standings.TableByTournament(ctx, tournamentID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		scorers, err = application.PlayerStats.TopScorers(ctx, tournamentID, limit)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		predictions, err = application.Predictions.UpcomingByTournament(ctx, tournamentID, limit)
		return err
	})
	if err := p.Wait(); err != nil {
		return err
	}

	names, err := teamNames(ctx, application, tournamentID)
	if err != nil {
		return err
	}

	fmt.Println("== Table ==")
	writeTable(table, names)
	fmt.Println("\n== Top scorers ==")
	printScorers(scorers)
	fmt.Println("\n== Predictions ==")
	writePredictions(predictions, names)
	return nil
}

func printTournaments(ctx context.Context, application *app.App) error {
	items, err := application.Tournaments.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFORMAT\tSTATUS\tTEAMS")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", item.ID, item.Name, item.Format, item.Status, len(item.TeamIDs))
	}
	return w.Flush()
}

func printTable(ctx context.Context, application *app.App, tournamentID string, rows []standing.Standing) error {
	names, err := teamNames(ctx, application, tournamentID)
	if err != nil {
		return err
	}
	writeTable(rows, names)
	return nil
}

func writeTable(rows []standing.Standing, names map[string]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tTEAM\tP\tW\tD\tL\tGF\tGA\tGD\tPTS\tFORM")
	for _, row := range rows {
		name := names[row.TeamID]
		if name == "" {
			name = row.TeamID
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t%s\n",
			row.Position, name, row.Played, row.Won, row.Drawn, row.Lost,
			row.GoalsFor, row.GoalsAgainst, row.GoalDifference, row.Points, row.Form)
	}
	w.Flush()
}

func printScorers(scorers []usecase.PlayerStats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tGOALS\tYELLOW\tRED")
	for _, item := range scorers {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", item.Player.Name, item.Goals, item.YellowCards, item.RedCards)
	}
	w.Flush()
}

func printPredictions(ctx context.Context, application *app.App, tournamentID string, predictions []usecase.MatchPrediction) error {
	names, err := teamNames(ctx, application, tournamentID)
	if err != nil {
		return err
	}
	writePredictions(predictions, names)
	return nil
}

func writePredictions(predictions []usecase.MatchPrediction, names map[string]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIXTURE\tDATE\tHOME\tDRAW\tAWAY\tCONFIDENCE")
	for _, item := range predictions {
		home := names[item.HomeTeamID]
		if home == "" {
			home = item.HomeTeamID
		}
		away := names[item.AwayTeamID]
		if away == "" {
			away = item.AwayTeamID
		}
		fmt.Fprintf(w, "%s vs %s\t%s %s\t%d%%\t%d%%\t%d%%\t%s\n",
			home, away, item.Date.Format("2006-01-02"), item.Time,
			item.Outcome.Home, item.Outcome.Draw, item.Outcome.Away, item.Confidence)
	}
	w.Flush()
}

func teamNames(ctx context.Context, application *app.App, tournamentID string) (map[string]string, error) {
	teams, err := application.Teams.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(teams))
	for _, item := range teams {
		names[item.ID] = item.Name
	}
	return names, nil
}
