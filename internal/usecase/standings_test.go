package usecase

import (
	"testing"
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/team"
)

func intPtr(v int) *int { return &v }

func finished(id, home, away string, homeScore, awayScore int, date time.Time) match.Match {
	return match.Match{
		ID:           id,
		TournamentID: "t1",
		HomeTeamID:   home,
		AwayTeamID:   away,
		Date:         date,
		Status:       match.StatusFinished,
		HomeScore:    intPtr(homeScore),
		AwayScore:    intPtr(awayScore),
	}
}

func TestBuildStandings(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "a", TournamentID: "t1", Name: "A"},
		{ID: "b", TournamentID: "t1", Name: "B"},
		{ID: "c", TournamentID: "t1", Name: "C"},
	}
	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("three team round", func(t *testing.T) {
		matches := []match.Match{
			finished("m1", "a", "b", 3, 1, day),
			finished("m2", "c", "a", 1, 2, day.AddDate(0, 0, 7)),
			finished("m3", "b", "c", 1, 1, day.AddDate(0, 0, 14)),
		}

		rows := BuildStandings(teams, matches)
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}

		// a wins both, c edges b on goal difference.
		wantOrder := []string{"a", "c", "b"}
		for i, teamID := range wantOrder {
			if rows[i].TeamID != teamID {
				t.Fatalf("position %d: got team %s, want %s", i+1, rows[i].TeamID, teamID)
			}
			if rows[i].Position != i+1 {
				t.Fatalf("team %s: got position %d, want %d", teamID, rows[i].Position, i+1)
			}
		}

		a := rows[0]
		if a.Played != 2 || a.Won != 2 || a.Drawn != 0 || a.Lost != 0 {
			t.Fatalf("unexpected record for a: %+v", a)
		}
		if a.GoalsFor != 5 || a.GoalsAgainst != 2 || a.GoalDifference != 3 || a.Points != 6 {
			t.Fatalf("unexpected tallies for a: %+v", a)
		}

		c := rows[1]
		if c.Points != 1 || c.GoalDifference != -1 || c.GoalsFor != 2 {
			t.Fatalf("unexpected tallies for c: %+v", c)
		}
		b := rows[2]
		if b.Points != 1 || b.GoalDifference != -2 {
			t.Fatalf("unexpected tallies for b: %+v", b)
		}

		for _, row := range rows {
			if row.Played != row.Won+row.Drawn+row.Lost {
				t.Fatalf("team %s: played %d != W+D+L %d", row.TeamID, row.Played, row.Won+row.Drawn+row.Lost)
			}
			if row.GoalDifference != row.GoalsFor-row.GoalsAgainst {
				t.Fatalf("team %s: goal difference out of sync: %+v", row.TeamID, row)
			}
			if row.Points != row.Won*3+row.Drawn {
				t.Fatalf("team %s: points out of sync: %+v", row.TeamID, row)
			}
		}
	})

	t.Run("scheduled and live matches contribute nothing", func(t *testing.T) {
		matches := []match.Match{
			{ID: "m1", TournamentID: "t1", HomeTeamID: "a", AwayTeamID: "b", Date: day, Status: match.StatusScheduled},
			{ID: "m2", TournamentID: "t1", HomeTeamID: "b", AwayTeamID: "c", Date: day, Status: match.StatusLive, HomeScore: intPtr(4), AwayScore: intPtr(0)},
		}

		for _, row := range BuildStandings(teams, matches) {
			if row.Played != 0 || row.Points != 0 || row.GoalsFor != 0 {
				t.Fatalf("team %s picked up stats from an unfinished match: %+v", row.TeamID, row)
			}
		}
	})

	t.Run("match with an unknown team is skipped", func(t *testing.T) {
		matches := []match.Match{
			finished("m1", "a", "ghost", 9, 0, day),
		}

		rows := BuildStandings(teams, matches)
		for _, row := range rows {
			if row.Played != 0 {
				t.Fatalf("team %s counted a match against an unknown side: %+v", row.TeamID, row)
			}
		}
	})

	t.Run("absent scores read as nil-nil draw", func(t *testing.T) {
		matches := []match.Match{
			{ID: "m1", TournamentID: "t1", HomeTeamID: "a", AwayTeamID: "b", Date: day, Status: match.StatusFinished},
		}

		rows := BuildStandings(teams, matches)
		byTeam := make(map[string]int, len(rows))
		for i, row := range rows {
			byTeam[row.TeamID] = i
		}
		for _, teamID := range []string{"a", "b"} {
			row := rows[byTeam[teamID]]
			if row.Played != 1 || row.Drawn != 1 || row.Points != 1 || row.GoalsFor != 0 {
				t.Fatalf("team %s: expected a 0-0 draw, got %+v", teamID, row)
			}
		}
	})

	t.Run("full ties keep input order", func(t *testing.T) {
		rows := BuildStandings(teams, nil)
		for i, teamID := range []string{"a", "b", "c"} {
			if rows[i].TeamID != teamID {
				t.Fatalf("tied teams reordered: got %s at position %d", rows[i].TeamID, i+1)
			}
		}
	})
}

func TestTeamForm(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)

	t.Run("most recent first", func(t *testing.T) {
		// Oldest first: a wins, loses away, then draws. The scheduled
		// match contributes nothing.
		matches := []match.Match{
			finished("m1", "a", "b", 2, 0, day),
			finished("m2", "c", "a", 3, 1, day.AddDate(0, 0, 7)),
			finished("m3", "a", "c", 1, 1, day.AddDate(0, 0, 14)),
			{ID: "m4", HomeTeamID: "a", AwayTeamID: "b", Date: day.AddDate(0, 0, 21), Status: match.StatusScheduled},
		}

		if got := TeamForm("a", matches); got != "DLW" {
			t.Fatalf("form: got %q, want %q", got, "DLW")
		}
	})

	t.Run("caps at five results", func(t *testing.T) {
		matches := make([]match.Match, 0, 7)
		for i := 0; i < 7; i++ {
			matches = append(matches, finished("m", "a", "b", 1, 0, day.AddDate(0, 0, i)))
		}

		if got := TeamForm("a", matches); got != "WWWWW" {
			t.Fatalf("form: got %q, want %q", got, "WWWWW")
		}
	})

	t.Run("uninvolved team has empty form", func(t *testing.T) {
		matches := []match.Match{finished("m1", "a", "b", 1, 0, day)}
		if got := TeamForm("c", matches); got != "" {
			t.Fatalf("form: got %q, want empty", got)
		}
	})
}
