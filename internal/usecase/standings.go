package usecase

import (
	"sort"

	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/standing"
	"github.com/ligasmart/ligasmart/internal/domain/team"
)

// FormLength caps how many recent results a form string carries.
const FormLength = 5

// BuildStandings folds finished matches into one table row per input team.
// Matches still scheduled or live contribute nothing. A finished match
// referencing a team outside the input set is skipped silently; absent
// scores read as zero. Rows are ranked by points, then goal difference,
// then goals scored, stable beyond that.
func BuildStandings(teams []team.Team, matches []match.Match) []standing.Standing {
	rows := make([]standing.Standing, 0, len(teams))
	index := make(map[string]int, len(teams))
	for _, item := range teams {
		index[item.ID] = len(rows)
		rows = append(rows, standing.Standing{
			TournamentID: item.TournamentID,
			TeamID:       item.ID,
		})
	}

	for _, m := range matches {
		if m.Status != match.StatusFinished {
			continue
		}
		homeIdx, homeOK := index[m.HomeTeamID]
		awayIdx, awayOK := index[m.AwayTeamID]
		if !homeOK || !awayOK {
			continue
		}

		home := &rows[homeIdx]
		away := &rows[awayIdx]
		homeScore, awayScore := m.Score()

		home.Played++
		away.Played++
		home.GoalsFor += homeScore
		home.GoalsAgainst += awayScore
		away.GoalsFor += awayScore
		away.GoalsAgainst += homeScore

		switch {
		case homeScore > awayScore:
			home.Won++
			home.Points += 3
			away.Lost++
		case awayScore > homeScore:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		}

		home.GoalDifference = home.GoalsFor - home.GoalsAgainst
		away.GoalDifference = away.GoalsFor - away.GoalsAgainst
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows
}

// TeamForm returns up to FormLength single-character results (W/D/L) for
// the team's finished matches, most recent first by match date.
func TeamForm(teamID string, matches []match.Match) string {
	recent := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == match.StatusFinished && m.Involves(teamID) {
			recent = append(recent, m)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > FormLength {
		recent = recent[:FormLength]
	}

	form := make([]byte, 0, len(recent))
	for _, m := range recent {
		homeScore, awayScore := m.Score()
		own, opp := homeScore, awayScore
		if m.AwayTeamID == teamID {
			own, opp = awayScore, homeScore
		}
		switch {
		case own > opp:
			form = append(form, 'W')
		case own < opp:
			form = append(form, 'L')
		default:
			form = append(form, 'D')
		}
	}

	return string(form)
}
