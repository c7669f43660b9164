package standing

// Standing is a league table row for one team, derived from finished
// matches and recomputed on demand. Invariants:
// Played == Won+Drawn+Lost and GoalDifference == GoalsFor-GoalsAgainst.
type Standing struct {
	TournamentID   string
	TeamID         string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}

// Strength is the predictor input score for a team.
func (s Standing) Strength() float64 {
	return float64(s.Points) + float64(s.GoalDifference)*0.5
}
