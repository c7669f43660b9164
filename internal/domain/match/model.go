package match

import (
	"fmt"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinished  = "finished"
)

var statusRank = map[string]int{
	StatusScheduled: 0,
	StatusLive:      1,
	StatusFinished:  2,
}

// Match is one fixture between two teams of the same tournament.
// Scores are set if and only if the match has left the scheduled state.
type Match struct {
	ID           string
	TournamentID string
	HomeTeamID   string
	AwayTeamID   string
	Date         time.Time
	Time         string // kickoff, "15:04"
	Venue        string
	Status       string
	HomeScore    *int
	AwayScore    *int
	RefereeID    string
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TournamentID == "" {
		return fmt.Errorf("match tournament id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match requires both team ids")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match teams must differ")
	}
	if _, ok := statusRank[m.Status]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	if m.Status == StatusScheduled && (m.HomeScore != nil || m.AwayScore != nil) {
		return fmt.Errorf("scheduled match must not carry scores")
	}
	if m.Status != StatusScheduled && (m.HomeScore == nil || m.AwayScore == nil) {
		return fmt.Errorf("%s match must carry both scores", m.Status)
	}

	return nil
}

// CanTransition reports whether the status change moves forward through
// scheduled -> live -> finished. Standing still is allowed, going back is not.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// Involves reports whether the team plays in this match, home or away.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Score returns the recorded scores, reading absent values as zero.
func (m Match) Score() (home, away int) {
	if m.HomeScore != nil {
		home = *m.HomeScore
	}
	if m.AwayScore != nil {
		away = *m.AwayScore
	}
	return home, away
}
