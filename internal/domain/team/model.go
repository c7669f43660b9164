package team

import (
	"fmt"
	"time"
)

// Team is a club enrolled in one tournament.
type Team struct {
	ID           string
	TournamentID string
	Name         string
	Logo         string // data URL, optional
	FoundedDate  *time.Time
	CoachID      string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.TournamentID == "" {
		return fmt.Errorf("team tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
