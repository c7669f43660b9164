package tournament

import (
	"fmt"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Format is the side count of the competition (5, 7 or 11 a side).
const (
	FormatFive   = "5"
	FormatSeven  = "7"
	FormatEleven = "11"
)

// Tournament is one competition with an enrolled set of teams.
type Tournament struct {
	ID          string
	Name        string
	Format      string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	OrganizerID string
	Rules       string
	TeamIDs     []string
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	switch t.Format {
	case FormatFive, FormatSeven, FormatEleven:
	default:
		return fmt.Errorf("invalid tournament format: %s", t.Format)
	}
	switch t.Status {
	case StatusUpcoming, StatusActive, StatusCompleted:
	default:
		return fmt.Errorf("invalid tournament status: %s", t.Status)
	}
	if !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("tournament end date precedes start date")
	}

	return nil
}

// HasTeam reports whether the team is enrolled in this tournament.
func (t Tournament) HasTeam(teamID string) bool {
	for _, id := range t.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
