package player

import (
	"fmt"
	"time"
)

const (
	FootLeft  = "left"
	FootRight = "right"
	FootBoth  = "both"
)

// Player is a registered athlete. TeamID may be empty: players keep an
// independent lifecycle and can exist unassigned to any team.
type Player struct {
	ID       string
	TeamID   string
	Name     string
	Position string
	Number   int

	Photo            string // data URL, optional
	BirthDate        *time.Time
	Nationality      string
	HeightCM         int
	WeightKG         int
	DominantFoot     string
	Email            string
	Phone            string
	EmergencyContact string
	BloodType        string
	MedicalNotes     string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Position == "" {
		return fmt.Errorf("player position is required")
	}
	if p.Number <= 0 {
		return fmt.Errorf("player squad number must be positive")
	}
	switch p.DominantFoot {
	case "", FootLeft, FootRight, FootBoth:
	default:
		return fmt.Errorf("invalid dominant foot: %s", p.DominantFoot)
	}

	return nil
}

// Assigned reports whether the player currently belongs to a team.
func (p Player) Assigned() bool {
	return p.TeamID != ""
}
