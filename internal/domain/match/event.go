package match

import "fmt"

const (
	EventGoal         = "goal"
	EventYellowCard   = "yellow_card"
	EventRedCard      = "red_card"
	EventSubstitution = "substitution"
)

var eventTypes = map[string]struct{}{
	EventGoal:         {},
	EventYellowCard:   {},
	EventRedCard:      {},
	EventSubstitution: {},
}

// Event is one recorded in-match incident. Events are created only while
// the match is live and are immutable afterwards. Minutes run 1-120 by
// convention; only positivity is enforced.
type Event struct {
	ID          string
	MatchID     string
	Type        string
	PlayerID    string
	TeamID      string
	Minute      int
	Description string
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.MatchID == "" {
		return fmt.Errorf("event match id is required")
	}
	if _, ok := eventTypes[e.Type]; !ok {
		return fmt.Errorf("invalid event type: %s", e.Type)
	}
	if e.PlayerID == "" {
		return fmt.Errorf("event player id is required")
	}
	if e.TeamID == "" {
		return fmt.Errorf("event team id is required")
	}
	if e.Minute <= 0 {
		return fmt.Errorf("event minute must be positive")
	}

	return nil
}
