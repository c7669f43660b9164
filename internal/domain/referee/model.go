package referee

import "fmt"

// Referee officiates matches.
type Referee struct {
	ID              string
	Name            string
	License         string
	ExperienceYears int
	Email           string
	Phone           string
	Photo           string // data URL, optional
}

func (r Referee) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("referee id is required")
	}
	if r.Name == "" {
		return fmt.Errorf("referee name is required")
	}
	if r.License == "" {
		return fmt.Errorf("referee license is required")
	}
	if r.Email == "" {
		return fmt.Errorf("referee email is required")
	}
	if r.ExperienceYears < 0 {
		return fmt.Errorf("referee experience must not be negative")
	}

	return nil
}
