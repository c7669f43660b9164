package coach

import "fmt"

// Coach trains one or more teams.
type Coach struct {
	ID              string
	Name            string
	License         string
	ExperienceYears int
	Email           string
	Phone           string
	Photo           string // data URL, optional
	Specialty       string
}

func (c Coach) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("coach id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("coach name is required")
	}
	if c.Email == "" {
		return fmt.Errorf("coach email is required")
	}
	if c.ExperienceYears < 0 {
		return fmt.Errorf("coach experience must not be negative")
	}

	return nil
}
