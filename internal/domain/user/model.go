package user

import (
	"fmt"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleReferee = "referee"
	RoleCoach   = "coach"
	RoleFan     = "fan"
)

var roles = map[string]struct{}{
	RoleAdmin:   {},
	RoleReferee: {},
	RoleCoach:   {},
	RoleFan:     {},
}

// User is an account in the local user collection. PasswordHash is a
// bcrypt hash; the plain password is never stored.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash string
	Photo        string // data URL, optional
	CreatedAt    time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if _, ok := roles[u.Role]; !ok {
		return fmt.Errorf("invalid user role: %s", u.Role)
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("user password hash is required")
	}

	return nil
}

// ValidRole reports whether the role name is one of the defined roles.
func ValidRole(role string) bool {
	_, ok := roles[role]
	return ok
}

// Session is the single current authenticated identity. It carries a copy
// of the user's public fields so consumers never touch the password hash.
type Session struct {
	UserID    string
	Email     string
	Name      string
	Role      string
	Photo     string
	StartedAt time.Time
}
