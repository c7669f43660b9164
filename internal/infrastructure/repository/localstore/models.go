package localstore

import (
	"time"

	"github.com/ligasmart/ligasmart/internal/domain/coach"
	"github.com/ligasmart/ligasmart/internal/domain/match"
	"github.com/ligasmart/ligasmart/internal/domain/player"
	"github.com/ligasmart/ligasmart/internal/domain/referee"
	"github.com/ligasmart/ligasmart/internal/domain/standing"
	"github.com/ligasmart/ligasmart/internal/domain/team"
	"github.com/ligasmart/ligasmart/internal/domain/tournament"
	"github.com/ligasmart/ligasmart/internal/domain/user"
)

// Record types pin the JSON shape of each stored collection. Domain
// structs stay tag-free; all (de)serialization goes through these.

type tournamentRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Format      string     `json:"format"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Status      string     `json:"status"`
	OrganizerID string     `json:"organizerId"`
	Rules       string     `json:"rules,omitempty"`
	TeamIDs     []string   `json:"teamIds"`
}

func toTournamentRecord(item tournament.Tournament) tournamentRecord {
	rec := tournamentRecord{
		ID:          item.ID,
		Name:        item.Name,
		Format:      item.Format,
		StartDate:   item.StartDate,
		Status:      item.Status,
		OrganizerID: item.OrganizerID,
		Rules:       item.Rules,
		TeamIDs:     item.TeamIDs,
	}
	if !item.EndDate.IsZero() {
		end := item.EndDate
		rec.EndDate = &end
	}
	return rec
}

func (r tournamentRecord) toDomain() tournament.Tournament {
	item := tournament.Tournament{
		ID:          r.ID,
		Name:        r.Name,
		Format:      r.Format,
		StartDate:   r.StartDate,
		Status:      r.Status,
		OrganizerID: r.OrganizerID,
		Rules:       r.Rules,
		TeamIDs:     r.TeamIDs,
	}
	if r.EndDate != nil {
		item.EndDate = *r.EndDate
	}
	return item
}

type teamRecord struct {
	ID           string     `json:"id"`
	TournamentID string     `json:"tournamentId"`
	Name         string     `json:"name"`
	Logo         string     `json:"logo,omitempty"`
	FoundedDate  *time.Time `json:"foundedDate,omitempty"`
	CoachID      string     `json:"coachId,omitempty"`
}

func toTeamRecord(item team.Team) teamRecord {
	return teamRecord{
		ID:           item.ID,
		TournamentID: item.TournamentID,
		Name:         item.Name,
		Logo:         item.Logo,
		FoundedDate:  item.FoundedDate,
		CoachID:      item.CoachID,
	}
}

func (r teamRecord) toDomain() team.Team {
	return team.Team{
		ID:           r.ID,
		TournamentID: r.TournamentID,
		Name:         r.Name,
		Logo:         r.Logo,
		FoundedDate:  r.FoundedDate,
		CoachID:      r.CoachID,
	}
}

type playerRecord struct {
	ID               string     `json:"id"`
	TeamID           string     `json:"teamId,omitempty"`
	Name             string     `json:"name"`
	Position         string     `json:"position"`
	Number           int        `json:"number"`
	Photo            string     `json:"photo,omitempty"`
	BirthDate        *time.Time `json:"birthDate,omitempty"`
	Nationality      string     `json:"nationality,omitempty"`
	HeightCM         int        `json:"height,omitempty"`
	WeightKG         int        `json:"weight,omitempty"`
	DominantFoot     string     `json:"dominantFoot,omitempty"`
	Email            string     `json:"email,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	EmergencyContact string     `json:"emergencyContact,omitempty"`
	BloodType        string     `json:"bloodType,omitempty"`
	MedicalNotes     string     `json:"medicalNotes,omitempty"`
}

func toPlayerRecord(item player.Player) playerRecord {
	return playerRecord{
		ID:               item.ID,
		TeamID:           item.TeamID,
		Name:             item.Name,
		Position:         item.Position,
		Number:           item.Number,
		Photo:            item.Photo,
		BirthDate:        item.BirthDate,
		Nationality:      item.Nationality,
		HeightCM:         item.HeightCM,
		WeightKG:         item.WeightKG,
		DominantFoot:     item.DominantFoot,
		Email:            item.Email,
		Phone:            item.Phone,
		EmergencyContact: item.EmergencyContact,
		BloodType:        item.BloodType,
		MedicalNotes:     item.MedicalNotes,
	}
}

func (r playerRecord) toDomain() player.Player {
	return player.Player{
		ID:               r.ID,
		TeamID:           r.TeamID,
		Name:             r.Name,
		Position:         r.Position,
		Number:           r.Number,
		Photo:            r.Photo,
		BirthDate:        r.BirthDate,
		Nationality:      r.Nationality,
		HeightCM:         r.HeightCM,
		WeightKG:         r.WeightKG,
		DominantFoot:     r.DominantFoot,
		Email:            r.Email,
		Phone:            r.Phone,
		EmergencyContact: r.EmergencyContact,
		BloodType:        r.BloodType,
		MedicalNotes:     r.MedicalNotes,
	}
}

type matchRecord struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	HomeTeamID   string    `json:"homeTeamId"`
	AwayTeamID   string    `json:"awayTeamId"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Venue        string    `json:"venue"`
	Status       string    `json:"status"`
	HomeScore    *int      `json:"homeScore,omitempty"`
	AwayScore    *int      `json:"awayScore,omitempty"`
	RefereeID    string    `json:"refereeId,omitempty"`
}

func toMatchRecord(item match.Match) matchRecord {
	return matchRecord{
		ID:           item.ID,
		TournamentID: item.TournamentID,
		HomeTeamID:   item.HomeTeamID,
		AwayTeamID:   item.AwayTeamID,
		Date:         item.Date,
		Time:         item.Time,
		Venue:        item.Venue,
		Status:       item.Status,
		HomeScore:    item.HomeScore,
		AwayScore:    item.AwayScore,
		RefereeID:    item.RefereeID,
	}
}

func (r matchRecord) toDomain() match.Match {
	return match.Match{
		ID:           r.ID,
		TournamentID: r.TournamentID,
		HomeTeamID:   r.HomeTeamID,
		AwayTeamID:   r.AwayTeamID,
		Date:         r.Date,
		Time:         r.Time,
		Venue:        r.Venue,
		Status:       r.Status,
		HomeScore:    r.HomeScore,
		AwayScore:    r.AwayScore,
		RefereeID:    r.RefereeID,
	}
}

type eventRecord struct {
	ID          string `json:"id"`
	MatchID     string `json:"matchId"`
	Type        string `json:"type"`
	PlayerID    string `json:"playerId"`
	TeamID      string `json:"teamId"`
	Minute      int    `json:"minute"`
	Description string `json:"description,omitempty"`
}

func toEventRecord(item match.Event) eventRecord {
	return eventRecord{
		ID:          item.ID,
		MatchID:     item.MatchID,
		Type:        item.Type,
		PlayerID:    item.PlayerID,
		TeamID:      item.TeamID,
		Minute:      item.Minute,
		Description: item.Description,
	}
}

func (r eventRecord) toDomain() match.Event {
	return match.Event{
		ID:          r.ID,
		MatchID:     r.MatchID,
		Type:        r.Type,
		PlayerID:    r.PlayerID,
		TeamID:      r.TeamID,
		Minute:      r.Minute,
		Description: r.Description,
	}
}

type standingRecord struct {
	TeamID         string `json:"teamId"`
	Position       int    `json:"position"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Form           string `json:"form,omitempty"`
}

func toStandingRecord(item standing.Standing) standingRecord {
	return standingRecord{
		TeamID:         item.TeamID,
		Position:       item.Position,
		Played:         item.Played,
		Won:            item.Won,
		Drawn:          item.Drawn,
		Lost:           item.Lost,
		GoalsFor:       item.GoalsFor,
		GoalsAgainst:   item.GoalsAgainst,
		GoalDifference: item.GoalDifference,
		Points:         item.Points,
		Form:           item.Form,
	}
}

func (r standingRecord) toDomain(tournamentID string) standing.Standing {
	return standing.Standing{
		TournamentID:   tournamentID,
		TeamID:         r.TeamID,
		Position:       r.Position,
		Played:         r.Played,
		Won:            r.Won,
		Drawn:          r.Drawn,
		Lost:           r.Lost,
		GoalsFor:       r.GoalsFor,
		GoalsAgainst:   r.GoalsAgainst,
		GoalDifference: r.GoalDifference,
		Points:         r.Points,
		Form:           r.Form,
	}
}

type refereeRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	License    string `json:"license"`
	Experience int    `json:"experience"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Photo      string `json:"photo,omitempty"`
}

func toRefereeRecord(item referee.Referee) refereeRecord {
	return refereeRecord{
		ID:         item.ID,
		Name:       item.Name,
		License:    item.License,
		Experience: item.ExperienceYears,
		Email:      item.Email,
		Phone:      item.Phone,
		Photo:      item.Photo,
	}
}

func (r refereeRecord) toDomain() referee.Referee {
	return referee.Referee{
		ID:              r.ID,
		Name:            r.Name,
		License:         r.License,
		ExperienceYears: r.Experience,
		Email:           r.Email,
		Phone:           r.Phone,
		Photo:           r.Photo,
	}
}

type coachRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	License    string `json:"license,omitempty"`
	Experience int    `json:"experience"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Photo      string `json:"photo,omitempty"`
	Specialty  string `json:"specialty,omitempty"`
}

func toCoachRecord(item coach.Coach) coachRecord {
	return coachRecord{
		ID:         item.ID,
		Name:       item.Name,
		License:    item.License,
		Experience: item.ExperienceYears,
		Email:      item.Email,
		Phone:      item.Phone,
		Photo:      item.Photo,
		Specialty:  item.Specialty,
	}
}

func (r coachRecord) toDomain() coach.Coach {
	return coach.Coach{
		ID:              r.ID,
		Name:            r.Name,
		License:         r.License,
		ExperienceYears: r.Experience,
		Email:           r.Email,
		Phone:           r.Phone,
		Photo:           r.Photo,
		Specialty:       r.Specialty,
	}
}

type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"passwordHash"`
	Photo        string    `json:"photo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toUserRecord(item user.User) userRecord {
	return userRecord{
		ID:           item.ID,
		Email:        item.Email,
		Name:         item.Name,
		Role:         item.Role,
		PasswordHash: item.PasswordHash,
		Photo:        item.Photo,
		CreatedAt:    item.CreatedAt,
	}
}

func (r userRecord) toDomain() user.User {
	return user.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Role:         r.Role,
		PasswordHash: r.PasswordHash,
		Photo:        r.Photo,
		CreatedAt:    r.CreatedAt,
	}
}

type sessionRecord struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Photo     string    `json:"photo,omitempty"`
	StartedAt time.Time `json:"startedAt"`
}

func toSessionRecord(item user.Session) sessionRecord {
	return sessionRecord{
		UserID:    item.UserID,
		Email:     item.Email,
		Name:      item.Name,
		Role:      item.Role,
		Photo:     item.Photo,
		StartedAt: item.StartedAt,
	}
}

func (r sessionRecord) toDomain() user.Session {
	return user.Session{
		UserID:    r.UserID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      r.Role,
		Photo:     r.Photo,
		StartedAt: r.StartedAt,
	}
}
