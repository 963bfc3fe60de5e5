package model

import "fmt"

// MaxNameLength is the longest team_name or league the teams table accepts.
const MaxNameLength = 40

type Team struct {
	ID       int32
	TeamName string
	League   string
}

func (t *Team) String() string {
	return fmt.Sprintf("<Team %d>", t.ID)
}

// TeamFields holds the validated input used to create a new team.
type TeamFields struct {
	TeamName string
	League   string
}

// TeamUpdate lists the fields a team update is allowed to change. A nil
// field was not provided and is left untouched.
type TeamUpdate struct {
	TeamName *string
	League   *string
}

func (u TeamUpdate) IsEmpty() bool {
	return u.TeamName == nil && u.League == nil
}

// Apply returns a copy of t with the provided fields of u set.
func (u TeamUpdate) Apply(t Team) Team {
	if u.TeamName != nil {
		t.TeamName = *u.TeamName
	}
	if u.League != nil {
		t.League = *u.League
	}
	return t
}
