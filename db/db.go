package db

import (
	"context"

	"github.com/mww/teams_api/model"
)

type DB interface {
	// Lists every team. Callers should not depend on the order of the results.
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	// Inserts a new team, the returned team has the id assigned by the database.
	AddTeam(ctx context.Context, fields model.TeamFields) (*model.Team, error)
	// Applies only the fields set in update. Returns ErrTeamNotFound if there is
	// no team with the given id.
	UpdateTeam(ctx context.Context, id int32, update model.TeamUpdate) (*model.Team, error)
	DeleteTeam(ctx context.Context, id int32) error

	Ping(ctx context.Context) error
	Close()
}
