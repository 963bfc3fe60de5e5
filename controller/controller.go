package controller

import (
	"context"

	"github.com/mww/teams_api/db"
	"github.com/mww/teams_api/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	CreateTeam(ctx context.Context, fields model.TeamFields) (*model.Team, error)
	// Applies the fields that are set in update and returns the stored team.
	// Returns db.ErrTeamNotFound if the team does not exist.
	UpdateTeam(ctx context.Context, id int32, update model.TeamUpdate) (*model.Team, error)
	DeleteTeam(ctx context.Context, id int32) error

	// Returns an error if the database can't be reached.
	Ping(ctx context.Context) error
}

type controller struct {
	db db.DB
}

func New(db db.DB) (C, error) {
	c := &controller{
		db: db,
	}
	return c, nil
}

func (c *controller) Ping(ctx context.Context) error {
	return c.db.Ping(ctx)
}
