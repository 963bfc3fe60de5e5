package mockcontroller

import (
	"context"

	"github.com/mww/teams_api/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *C) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := c.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}

	return t, args.Error(1)
}

func (c *C) CreateTeam(ctx context.Context, fields model.TeamFields) (*model.Team, error) {
	args := c.Called(ctx, fields)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}

	return t, args.Error(1)
}

func (c *C) UpdateTeam(ctx context.Context, id int32, update model.TeamUpdate) (*model.Team, error) {
	args := c.Called(ctx, id, update)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}

	return t, args.Error(1)
}

func (c *C) DeleteTeam(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) Ping(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}
