package mockdb

import (
	"context"

	"github.com/mww/teams_api/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) AddTeam(ctx context.Context, fields model.TeamFields) (*model.Team, error) {
	args := db.Called(ctx, fields)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) UpdateTeam(ctx context.Context, id int32, update model.TeamUpdate) (*model.Team, error) {
	args := db.Called(ctx, id, update)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) DeleteTeam(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) Ping(ctx context.Context) error {
	args := db.Called(ctx)
	return args.Error(0)
}

func (db *DB) Close() {
	db.Called()
}
