package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/mww/teams_api/model"
)

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	return teams, nil
}

func (c *controller) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	t, err := c.db.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up team %d: %w", id, err)
	}
	return t, nil
}

func (c *controller) CreateTeam(ctx context.Context, fields model.TeamFields) (*model.Team, error) {
	t, err := c.db.AddTeam(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("error creating team: %w", err)
	}
	log.Printf("created team %d (%s, %s)", t.ID, t.TeamName, t.League)
	return t, nil
}

func (c *controller) UpdateTeam(ctx context.Context, id int32, update model.TeamUpdate) (*model.Team, error) {
	// Nothing to change, but the caller still needs a 404 for a missing team.
	if update.IsEmpty() {
		return c.GetTeam(ctx, id)
	}

	t, err := c.db.UpdateTeam(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("error updating team %d: %w", id, err)
	}
	return t, nil
}

func (c *controller) DeleteTeam(ctx context.Context, id int32) error {
	if err := c.db.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("error deleting team %d: %w", id, err)
	}
	log.Printf("deleted team %d", id)
	return nil
}
