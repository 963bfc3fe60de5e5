package testutils

import (
	"context"
	"fmt"
	"log"

	"github.com/mww/teams_api/containers"
	"github.com/mww/teams_api/db"
	"github.com/mww/teams_api/model"
)

var (
	Seahawks = model.TeamFields{TeamName: "Seahawks", League: "NFL"}
	Mariners = model.TeamFields{TeamName: "Mariners", League: "MLB"}
	Kraken   = model.TeamFields{TeamName: "Kraken", League: "NHL"}
	Storm    = model.TeamFields{TeamName: "Storm", League: "WNBA"}
	Sounders = model.TeamFields{TeamName: "Sounders", League: "MLS"}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	// The teams inserted by InsertTestTeams, in insertion order.
	Teams []model.Team
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	ctx := context.Background()

	if err := db.Migrate(ctx, container.ConnectionString()); err != nil {
		container.Shutdown()
		log.Fatalf("error migrating db in test container: %v", err)
	}

	d, err := db.New(ctx, container.ConnectionString())
	if err != nil {
		container.Shutdown()
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	teams, err := InsertTestTeams(d)
	if err != nil {
		container.Shutdown()
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        d,
		Teams:     teams,
	}
}

func (db *TestDB) Shutdown() {
	db.DB.Close()
	db.container.Shutdown()
}

func InsertTestTeams(d db.DB) ([]model.Team, error) {
	ctx := context.Background()
	results := make([]model.Team, 0, 5)
	for _, f := range []model.TeamFields{Seahawks, Mariners, Kraken, Storm, Sounders} {
		t, err := d.AddTeam(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("error inserting test team %s: %w", f.TeamName, err)
		}
		results = append(results, *t)
	}
	return results, nil
}
