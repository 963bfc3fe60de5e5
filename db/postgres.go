package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/teams_api/model"
)

var (
	ErrTeamNotFound error = errors.New("team not found")
)

func New(ctx context.Context, connString string) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &postgresDB{pool: pool}, nil
}

type postgresDB struct {
	pool *pgxpool.Pool
}

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT id, team_name, league FROM teams ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 8)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		results = append(results, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	const query = `SELECT id, team_name, league FROM teams WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %d: %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) AddTeam(ctx context.Context, fields model.TeamFields) (*model.Team, error) {
	const insert = `INSERT INTO teams (team_name, league)
		VALUES (@teamName, @league)
		RETURNING id, team_name, league`

	args := pgx.NamedArgs{
		"teamName": fields.TeamName,
		"league":   fields.League,
	}
	t, err := scanTeam(db.pool.QueryRow(ctx, insert, args))
	if err != nil {
		return nil, fmt.Errorf("error inserting team (%s): %w", fields.TeamName, err)
	}
	return t, nil
}

func (db *postgresDB) UpdateTeam(ctx context.Context, id int32, update model.TeamUpdate) (*model.Team, error) {
	if update.IsEmpty() {
		return db.GetTeam(ctx, id)
	}

	// A NULL argument keeps the current column value.
	const query = `UPDATE teams
		SET team_name=COALESCE(@teamName, team_name),
			league=COALESCE(@league, league)
		WHERE id=@id
		RETURNING id, team_name, league`

	args := pgx.NamedArgs{
		"id":       id,
		"teamName": update.TeamName,
		"league":   update.League,
	}
	t, err := scanTeam(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error updating team (%d): %w", id, err)
	}
	return t, nil
}

func (db *postgresDB) DeleteTeam(ctx context.Context, id int32) error {
	const query = `DELETE FROM teams WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting team (%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (db *postgresDB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *postgresDB) Close() {
	db.pool.Close()
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	if err := row.Scan(&result.ID, &result.TeamName, &result.League); err != nil {
		return nil, err
	}
	return &result, nil
}
