package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/infrastructure/database/postgres"
	"github.com/posbridge/brink-insights-api/internal/domain"
)

const locationsTable = "locations l"

type LocationRepository interface {
	GetByToken(token string) (*domain.Location, error)
	ListActive() ([]*domain.Location, error)
}

type locationRepository struct {
	conn *postgres.Connection
}

func NewLocationRepository(conn *postgres.Connection) LocationRepository {
	return &locationRepository{
		conn: conn,
	}
}

func (r *locationRepository) GetByToken(token string) (*domain.Location, error) {
	locationSQL, locationArgs, err := squirrel.
		Select("l.token, l.location_id, l.name, l.timezone, l.state, l.active").
		From(locationsTable).
		Where(squirrel.Eq{"l.token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(locationSQL, locationArgs...)

	loc, err := r.deserializeLocation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying location by token")
	}

	return loc, nil
}

func (r *locationRepository) ListActive() ([]*domain.Location, error) {
	locationsSQL, locationsArgs, err := squirrel.
		Select("l.token, l.location_id, l.name, l.timezone, l.state, l.active").
		From(locationsTable).
		Where(squirrel.Eq{"l.active": true}).
		OrderBy("l.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(locationsSQL, locationsArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "listing active locations")
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		loc := &domain.Location{}
		if err := rows.Scan(
			&loc.Token,
			&loc.LocationID,
			&loc.Name,
			&loc.Timezone,
			&loc.State,
			&loc.Active,
		); err != nil {
			return nil, errors.Wrap(err, "scanning location row")
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

func (r *locationRepository) deserializeLocation(row *sql.Row) (*domain.Location, error) {
	loc := &domain.Location{}

	if err := row.Scan(
		&loc.Token,
		&loc.LocationID,
		&loc.Name,
		&loc.Timezone,
		&loc.State,
		&loc.Active,
	); err != nil {
		return nil, err
	}

	return loc, nil
}
