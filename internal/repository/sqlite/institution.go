package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/repository"
)

// InstitutionDB implements repository.InstitutionRepository.
type InstitutionDB struct {
	conn *sql.DB
}

var _ repository.InstitutionRepository = (*InstitutionDB)(nil)

// Institutions returns the catalog repository view of the database.
func (db *DB) Institutions() *InstitutionDB {
	return &InstitutionDB{conn: db.conn}
}

// Create inserts a catalog record and fills in its ID.
// Only the startup seeder writes institutions.
func (r *InstitutionDB) Create(ctx context.Context, inst *model.Institution) error {
	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO institutions (name, category, latitude, longitude, details, website, ranking, courses)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inst.Name,
		inst.Category,
		inst.Latitude,
		inst.Longitude,
		inst.Details,
		inst.Website,
		inst.Ranking,
		inst.Courses,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting institution %q: %w", inst.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading institution insert id: %w", err)
	}
	inst.ID = id

	return nil
}

// GetAll returns every catalog record.
//
// There is deliberately no ORDER BY: for an append-only table this query
// walks rowids, which is insertion order — the order the seeder wrote.
// NULL columns scan to Go zero values so the API gets a plain field set.
func (r *InstitutionDB) GetAll(ctx context.Context) ([]model.Institution, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, name, category, latitude, longitude, details, website, ranking, courses
		 FROM institutions`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing institutions: %w", err)
	}
	defer rows.Close()

	institutions := []model.Institution{}
	for rows.Next() {
		var (
			inst      model.Institution
			latitude  sql.NullFloat64
			longitude sql.NullFloat64
			details   sql.NullString
			website   sql.NullString
			ranking   sql.NullString
			courses   sql.NullString
		)
		if err := rows.Scan(
			&inst.ID,
			&inst.Name,
			&inst.Category,
			&latitude,
			&longitude,
			&details,
			&website,
			&ranking,
			&courses,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning institution: %w", err)
		}
		inst.Latitude = latitude.Float64
		inst.Longitude = longitude.Float64
		inst.Details = details.String
		inst.Website = website.String
		inst.Ranking = ranking.String
		inst.Courses = courses.String
		institutions = append(institutions, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating institutions: %w", err)
	}

	return institutions, nil
}

// Count returns the total number of catalog records.
func (r *InstitutionDB) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM institutions`,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: counting institutions: %w", err)
	}
	return n, nil
}
