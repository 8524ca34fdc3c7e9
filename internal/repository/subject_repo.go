package repository

import (
	"context"

	"github.com/community-content-api/internal/database"
)

// subjectRepo is the concrete implementation of SubjectRepository
type subjectRepo struct {
	db *database.DB
}

// NewSubjectRepo creates a new subject repository
func NewSubjectRepo(db *database.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

// GetAllNames returns the allowed subject names, seeded by migration
func (r *subjectRepo) GetAllNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM subjects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
