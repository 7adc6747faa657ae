package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

// PostgresCoreValuesRepo reads B_Core_Value_Global.
type PostgresCoreValuesRepo struct {
	db *sql.DB
}

func NewPostgresCoreValuesRepo(db *sql.DB) *PostgresCoreValuesRepo {
	return &PostgresCoreValuesRepo{db: db}
}

var _ CoreValuesRepo = (*PostgresCoreValuesRepo)(nil)

func (r *PostgresCoreValuesRepo) ListActive(ctx context.Context) ([]domain.CoreValue, error) {
	query := `
		SELECT id, name, description, is_active, sort_order
		FROM "B_Core_Value_Global"
		WHERE is_active = true
		ORDER BY sort_order
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list core values: %w", err)
	}
	defer rows.Close()

	var values []domain.CoreValue
	for rows.Next() {
		var cv domain.CoreValue
		var description sql.NullString
		if err := rows.Scan(&cv.ID, &cv.Name, &description, &cv.IsActive, &cv.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan core value: %w", err)
		}
		if description.Valid {
			cv.Description = &description.String
		}
		values = append(values, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate core values: %w", err)
	}

	return values, nil
}
