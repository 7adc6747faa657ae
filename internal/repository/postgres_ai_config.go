package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Config keys in B_AI_Config.
const (
	ConfigKeyCoachPrompt       = "incident_coach_prompt"
	ConfigKeySummaryPrompt     = "shift_summary_prompt"
	ConfigKeySummaryDataSource = "shift_summary_data_sources"
)

// PostgresAIConfigRepo reads B_AI_Config rows.
type PostgresAIConfigRepo struct {
	db *sql.DB
}

func NewPostgresAIConfigRepo(db *sql.DB) *PostgresAIConfigRepo {
	return &PostgresAIConfigRepo{db: db}
}

var _ AIConfigRepo = (*PostgresAIConfigRepo)(nil)

func (r *PostgresAIConfigRepo) GetValue(ctx context.Context, key string) (string, error) {
	query := `
		SELECT config_value
		FROM "B_AI_Config"
		WHERE config_key = $1 AND is_active = true
		LIMIT 1
	`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			// absence is normal: callers use their default
			return "", nil
		}
		return "", fmt.Errorf("failed to get ai config %q: %w", key, err)
	}
	return value, nil
}
