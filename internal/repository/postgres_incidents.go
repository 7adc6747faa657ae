package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

// PostgresIncidentsRepo reads B_Incident.
type PostgresIncidentsRepo struct {
	db *sql.DB
}

func NewPostgresIncidentsRepo(db *sql.DB) *PostgresIncidentsRepo {
	return &PostgresIncidentsRepo{db: db}
}

var _ IncidentsRepo = (*PostgresIncidentsRepo)(nil)

func (r *PostgresIncidentsRepo) Get(ctx context.Context, incidentID int64) (*domain.Incident, error) {
	query := `
		SELECT COALESCE(title, ''), COALESCE(description, ''),
		       COALESCE(category, ''), COALESCE(severity, '')
		FROM "B_Incident"
		WHERE id = $1
	`

	var incident domain.Incident
	err := r.db.QueryRowContext(ctx, query, incidentID).Scan(
		&incident.Title,
		&incident.Description,
		&incident.Category,
		&incident.Severity,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("incident %d not found: %w", incidentID, err)
		}
		return nil, fmt.Errorf("failed to get incident %d: %w", incidentID, err)
	}

	return &incident, nil
}

// GetPillars reads the 4-pillars content already saved on the incident,
// notably violated_core_values the user picked in the chat flow.
func (r *PostgresIncidentsRepo) GetPillars(ctx context.Context, incidentID int64) (*domain.IncidentPillars, error) {
	query := `
		SELECT why_it_matters, root_cause, core_value_analysis,
		       COALESCE(violated_core_values, '[]'::jsonb)::text,
		       prevention_plan
		FROM "B_Incident"
		WHERE id = $1
	`

	var pillars domain.IncidentPillars
	var whyItMatters, rootCause, analysis, preventionPlan sql.NullString
	var violatedRaw string
	err := r.db.QueryRowContext(ctx, query, incidentID).Scan(
		&whyItMatters, &rootCause, &analysis, &violatedRaw, &preventionPlan,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("incident %d not found: %w", incidentID, err)
		}
		return nil, fmt.Errorf("failed to get incident pillars %d: %w", incidentID, err)
	}

	if whyItMatters.Valid {
		pillars.WhyItMatters = &whyItMatters.String
	}
	if rootCause.Valid {
		pillars.RootCause = &rootCause.String
	}
	if analysis.Valid {
		pillars.CoreValueAnalysis = &analysis.String
	}
	if preventionPlan.Valid {
		pillars.PreventionPlan = &preventionPlan.String
	}

	pillars.ViolatedCoreValues = []string{}
	if violatedRaw != "" {
		if err := json.Unmarshal([]byte(violatedRaw), &pillars.ViolatedCoreValues); err != nil {
			return nil, fmt.Errorf("failed to decode violated_core_values for incident %d: %w", incidentID, err)
		}
	}

	return &pillars, nil
}
