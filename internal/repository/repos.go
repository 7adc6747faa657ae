package repository

import (
	"context"
	"time"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

// AIConfigRepo reads admin-editable AI settings (prompts, data-source
// toggles) from B_AI_Config. A missing key is not an error: callers fall
// back to compiled-in defaults.
type AIConfigRepo interface {
	// GetValue returns the active config value for key, or "" when absent.
	GetValue(ctx context.Context, key string) (string, error)
}

// CoreValuesRepo reads the organization's core values list.
type CoreValuesRepo interface {
	ListActive(ctx context.Context) ([]domain.CoreValue, error)
}

// IncidentsRepo reads incident rows for the coaching flows.
type IncidentsRepo interface {
	Get(ctx context.Context, incidentID int64) (*domain.Incident, error)
	GetPillars(ctx context.Context, incidentID int64) (*domain.IncidentPillars, error)
}

// ShiftRecordsRepo is one query per shift-summary category, each filtered
// by resident and the [start, end) shift window, ordered by timestamp.
type ShiftRecordsRepo interface {
	VitalSigns(ctx context.Context, residentID int64, start, end time.Time) ([]domain.VitalSignRecord, error)
	TaskLogs(ctx context.Context, residentID int64, start, end time.Time) ([]domain.TaskLogRecord, error)
	MedLogs(ctx context.Context, residentID int64, start, end time.Time) ([]domain.MedLogRecord, error)
	Posts(ctx context.Context, residentID int64, start, end time.Time) ([]domain.PostRecord, error)
	SOAPNotes(ctx context.Context, residentID int64, start, end time.Time) ([]domain.SOAPNoteRecord, error)
	BowelMovements(ctx context.Context, residentID int64, start, end time.Time) ([]domain.BowelMovementRecord, error)
	ScaleReports(ctx context.Context, residentID int64, start, end time.Time) ([]domain.ScaleReportRecord, error)
	MedErrors(ctx context.Context, residentID int64, start, end time.Time) ([]domain.MedErrorRecord, error)
	Calendars(ctx context.Context, residentID int64, start, end time.Time) ([]domain.CalendarRecord, error)
	AbnormalValues(ctx context.Context, residentID int64, start, end time.Time) ([]domain.AbnormalValueRecord, error)
}
