package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

// PostgresShiftRecordsRepo fetches the per-category records feeding the
// shift summary. Table and column names keep the app schema's mixed case,
// hence the quoting.
type PostgresShiftRecordsRepo struct {
	db *sql.DB
}

func NewPostgresShiftRecordsRepo(db *sql.DB) *PostgresShiftRecordsRepo {
	return &PostgresShiftRecordsRepo{db: db}
}

var _ ShiftRecordsRepo = (*PostgresShiftRecordsRepo)(nil)

// VitalSigns reads the vitalSign table. generalReport is intentionally not
// selected: it holds old shift reports that would pollute the summary.
func (r *PostgresShiftRecordsRepo) VitalSigns(ctx context.Context, residentID int64, start, end time.Time) ([]domain.VitalSignRecord, error) {
	query := `
		SELECT "sBP", "dBP", "PR", "RR", "Temp", "O2", "DTX", "Insulin",
		       "Input", output, napkin, "Defecation", constipation, shift, created_at
		FROM "vitalSign"
		WHERE resident_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query vital signs: %w", err)
	}
	defer rows.Close()

	var records []domain.VitalSignRecord
	for rows.Next() {
		var rec domain.VitalSignRecord
		var sbp, dbp, pr, rr, temp, o2, dtx, insulin, input, output, napkin, defecation, constipation, shiftName sql.NullString
		if err := rows.Scan(&sbp, &dbp, &pr, &rr, &temp, &o2, &dtx, &insulin,
			&input, &output, &napkin, &defecation, &constipation, &shiftName, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vital sign: %w", err)
		}
		rec.SBP = nullable(sbp)
		rec.DBP = nullable(dbp)
		rec.PR = nullable(pr)
		rec.RR = nullable(rr)
		rec.Temp = nullable(temp)
		rec.O2 = nullable(o2)
		rec.DTX = nullable(dtx)
		rec.Insulin = nullable(insulin)
		rec.Input = nullable(input)
		rec.Output = nullable(output)
		rec.Napkin = nullable(napkin)
		rec.Defecation = nullable(defecation)
		rec.Constipation = nullable(constipation)
		rec.Shift = nullable(shiftName)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// TaskLogs is a two-step fetch: A_Task_logs_ver2 has no FK to A_Tasks, so
// resolve the resident's task ids first, then pull logs in the window and
// join task info in memory.
func (r *PostgresShiftRecordsRepo) TaskLogs(ctx context.Context, residentID int64, start, end time.Time) ([]domain.TaskLogRecord, error) {
	taskQuery := `
		SELECT id, title, description, "taskType"
		FROM "A_Tasks"
		WHERE resident_id = $1
	`

	rows, err := r.db.QueryContext(ctx, taskQuery, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	taskMap := map[int64]*domain.Task{}
	var taskIDs []int64
	for rows.Next() {
		var task domain.Task
		var title, description, taskType sql.NullString
		if err := rows.Scan(&task.ID, &title, &description, &taskType); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.Title = nullable(title)
		task.Description = nullable(description)
		task.TaskType = nullable(taskType)
		taskMap[task.ID] = &task
		taskIDs = append(taskIDs, task.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	if len(taskIDs) == 0 {
		return nil, nil
	}

	logQuery := `
		SELECT id, status, "Descript", completed_at, "ExpectedDateTime", problem_type, task_id
		FROM "A_Task_logs_ver2"
		WHERE task_id = ANY($1) AND "ExpectedDateTime" >= $2 AND "ExpectedDateTime" < $3
		ORDER BY "ExpectedDateTime"
	`

	logRows, err := r.db.QueryContext(ctx, logQuery, pq.Array(taskIDs), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query task logs: %w", err)
	}
	defer logRows.Close()

	var records []domain.TaskLogRecord
	for logRows.Next() {
		var rec domain.TaskLogRecord
		var status, descript, problemType sql.NullString
		var completedAt sql.NullTime
		if err := logRows.Scan(&rec.ID, &status, &descript, &completedAt,
			&rec.ExpectedDateTime, &problemType, &rec.TaskID); err != nil {
			return nil, fmt.Errorf("failed to scan task log: %w", err)
		}
		rec.Status = nullable(status)
		rec.Descript = nullable(descript)
		rec.ProblemType = nullable(problemType)
		if completedAt.Valid {
			rec.CompletedAt = &completedAt.Time
		}
		rec.Task = taskMap[rec.TaskID]
		records = append(records, rec)
	}
	return records, logRows.Err()
}

func (r *PostgresShiftRecordsRepo) MedLogs(ctx context.Context, residentID int64, start, end time.Time) ([]domain.MedLogRecord, error) {
	query := `
		SELECT meal, "Created_Date", "ArrangeMed_by", created_at
		FROM "A_Med_logs"
		WHERE resident_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query med logs: %w", err)
	}
	defer rows.Close()

	var records []domain.MedLogRecord
	for rows.Next() {
		var rec domain.MedLogRecord
		var meal, createdDate, arrangeBy sql.NullString
		if err := rows.Scan(&meal, &createdDate, &arrangeBy, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan med log: %w", err)
		}
		rec.Meal = nullable(meal)
		rec.CreatedDate = nullable(createdDate)
		rec.ArrangeMedBy = nullable(arrangeBy)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Posts covers both linkage styles in one query: posts referencing the
// resident directly, and posts linked through the Post_Resident_id junction
// table. A single OR filter avoids duplicate rows when both match.
func (r *PostgresShiftRecordsRepo) Posts(ctx context.Context, residentID int64, start, end time.Time) ([]domain.PostRecord, error) {
	junctionQuery := `
		SELECT "Post_id"
		FROM "Post_Resident_id"
		WHERE resident_id = $1
	`

	junctionRows, err := r.db.QueryContext(ctx, junctionQuery, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query post junction: %w", err)
	}
	defer junctionRows.Close()

	var junctionIDs []int64
	for junctionRows.Next() {
		// junction rows can carry null or empty Post_id values
		var postID sql.NullString
		if err := junctionRows.Scan(&postID); err != nil {
			return nil, fmt.Errorf("failed to scan post junction: %w", err)
		}
		if !postID.Valid || postID.String == "" {
			continue
		}
		id, err := strconv.ParseInt(postID.String, 10, 64)
		if err != nil {
			continue
		}
		junctionIDs = append(junctionIDs, id)
	}
	if err := junctionRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post junction: %w", err)
	}

	query := `
		SELECT id, title, "Text", created_at, COALESCE(is_handover, false)
		FROM "Post"
		WHERE created_at >= $2 AND created_at < $3
		  AND (resident_id = $1 OR id = ANY($4))
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end, pq.Array(junctionIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var records []domain.PostRecord
	for rows.Next() {
		var rec domain.PostRecord
		var title, text sql.NullString
		if err := rows.Scan(&rec.ID, &title, &text, &rec.CreatedAt, &rec.IsHandover); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		rec.Title = nullable(title)
		rec.Text = nullable(text)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresShiftRecordsRepo) SOAPNotes(ctx context.Context, residentID int64, start, end time.Time) ([]domain.SOAPNoteRecord, error) {
	query := `
		SELECT "Subjective", "Objective", "Assessment", "Plan", "descriptive_Note", type, date
		FROM "SOAPNote"
		WHERE resident_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query soap notes: %w", err)
	}
	defer rows.Close()

	var records []domain.SOAPNoteRecord
	for rows.Next() {
		var rec domain.SOAPNoteRecord
		var s, o, a, p, note, noteType sql.NullString
		if err := rows.Scan(&s, &o, &a, &p, &note, &noteType, &rec.Date); err != nil {
			return nil, fmt.Errorf("failed to scan soap note: %w", err)
		}
		rec.Subjective = nullable(s)
		rec.Objective = nullable(o)
		rec.Assessment = nullable(a)
		rec.Plan = nullable(p)
		rec.DescriptiveNote = nullable(note)
		rec.Type = nullable(noteType)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresShiftRecordsRepo) BowelMovements(ctx context.Context, residentID int64, start, end time.Time) ([]domain.BowelMovementRecord, error) {
	query := `
		SELECT "BristolScore", "Amount", created_at
		FROM "Doc_Bowel_Movement"
		WHERE resident_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query bowel movements: %w", err)
	}
	defer rows.Close()

	var records []domain.BowelMovementRecord
	for rows.Next() {
		var rec domain.BowelMovementRecord
		var score, amount sql.NullString
		if err := rows.Scan(&score, &amount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bowel movement: %w", err)
		}
		rec.BristolScore = nullable(score)
		rec.Amount = nullable(amount)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresShiftRecordsRepo) ScaleReports(ctx context.Context, residentID int64, start, end time.Time) ([]domain.ScaleReportRecord, error) {
	query := `
		SELECT report_description, created_at
		FROM "Scale_Report_Log"
		WHERE resident_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query scale reports: %w", err)
	}
	defer rows.Close()

	var records []domain.ScaleReportRecord
	for rows.Next() {
		var rec domain.ScaleReportRecord
		var desc sql.NullString
		if err := rows.Scan(&desc, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scale report: %w", err)
		}
		rec.ReportDescription = nullable(desc)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresShiftRecordsRepo) MedErrors(ctx context.Context, residentID int64, start, end time.Time) ([]domain.MedErrorRecord, error) {
	query := `
		SELECT meal, list_of_med, reason, "CalendarDate", created_at
		FROM "A_Med_Error_Log"
		WHERE resident_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query med errors: %w", err)
	}
	defer rows.Close()

	var records []domain.MedErrorRecord
	for rows.Next() {
		var rec domain.MedErrorRecord
		var meal, listOfMed, reason, calendarDate sql.NullString
		if err := rows.Scan(&meal, &listOfMed, &reason, &calendarDate, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan med error: %w", err)
		}
		rec.Meal = nullable(meal)
		rec.ListOfMed = nullable(listOfMed)
		rec.Reason = nullable(reason)
		rec.CalendarDate = nullable(calendarDate)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresShiftRecordsRepo) Calendars(ctx context.Context, residentID int64, start, end time.Time) ([]domain.CalendarRecord, error) {
	query := `
		SELECT "Title", "Description", "Type", "dateTime", hospital, COALESCE("isNPO", false)
		FROM "C_Calendar"
		WHERE resident_id = $1 AND "dateTime" >= $2 AND "dateTime" < $3
		ORDER BY "dateTime"
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendars: %w", err)
	}
	defer rows.Close()

	var records []domain.CalendarRecord
	for rows.Next() {
		var rec domain.CalendarRecord
		var title, description, calType, hospital sql.NullString
		if err := rows.Scan(&title, &description, &calType, &rec.DateTime, &hospital, &rec.IsNPO); err != nil {
			return nil, fmt.Errorf("failed to scan calendar: %w", err)
		}
		rec.Title = nullable(title)
		rec.Description = nullable(description)
		rec.Type = nullable(calType)
		rec.Hospital = nullable(hospital)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresShiftRecordsRepo) AbnormalValues(ctx context.Context, residentID int64, start, end time.Time) ([]domain.AbnormalValueRecord, error) {
	query := `
		SELECT abnormal_value, created_at
		FROM "abnormal_value_Dashboard"
		WHERE resident_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, residentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query abnormal values: %w", err)
	}
	defer rows.Close()

	var records []domain.AbnormalValueRecord
	for rows.Next() {
		var rec domain.AbnormalValueRecord
		var val sql.NullString
		if err := rows.Scan(&val, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan abnormal value: %w", err)
		}
		rec.AbnormalValue = nullable(val)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
