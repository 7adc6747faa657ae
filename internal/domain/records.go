package domain

import "time"

// Shift-window record types. Each maps to one category table the shift
// summary reads. Nullable columns are pointers; coercion happens once, in
// the repository scan, and the rest of the pipeline trusts these shapes.

// VitalSignRecord maps to the vitalSign table.
// generalReport is deliberately not read: it holds previous shift reports
// and would make the model mix old data into the current summary.
type VitalSignRecord struct {
	SBP          *string   `db:"sBP"`
	DBP          *string   `db:"dBP"`
	PR           *string   `db:"PR"`
	RR           *string   `db:"RR"`
	Temp         *string   `db:"Temp"`
	O2           *string   `db:"O2"`
	DTX          *string   `db:"DTX"`
	Insulin      *string   `db:"Insulin"`
	Input        *string   `db:"Input"`
	Output       *string   `db:"output"`
	Napkin       *string   `db:"napkin"`
	Defecation   *string   `db:"Defecation"`
	Constipation *string   `db:"constipation"`
	Shift        *string   `db:"shift"`
	CreatedAt    time.Time `db:"created_at"`
}

// Task maps to A_Tasks (the per-resident task definitions).
type Task struct {
	ID          int64   `db:"id"`
	Title       *string `db:"title"`
	Description *string `db:"description"`
	TaskType    *string `db:"taskType"`
}

// TaskLogRecord maps to A_Task_logs_ver2, joined in memory with its Task.
// The log table has no FK to A_Tasks, hence the two-step fetch.
type TaskLogRecord struct {
	ID               int64      `db:"id"`
	Status           *string    `db:"status"`
	Descript         *string    `db:"Descript"`
	CompletedAt      *time.Time `db:"completed_at"`
	ExpectedDateTime time.Time  `db:"ExpectedDateTime"`
	ProblemType      *string    `db:"problem_type"`
	TaskID           int64      `db:"task_id"`
	Task             *Task      // resolved from A_Tasks, nil when the id is unknown
}

// MedLogRecord maps to A_Med_logs.
type MedLogRecord struct {
	Meal         *string   `db:"meal"`
	CreatedDate  *string   `db:"Created_Date"`
	ArrangeMedBy *string   `db:"ArrangeMed_by"`
	CreatedAt    time.Time `db:"created_at"`
}

// PostRecord maps to the Post table.
type PostRecord struct {
	ID         int64     `db:"id"`
	Title      *string   `db:"title"`
	Text       *string   `db:"Text"`
	CreatedAt  time.Time `db:"created_at"`
	IsHandover bool      `db:"is_handover"`
}

// SOAPNoteRecord maps to the SOAPNote table.
type SOAPNoteRecord struct {
	Subjective      *string   `db:"Subjective"`
	Objective       *string   `db:"Objective"`
	Assessment      *string   `db:"Assessment"`
	Plan            *string   `db:"Plan"`
	DescriptiveNote *string   `db:"descriptive_Note"`
	Type            *string   `db:"type"`
	Date            time.Time `db:"date"`
}

// BowelMovementRecord maps to Doc_Bowel_Movement.
type BowelMovementRecord struct {
	BristolScore *string   `db:"BristolScore"`
	Amount       *string   `db:"Amount"`
	CreatedAt    time.Time `db:"created_at"`
}

// ScaleReportRecord maps to Scale_Report_Log.
type ScaleReportRecord struct {
	ReportDescription *string   `db:"report_description"`
	CreatedAt         time.Time `db:"created_at"`
}

// MedErrorRecord maps to A_Med_Error_Log.
type MedErrorRecord struct {
	Meal         *string   `db:"meal"`
	ListOfMed    *string   `db:"list_of_med"`
	Reason       *string   `db:"reason"`
	CalendarDate *string   `db:"CalendarDate"`
	CreatedAt    time.Time `db:"created_at"`
}

// CalendarRecord maps to C_Calendar (appointments).
type CalendarRecord struct {
	Title       *string   `db:"Title"`
	Description *string   `db:"Description"`
	Type        *string   `db:"Type"`
	DateTime    time.Time `db:"dateTime"`
	Hospital    *string   `db:"hospital"`
	IsNPO       bool      `db:"isNPO"`
}

// AbnormalValueRecord maps to abnormal_value_Dashboard.
type AbnormalValueRecord struct {
	AbnormalValue *string   `db:"abnormal_value"`
	CreatedAt     time.Time `db:"created_at"`
}
