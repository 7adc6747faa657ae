package domain

// ChatMessage is one turn of the coaching conversation, as stored by the app.
type ChatMessage struct {
	Role      string `json:"role"` // "user" | "assistant"
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// PillarsProgress tracks which of the four coaching pillars the user has
// already answered. The model reports these; only exact boolean true counts.
type PillarsProgress struct {
	WhyItMatters   bool `json:"why_it_matters"`
	RootCause      bool `json:"root_cause"`
	CoreValues     bool `json:"core_values"`
	PreventionPlan bool `json:"prevention_plan"`
}

// AllTrue reports whether every pillar has been covered.
func (p PillarsProgress) AllTrue() bool {
	return p.WhyItMatters && p.RootCause && p.CoreValues && p.PreventionPlan
}

// PillarContent is the content extracted from the user's answers so the app
// can persist it immediately.
type PillarContent struct {
	WhyItMatters       *string  `json:"why_it_matters"`
	RootCause          *string  `json:"root_cause"`
	CoreValueAnalysis  *string  `json:"core_value_analysis"`
	ViolatedCoreValues []string `json:"violated_core_values"`
	PreventionPlan     *string  `json:"prevention_plan"`
}

// CoreValue maps to the B_Core_Value_Global table.
type CoreValue struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"` // e.g. "Speak Up (กล้าพูด กล้าสื่อสาร)"
	Description *string `json:"description" db:"description"`
	IsActive    bool    `json:"-" db:"is_active"`
	SortOrder   int     `json:"-" db:"sort_order"`
}

// Incident maps to the B_Incident table (the subset the AI flows read).
type Incident struct {
	Title       string `db:"title"`
	Description string `db:"description"`
	Category    string `db:"category"`
	Severity    string `db:"severity"`
}

// IncidentPillars is the saved 4-pillars content on B_Incident, read by the
// incident-summary flow so it reuses what the user already confirmed.
type IncidentPillars struct {
	WhyItMatters       *string  `db:"why_it_matters"`
	RootCause          *string  `db:"root_cause"`
	CoreValueAnalysis  *string  `db:"core_value_analysis"`
	ViolatedCoreValues []string `db:"violated_core_values"`
	PreventionPlan     *string  `db:"prevention_plan"`
}
