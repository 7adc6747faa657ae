package shift

import "encoding/json"

// DataSourceConfig is the admin-controlled on/off switch per category.
// Stored as JSON under the shift_summary_data_sources config key.
type DataSourceConfig struct {
	VitalSigns     bool `json:"vital_signs"`
	TaskLogs       bool `json:"task_logs"`
	MedLogs        bool `json:"med_logs"`
	Posts          bool `json:"posts"`
	SOAPNotes      bool `json:"soap_notes"`
	BowelMovements bool `json:"bowel_movements"`
	ScaleReports   bool `json:"scale_reports"`
	MedErrors      bool `json:"med_errors"`
	Calendars      bool `json:"calendars"`
	AbnormalValues bool `json:"abnormal_values"`
}

// DefaultDataSources: everything enabled until the admin says otherwise.
func DefaultDataSources() DataSourceConfig {
	return DataSourceConfig{
		VitalSigns:     true,
		TaskLogs:       true,
		MedLogs:        true,
		Posts:          true,
		SOAPNotes:      true,
		BowelMovements: true,
		ScaleReports:   true,
		MedErrors:      true,
		Calendars:      true,
		AbnormalValues: true,
	}
}

// ParseDataSources merges a stored JSON config over the defaults. Keys that
// are missing stay enabled, unknown keys are ignored, and a config that does
// not parse falls back to the defaults entirely.
func ParseDataSources(raw string) DataSourceConfig {
	cfg := DefaultDataSources()
	if raw == "" {
		return cfg
	}

	var overlay struct {
		VitalSigns     *bool `json:"vital_signs"`
		TaskLogs       *bool `json:"task_logs"`
		MedLogs        *bool `json:"med_logs"`
		Posts          *bool `json:"posts"`
		SOAPNotes      *bool `json:"soap_notes"`
		BowelMovements *bool `json:"bowel_movements"`
		ScaleReports   *bool `json:"scale_reports"`
		MedErrors      *bool `json:"med_errors"`
		Calendars      *bool `json:"calendars"`
		AbnormalValues *bool `json:"abnormal_values"`
	}
	if err := json.Unmarshal([]byte(raw), &overlay); err != nil {
		return cfg
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&cfg.VitalSigns, overlay.VitalSigns)
	apply(&cfg.TaskLogs, overlay.TaskLogs)
	apply(&cfg.MedLogs, overlay.MedLogs)
	apply(&cfg.Posts, overlay.Posts)
	apply(&cfg.SOAPNotes, overlay.SOAPNotes)
	apply(&cfg.BowelMovements, overlay.BowelMovements)
	apply(&cfg.ScaleReports, overlay.ScaleReports)
	apply(&cfg.MedErrors, overlay.MedErrors)
	apply(&cfg.Calendars, overlay.Calendars)
	apply(&cfg.AbnormalValues, overlay.AbnormalValues)

	return cfg
}
