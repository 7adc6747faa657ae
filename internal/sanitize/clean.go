package sanitize

import (
	"regexp"
	"strings"
)

// CoachMetadataFields are the structured-field names the coach schema uses.
// When the model leaks one of these into the conversational field it always
// appears as `", "<field>":` straight after the prose, which is what the
// truncation pattern keys on.
var CoachMetadataFields = []string{
	"pillars_progress",
	"pillar_content",
	"why_it_matters",
	"root_cause",
	"core_values",
	"prevention_plan",
	"is_complete",
	"violated_core_values",
	"core_value_analysis",
}

var trailingJunk = regexp.MustCompile(`["'\s]+$`)

// CleanConversationalField truncates text at the first leaked JSON metadata
// fragment, e.g. `ขอบคุณค่ะ", "pillars_progress": {...}` -> `ขอบคุณค่ะ`.
// Best-effort repair, not a parser: when nothing matches the input comes
// back unchanged (minus trailing quotes/whitespace).
func CleanConversationalField(text string, fields []string) string {
	if text == "" {
		return text
	}

	cleaned := text
	cut := -1
	for _, field := range fields {
		pattern := regexp.MustCompile(`",\s*"` + regexp.QuoteMeta(field) + `"\s*:`)
		if loc := pattern.FindStringIndex(cleaned); loc != nil && (cut == -1 || loc[0] < cut) {
			cut = loc[0]
		}
	}
	if cut >= 0 {
		cleaned = cleaned[:cut]
	}

	return strings.TrimSpace(trailingJunk.ReplaceAllString(cleaned, ""))
}
