package shift

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

// One formatter per category: compact, one line per record, timestamps as
// civil HH:MM so the model reads them the way staff would.

// taskStatusLabels translates task log status codes for the report.
// Unrecognized codes pass through unchanged.
var taskStatusLabels = map[string]string{
	"complete": "เสร็จ",
	"Complete": "เสร็จ",
	"problem":  "มีปัญหา",
	"Problem":  "มีปัญหา",
	"skip":     "ข้าม",
	"Skip":     "ข้าม",
	"pending":  "รอดำเนินการ",
}

func FormatVitalSigns(records []domain.VitalSignRecord) string {
	lines := make([]string, 0, len(records))
	for _, v := range records {
		parts := []string{}
		if str(v.SBP) != "" && str(v.DBP) != "" {
			parts = append(parts, fmt.Sprintf("BP %s/%s", *v.SBP, *v.DBP))
		}
		appendIf(&parts, "PR", v.PR)
		appendIf(&parts, "Temp", v.Temp)
		appendIf(&parts, "RR", v.RR)
		if s := str(v.O2); s != "" {
			parts = append(parts, fmt.Sprintf("SpO2 %s%%", s))
		}
		appendIf(&parts, "DTX", v.DTX)
		appendIf(&parts, "Insulin", v.Insulin)
		appendIf(&parts, "Input", v.Input)
		appendIf(&parts, "Output", v.Output)
		appendIf(&parts, "ผ้าอ้อม", v.Napkin)
		appendIf(&parts, "ถ่าย", v.Defecation)
		appendIf(&parts, "ท้องผูกวันที่", v.Constipation)
		lines = append(lines, fmt.Sprintf("เวลา %s: %s", FormatTime(v.CreatedAt), strings.Join(parts, ", ")))
	}
	return strings.Join(lines, "\n")
}

func FormatTaskLogs(records []domain.TaskLogRecord) string {
	lines := make([]string, 0, len(records))
	for _, log := range records {
		title := "ไม่ระบุ"
		taskTitle := ""
		if log.Task != nil {
			taskTitle = str(log.Task.Title)
		}
		if taskTitle != "" {
			title = taskTitle
		} else if str(log.Descript) != "" {
			title = *log.Descript
		}

		status := str(log.Status)
		if status == "" {
			status = "unknown"
		}
		if label, ok := taskStatusLabels[status]; ok {
			status = label
		}

		line := fmt.Sprintf("[%s] %s", status, title)
		if s := str(log.ProblemType); s != "" {
			line += fmt.Sprintf(" (ปัญหา: %s)", s)
		}
		if d := str(log.Descript); d != "" && taskTitle != "" && d != taskTitle {
			line += " - " + d
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func FormatMedLogs(records []domain.MedLogRecord) string {
	lines := make([]string, 0, len(records))
	for _, m := range records {
		meal := str(m.Meal)
		if meal == "" {
			meal = "ไม่ระบุ"
		}
		lines = append(lines, fmt.Sprintf("เวลา %s: จัดยามื้อ %s", FormatTime(m.CreatedAt), meal))
	}
	return strings.Join(lines, "\n")
}

func FormatPosts(records []domain.PostRecord) string {
	// is_handover only controls app-side visibility, not which shift the
	// post belongs to, so every post is rendered the same way.
	lines := make([]string, 0, len(records))
	for _, p := range records {
		text := str(p.Text)
		if runes := []rune(text); len(runes) > 200 {
			text = string(runes[:200]) + "..."
		}
		line := fmt.Sprintf("เวลา %s: %s", FormatTime(p.CreatedAt), str(p.Title))
		if text != "" {
			line += " - " + text
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func FormatSOAPNotes(records []domain.SOAPNoteRecord) string {
	lines := make([]string, 0, len(records))
	for _, n := range records {
		parts := []string{}
		appendIf(&parts, "S:", n.Subjective)
		appendIf(&parts, "O:", n.Objective)
		appendIf(&parts, "A:", n.Assessment)
		appendIf(&parts, "P:", n.Plan)
		appendIf(&parts, "Note:", n.DescriptiveNote)
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}

func FormatBowelMovements(records []domain.BowelMovementRecord) string {
	lines := make([]string, 0, len(records))
	for _, b := range records {
		lines = append(lines, fmt.Sprintf("เวลา %s: Bristol Score %s, ปริมาณ %s",
			FormatTime(b.CreatedAt), orDash(b.BristolScore), orDash(b.Amount)))
	}
	return strings.Join(lines, "\n")
}

func FormatScaleReports(records []domain.ScaleReportRecord) string {
	lines := make([]string, 0, len(records))
	for _, s := range records {
		desc := str(s.ReportDescription)
		if desc == "" {
			desc = "ไม่มีรายละเอียด"
		}
		lines = append(lines, fmt.Sprintf("เวลา %s: %s", FormatTime(s.CreatedAt), desc))
	}
	return strings.Join(lines, "\n")
}

func FormatMedErrors(records []domain.MedErrorRecord) string {
	lines := make([]string, 0, len(records))
	for _, e := range records {
		lines = append(lines, fmt.Sprintf("มื้อ %s: %s (สาเหตุ: %s)",
			orDash(e.Meal), orDash(e.ListOfMed), orDash(e.Reason)))
	}
	return strings.Join(lines, "\n")
}

func FormatCalendars(records []domain.CalendarRecord) string {
	lines := make([]string, 0, len(records))
	for _, c := range records {
		title := str(c.Title)
		if title == "" {
			title = str(c.Type)
		}
		if title == "" {
			title = "นัดหมาย"
		}
		line := fmt.Sprintf("เวลา %s: %s", FormatTime(c.DateTime), title)
		if s := str(c.Hospital); s != "" {
			line += fmt.Sprintf(" (%s)", s)
		}
		if c.IsNPO {
			line += " [NPO - งดอาหาร]"
		}
		if s := str(c.Description); s != "" {
			line += " - " + s
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func FormatAbnormalValues(records []domain.AbnormalValueRecord) string {
	lines := make([]string, 0, len(records))
	for _, a := range records {
		val := str(a.AbnormalValue)
		if val == "" {
			val = "ค่าผิดปกติ"
		}
		lines = append(lines, fmt.Sprintf("เวลา %s: %s", FormatTime(a.CreatedAt), val))
	}
	return strings.Join(lines, "\n")
}

// FormatFormVitalSigns renders the not-yet-saved vitals from the form.
// sBP/dBP pair up into one reading when both are present.
func FormatFormVitalSigns(vs map[string]string) string {
	labels := map[string]string{
		"sBP": "BP (systolic)", "dBP": "BP (diastolic)",
		"PR": "PR", "RR": "RR", "Temp": "Temp", "O2": "SpO2",
		"DTX": "DTX", "Insulin": "Insulin",
		"Input": "Input", "Output": "Output",
		"napkin": "ผ้าอ้อม", "defecation": "การขับถ่าย",
		"constipation": "ท้องผูกวันที่",
	}

	parts := []string{}
	if vs["sBP"] != "" && vs["dBP"] != "" {
		parts = append(parts, fmt.Sprintf("BP %s/%s", vs["sBP"], vs["dBP"]))
	} else {
		if vs["sBP"] != "" {
			parts = append(parts, "BP (systolic) "+vs["sBP"])
		}
		if vs["dBP"] != "" {
			parts = append(parts, "BP (diastolic) "+vs["dBP"])
		}
	}

	// remaining keys in stable order so output is deterministic
	for _, key := range sortedKeys(vs) {
		if key == "sBP" || key == "dBP" {
			continue
		}
		label := labels[key]
		if label == "" {
			label = key
		}
		parts = append(parts, label+" "+vs[key])
	}
	return strings.Join(parts, ", ")
}

func FormatFormRatings(ratings []domain.FormRating) string {
	lines := make([]string, 0, len(ratings))
	for _, r := range ratings {
		text := fmt.Sprintf("%s: %d/5", r.Subject, r.Rating)
		if r.Choice != "" {
			text += fmt.Sprintf(" (%s)", r.Choice)
		}
		if r.Note != "" {
			text += " - " + r.Note
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func orDash(p *string) string {
	if s := str(p); s != "" {
		return s
	}
	return "-"
}

func appendIf(parts *[]string, label string, p *string) {
	if s := str(p); s != "" {
		*parts = append(*parts, label+" "+s)
	}
}
