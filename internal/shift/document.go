package shift

import (
	"strings"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

// NoActivitySentinel is returned instead of an empty document so the caller
// can short-circuit the model call.
const NoActivitySentinel = "ไม่มีข้อมูลกิจกรรมในเวรนี้"

// documentHeader tells the model the data below covers only this shift.
const documentHeader = "(หมายเหตุ: ข้อมูลด้านล่างทั้งหมดเป็นกิจกรรมที่เกิดขึ้นในเวรนี้เท่านั้น ไม่รวมข้อมูลเวรอื่น ยกเว้นส่วนที่ระบุว่า \"ส่งต่อจากเวรก่อน\")\n\n"

// CategoryResults holds the fetched records per category. A disabled or
// failed category is simply an empty slice here.
type CategoryResults struct {
	VitalSigns     []domain.VitalSignRecord
	TaskLogs       []domain.TaskLogRecord
	MedLogs        []domain.MedLogRecord
	Posts          []domain.PostRecord
	SOAPNotes      []domain.SOAPNoteRecord
	BowelMovements []domain.BowelMovementRecord
	ScaleReports   []domain.ScaleReportRecord
	MedErrors      []domain.MedErrorRecord
	Calendars      []domain.CalendarRecord
	AbnormalValues []domain.AbnormalValueRecord
}

// Counts reports records per category key, for the response debug block.
func (r CategoryResults) Counts() map[string]int {
	counts := map[string]int{}
	put := func(key string, n int) {
		if n > 0 {
			counts[key] = n
		}
	}
	put("vital_signs", len(r.VitalSigns))
	put("task_logs", len(r.TaskLogs))
	put("med_logs", len(r.MedLogs))
	put("posts", len(r.Posts))
	put("soap_notes", len(r.SOAPNotes))
	put("bowel_movements", len(r.BowelMovements))
	put("scale_reports", len(r.ScaleReports))
	put("med_errors", len(r.MedErrors))
	put("calendars", len(r.Calendars))
	put("abnormal_values", len(r.AbnormalValues))
	return counts
}

// BuildDocument assembles the shift document in fixed priority order:
// current-form data first (freshest), then each DB category in canonical
// order, then the caregiver's free-text note last. Empty categories are
// skipped entirely. When nothing qualifies the whole document collapses to
// the sentinel string.
func BuildDocument(results CategoryResults, form *domain.CurrentFormData) string {
	sections := []string{}

	if form != nil {
		if len(form.VitalSigns) > 0 {
			sections = append(sections, "## สัญญาณชีพ (กรอกในฟอร์มปัจจุบัน)\n"+FormatFormVitalSigns(form.VitalSigns))
		}
		if len(form.Ratings) > 0 {
			sections = append(sections, "## ผลประเมินสุขภาพ (กรอกในฟอร์มปัจจุบัน)\n"+FormatFormRatings(form.Ratings))
		}
	}

	if len(results.VitalSigns) > 0 {
		sections = append(sections, "## สัญญาณชีพ (บันทึกก่อนหน้า)\n"+FormatVitalSigns(results.VitalSigns))
	}
	if len(results.TaskLogs) > 0 {
		sections = append(sections, "## งานที่ทำ\n"+FormatTaskLogs(results.TaskLogs))
	}
	if len(results.MedLogs) > 0 {
		sections = append(sections, "## การจัดยา\n"+FormatMedLogs(results.MedLogs))
	}
	if len(results.Posts) > 0 {
		sections = append(sections, "## โพสต์/รายงาน\n"+FormatPosts(results.Posts))
	}
	if len(results.SOAPNotes) > 0 {
		sections = append(sections, "## SOAP Notes\n"+FormatSOAPNotes(results.SOAPNotes))
	}
	if len(results.BowelMovements) > 0 {
		sections = append(sections, "## การขับถ่าย\n"+FormatBowelMovements(results.BowelMovements))
	}
	if len(results.ScaleReports) > 0 {
		sections = append(sections, "## ผลประเมินสุขภาพ (บันทึกก่อนหน้า)\n"+FormatScaleReports(results.ScaleReports))
	}
	if len(results.MedErrors) > 0 {
		sections = append(sections, "## ข้อผิดพลาดยา\n"+FormatMedErrors(results.MedErrors))
	}
	if len(results.Calendars) > 0 {
		sections = append(sections, "## นัดหมาย\n"+FormatCalendars(results.Calendars))
	}
	if len(results.AbnormalValues) > 0 {
		sections = append(sections, "## ค่าผิดปกติ\n"+FormatAbnormalValues(results.AbnormalValues))
	}

	if form != nil && strings.TrimSpace(form.ReportTemplate) != "" {
		sections = append(sections,
			"## บันทึกจากผู้ดูแล (NA เขียนไว้แล้ว)\nข้อมูลด้านล่างเป็นสิ่งที่ผู้ดูแลสังเกตเห็นและจดไว้แล้ว ให้นำไปรวมในสรุปด้วย:\n"+form.ReportTemplate)
	}

	if len(sections) == 0 {
		return NoActivitySentinel
	}

	return documentHeader + strings.Join(sections, "\n\n")
}
