package shift

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestBuildDocument_EmptyCollapsesToSentinel(t *testing.T) {
	got := BuildDocument(CategoryResults{}, nil)

	// exactly the sentinel: no header, no empty sections
	assert.Equal(t, NoActivitySentinel, got)
}

func TestBuildDocument_SkipsEmptyCategories(t *testing.T) {
	results := CategoryResults{
		MedLogs: []domain.MedLogRecord{
			{Meal: strPtr("เช้า"), CreatedAt: time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)},
		},
	}

	got := BuildDocument(results, nil)

	assert.Contains(t, got, "## การจัดยา")
	assert.Contains(t, got, "จัดยามื้อ เช้า")
	assert.NotContains(t, got, "## สัญญาณชีพ")
	assert.NotContains(t, got, "## งานที่ทำ")
	// disclaimer header present once data exists
	assert.True(t, strings.HasPrefix(got, "(หมายเหตุ:"))
}

func TestBuildDocument_SectionOrderIsFixed(t *testing.T) {
	now := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
	results := CategoryResults{
		VitalSigns:     []domain.VitalSignRecord{{SBP: strPtr("120"), DBP: strPtr("80"), CreatedAt: now}},
		Posts:          []domain.PostRecord{{Title: strPtr("อาบน้ำเรียบร้อย"), CreatedAt: now}},
		AbnormalValues: []domain.AbnormalValueRecord{{AbnormalValue: strPtr("BP สูง"), CreatedAt: now}},
	}
	form := &domain.CurrentFormData{
		VitalSigns:     map[string]string{"PR": "72"},
		ReportTemplate: "วันนี้อารมณ์ดี ยิ้มแย้ม",
	}

	got := BuildDocument(results, form)

	idxFormVitals := strings.Index(got, "## สัญญาณชีพ (กรอกในฟอร์มปัจจุบัน)")
	idxDBVitals := strings.Index(got, "## สัญญาณชีพ (บันทึกก่อนหน้า)")
	idxPosts := strings.Index(got, "## โพสต์/รายงาน")
	idxAbnormal := strings.Index(got, "## ค่าผิดปกติ")
	idxNote := strings.Index(got, "## บันทึกจากผู้ดูแล")

	for _, idx := range []int{idxFormVitals, idxDBVitals, idxPosts, idxAbnormal, idxNote} {
		require.GreaterOrEqual(t, idx, 0, "missing section in: %s", got)
	}
	assert.Less(t, idxFormVitals, idxDBVitals)
	assert.Less(t, idxDBVitals, idxPosts)
	assert.Less(t, idxPosts, idxAbnormal)
	assert.Less(t, idxAbnormal, idxNote)
}

func TestBuildDocument_BlankNoteIgnored(t *testing.T) {
	form := &domain.CurrentFormData{ReportTemplate: "   \n "}
	assert.Equal(t, NoActivitySentinel, BuildDocument(CategoryResults{}, form))
}

func TestFormatVitalSigns_PairsBPAndSkipsEmpty(t *testing.T) {
	records := []domain.VitalSignRecord{{
		SBP:       strPtr("135"),
		DBP:       strPtr("85"),
		PR:        strPtr("78"),
		O2:        strPtr("97"),
		CreatedAt: time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC), // 08:30 BKK
	}}

	got := FormatVitalSigns(records)

	assert.Equal(t, "เวลา 08:30: BP 135/85, PR 78, SpO2 97%", got)
}

func TestFormatTaskLogs_StatusLabelsAndFallback(t *testing.T) {
	records := []domain.TaskLogRecord{
		{Status: strPtr("complete"), Task: &domain.Task{Title: strPtr("พลิกตัว")}},
		{Status: strPtr("problem"), Task: &domain.Task{Title: strPtr("ป้อนอาหาร")}, ProblemType: strPtr("ไม่ยอมทาน")},
		{Status: strPtr("WEIRD_CODE"), Descript: strPtr("เช็ดตัว")},
	}

	got := FormatTaskLogs(records)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "[เสร็จ] พลิกตัว", lines[0])
	assert.Equal(t, "[มีปัญหา] ป้อนอาหาร (ปัญหา: ไม่ยอมทาน)", lines[1])
	// unknown status codes pass through unchanged
	assert.Equal(t, "[WEIRD_CODE] เช็ดตัว", lines[2])
}

func TestFormatTaskLogs_DescriptAppendedWhenDifferent(t *testing.T) {
	records := []domain.TaskLogRecord{
		{Status: strPtr("skip"), Task: &domain.Task{Title: strPtr("กายภาพ")}, Descript: strPtr("ผู้พักขอพัก")},
	}
	assert.Equal(t, "[ข้าม] กายภาพ - ผู้พักขอพัก", FormatTaskLogs(records))
}

func TestFormatPosts_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("ก", 250)
	records := []domain.PostRecord{{
		Title:     strPtr("บันทึก"),
		Text:      &long,
		CreatedAt: time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC),
	}}

	got := FormatPosts(records)

	assert.Contains(t, got, strings.Repeat("ก", 200)+"...")
	assert.NotContains(t, got, strings.Repeat("ก", 201))
}

func TestFormatSOAPNotes_JoinsPresentParts(t *testing.T) {
	records := []domain.SOAPNoteRecord{{
		Subjective: strPtr("บ่นปวดหัว"),
		Plan:       strPtr("เฝ้าระวังอาการ"),
	}}
	assert.Equal(t, "S: บ่นปวดหัว | P: เฝ้าระวังอาการ", FormatSOAPNotes(records))
}

func TestFormatFormVitalSigns_PairsAndLabels(t *testing.T) {
	got := FormatFormVitalSigns(map[string]string{
		"sBP": "120", "dBP": "80", "PR": "70", "custom": "x",
	})

	assert.True(t, strings.HasPrefix(got, "BP 120/80"))
	assert.Contains(t, got, "PR 70")
	// unknown keys fall back to the raw key as label
	assert.Contains(t, got, "custom x")
}

func TestFormatFormRatings(t *testing.T) {
	got := FormatFormRatings([]domain.FormRating{
		{Subject: "การนอน", Rating: 4, Choice: "หลับดี"},
		{Subject: "อารมณ์", Rating: 2, Note: "หงุดหงิดช่วงเย็น"},
	})
	lines := strings.Split(got, "\n")

	assert.Equal(t, "การนอน: 4/5 (หลับดี)", lines[0])
	assert.Equal(t, "อารมณ์: 2/5 - หงุดหงิดช่วงเย็น", lines[1])
}

func TestCategoryResultsCounts(t *testing.T) {
	results := CategoryResults{
		MedLogs: make([]domain.MedLogRecord, 3),
		Posts:   make([]domain.PostRecord, 1),
	}
	counts := results.Counts()

	assert.Equal(t, map[string]int{"med_logs": 3, "posts": 1}, counts)
}
