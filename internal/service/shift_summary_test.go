package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/domain"
	"github.com/abyssmaljib/irene-training/internal/shift"
)

// fakeShiftRecords serves canned records per category and can fail
// individual categories.
type fakeShiftRecords struct {
	vitalSigns []domain.VitalSignRecord
	posts      []domain.PostRecord
	medLogs    []domain.MedLogRecord
	errs       map[string]error

	gotStart, gotEnd time.Time
}

func (f *fakeShiftRecords) VitalSigns(ctx context.Context, id int64, start, end time.Time) ([]domain.VitalSignRecord, error) {
	f.gotStart, f.gotEnd = start, end
	return f.vitalSigns, f.errs["vital_signs"]
}
func (f *fakeShiftRecords) TaskLogs(ctx context.Context, id int64, start, end time.Time) ([]domain.TaskLogRecord, error) {
	return nil, f.errs["task_logs"]
}
func (f *fakeShiftRecords) MedLogs(ctx context.Context, id int64, start, end time.Time) ([]domain.MedLogRecord, error) {
	return f.medLogs, f.errs["med_logs"]
}
func (f *fakeShiftRecords) Posts(ctx context.Context, id int64, start, end time.Time) ([]domain.PostRecord, error) {
	return f.posts, f.errs["posts"]
}
func (f *fakeShiftRecords) SOAPNotes(ctx context.Context, id int64, start, end time.Time) ([]domain.SOAPNoteRecord, error) {
	return nil, f.errs["soap_notes"]
}
func (f *fakeShiftRecords) BowelMovements(ctx context.Context, id int64, start, end time.Time) ([]domain.BowelMovementRecord, error) {
	return nil, f.errs["bowel_movements"]
}
func (f *fakeShiftRecords) ScaleReports(ctx context.Context, id int64, start, end time.Time) ([]domain.ScaleReportRecord, error) {
	return nil, f.errs["scale_reports"]
}
func (f *fakeShiftRecords) MedErrors(ctx context.Context, id int64, start, end time.Time) ([]domain.MedErrorRecord, error) {
	return nil, f.errs["med_errors"]
}
func (f *fakeShiftRecords) Calendars(ctx context.Context, id int64, start, end time.Time) ([]domain.CalendarRecord, error) {
	return nil, f.errs["calendars"]
}
func (f *fakeShiftRecords) AbnormalValues(ctx context.Context, id int64, start, end time.Time) ([]domain.AbnormalValueRecord, error) {
	return nil, f.errs["abnormal_values"]
}

func str(s string) *string { return &s }

func morningRecord() domain.VitalSignRecord {
	return domain.VitalSignRecord{
		SBP: str("120"), DBP: str("80"),
		CreatedAt: time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC),
	}
}

func newSummaryService(records *fakeShiftRecords, gen *fakeGenerator, config *fakeConfigRepo) *ShiftSummaryService {
	if config == nil {
		config = &fakeConfigRepo{values: map[string]string{}}
	}
	return NewShiftSummaryService(config, records, gen, zap.NewNop())
}

func TestShiftSummaryGenerate(t *testing.T) {
	records := &fakeShiftRecords{vitalSigns: []domain.VitalSignRecord{morningRecord()}}
	gen := &fakeGenerator{response: "ผู้พักอาการทั่วไปปกติ ความดัน 120/80 ค่ะ"}
	svc := newSummaryService(records, gen, nil)

	resp, err := svc.Generate(context.Background(), ShiftSummaryRequest{
		ResidentID:   42,
		ResidentName: "คุณยายสมศรี",
		Date:         "2024-03-10",
		Shift:        shift.ShiftMorning,
	})
	require.NoError(t, err)

	assert.Equal(t, "ผู้พักอาการทั่วไปปกติ ความดัน 120/80 ค่ะ", resp.Content)

	// morning shift is 07:00-19:00 Thai time = 00:00-12:00 UTC
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), records.gotStart.UTC())
	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), records.gotEnd.UTC())

	// prompt carries the substituted placeholders and the shift data
	assert.Contains(t, gen.lastReq.Prompt, "คุณยายสมศรี")
	assert.Contains(t, gen.lastReq.Prompt, "2024-03-10")
	assert.Contains(t, gen.lastReq.Prompt, "BP 120/80")
	assert.NotContains(t, gen.lastReq.Prompt, "{{RESIDENT_NAME}}")

	require.NotNil(t, resp.Debug)
	assert.Equal(t, 1, resp.Debug.RecordCounts["vital_signs"])
	assert.Empty(t, resp.Debug.QueryErrors)
}

func TestShiftSummaryNoActivitySkipsModel(t *testing.T) {
	records := &fakeShiftRecords{}
	gen := &fakeGenerator{response: "should not be called"}
	svc := newSummaryService(records, gen, nil)

	resp, err := svc.Generate(context.Background(), ShiftSummaryRequest{
		ResidentID: 42,
		Date:       "2024-03-10",
		Shift:      shift.ShiftNight,
	})
	require.NoError(t, err)

	assert.Equal(t, shift.NoActivitySentinel, resp.Content)
	assert.Empty(t, gen.lastReq.Prompt)
}

func TestShiftSummaryCategoryFailureIsIsolated(t *testing.T) {
	records := &fakeShiftRecords{
		vitalSigns: []domain.VitalSignRecord{morningRecord()},
		errs:       map[string]error{"posts": errors.New("relation missing")},
	}
	gen := &fakeGenerator{response: "สรุปค่ะ"}
	svc := newSummaryService(records, gen, nil)

	resp, err := svc.Generate(context.Background(), ShiftSummaryRequest{
		ResidentID: 42,
		Date:       "2024-03-10",
		Shift:      shift.ShiftMorning,
	})
	require.NoError(t, err)

	assert.Equal(t, "สรุปค่ะ", resp.Content)
	require.NotNil(t, resp.Debug)
	assert.Equal(t, "relation missing", resp.Debug.QueryErrors["posts"])
}

func TestShiftSummaryDisabledSourcesNotQueried(t *testing.T) {
	records := &fakeShiftRecords{
		vitalSigns: []domain.VitalSignRecord{morningRecord()},
		medLogs: []domain.MedLogRecord{{
			Meal:      str("เช้า"),
			CreatedAt: time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC),
		}},
	}
	gen := &fakeGenerator{response: "สรุปค่ะ"}
	config := &fakeConfigRepo{values: map[string]string{
		"shift_summary_data_sources": `{"med_logs": false}`,
	}}
	svc := newSummaryService(records, gen, config)

	resp, err := svc.Generate(context.Background(), ShiftSummaryRequest{
		ResidentID: 42,
		Date:       "2024-03-10",
		Shift:      shift.ShiftMorning,
	})
	require.NoError(t, err)

	assert.NotContains(t, gen.lastReq.Prompt, "การจัดยา")
	assert.Zero(t, resp.Debug.RecordCounts["med_logs"])
	assert.Equal(t, 1, resp.Debug.RecordCounts["vital_signs"])
}

func TestShiftSummaryCustomPrompt(t *testing.T) {
	records := &fakeShiftRecords{vitalSigns: []domain.VitalSignRecord{morningRecord()}}
	gen := &fakeGenerator{response: "ok"}
	config := &fakeConfigRepo{values: map[string]string{
		"shift_summary_prompt": "CUSTOM {{RESIDENT_NAME}} | {{DATA}}",
	}}
	svc := newSummaryService(records, gen, config)

	_, err := svc.Generate(context.Background(), ShiftSummaryRequest{
		ResidentID:   42,
		ResidentName: "สมศรี",
		Date:         "2024-03-10",
		Shift:        shift.ShiftMorning,
	})
	require.NoError(t, err)

	assert.Contains(t, gen.lastReq.Prompt, "CUSTOM สมศรี |")
	assert.Contains(t, gen.lastReq.Prompt, "BP 120/80")
}

func TestShiftSummaryInvalidDate(t *testing.T) {
	svc := newSummaryService(&fakeShiftRecords{}, &fakeGenerator{}, nil)

	_, err := svc.Generate(context.Background(), ShiftSummaryRequest{
		ResidentID: 42,
		Date:       "10/03/2024",
		Shift:      shift.ShiftMorning,
	})
	assert.Error(t, err)
}

func TestShiftSummaryFormDataIncluded(t *testing.T) {
	records := &fakeShiftRecords{}
	gen := &fakeGenerator{response: "สรุปค่ะ"}
	svc := newSummaryService(records, gen, nil)

	resp, err := svc.Generate(context.Background(), ShiftSummaryRequest{
		ResidentID: 42,
		Date:       "2024-03-10",
		Shift:      shift.ShiftMorning,
		CurrentFormData: &domain.CurrentFormData{
			VitalSigns:     map[string]string{"sBP": "130", "dBP": "85"},
			ReportTemplate: "วันนี้อารมณ์ดี ทานอาหารได้เอง",
		},
	})
	require.NoError(t, err)

	// form data alone is enough to call the model
	assert.Equal(t, "สรุปค่ะ", resp.Content)
	assert.Contains(t, gen.lastReq.Prompt, "BP 130/85")
	assert.Contains(t, gen.lastReq.Prompt, "วันนี้อารมณ์ดี ทานอาหารได้เอง")
}
