package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/ai"
	"github.com/abyssmaljib/irene-training/internal/domain"
	"github.com/abyssmaljib/irene-training/internal/repository"
	"github.com/abyssmaljib/irene-training/internal/shift"
)

// ShiftSummaryRequest identifies one resident-shift to summarize.
// CurrentFormData carries what the caregiver has typed but not yet saved.
type ShiftSummaryRequest struct {
	ResidentID      int64                   `json:"resident_id"`
	ResidentName    string                  `json:"resident_name"`
	Date            string                  `json:"date"`  // YYYY-MM-DD, Thai calendar day
	Shift           string                  `json:"shift"` // เวรเช้า | เวรดึก
	NursingHomeID   int64                   `json:"nursinghome_id"`
	CurrentFormData *domain.CurrentFormData `json:"current_form_data,omitempty"`
}

// ShiftSummaryDebug is returned alongside the summary so ops can verify
// which window was used and what each query found.
type ShiftSummaryDebug struct {
	TimeRange       map[string]string `json:"timeRange"`
	RecordCounts    map[string]int    `json:"recordCounts"`
	QueryErrors     map[string]string `json:"queryErrors,omitempty"`
	InputDate       string            `json:"inputDate"`
	InputShift      string            `json:"inputShift"`
	InputResidentID int64             `json:"inputResidentId"`
}

type ShiftSummaryResponse struct {
	Content string             `json:"content"`
	Debug   *ShiftSummaryDebug `json:"debug,omitempty"`
}

// ShiftSummaryService aggregates one shift's records and has the model
// write the report.
type ShiftSummaryService struct {
	config    repository.AIConfigRepo
	records   repository.ShiftRecordsRepo
	generator ai.Generator
	logger    *zap.Logger
}

func NewShiftSummaryService(
	config repository.AIConfigRepo,
	records repository.ShiftRecordsRepo,
	generator ai.Generator,
	logger *zap.Logger,
) *ShiftSummaryService {
	return &ShiftSummaryService{
		config:    config,
		records:   records,
		generator: generator,
		logger:    logger,
	}
}

// Generate builds the shift document and summarizes it. A shift with no
// recorded activity returns the sentinel directly, without a model call.
func (s *ShiftSummaryService) Generate(ctx context.Context, req ShiftSummaryRequest) (*ShiftSummaryResponse, error) {
	prompt, sources := s.loadConfig(ctx)

	window, err := shift.ComputeWindow(req.Date, req.Shift)
	if err != nil {
		return nil, fmt.Errorf("failed to compute shift window: %w", err)
	}

	s.logger.Info("generating shift summary",
		zap.Int64("resident_id", req.ResidentID),
		zap.String("date", req.Date),
		zap.String("shift", req.Shift),
		zap.Time("window_start", window.Start),
		zap.Time("window_end", window.End),
	)

	results, queryErrors := s.fetchCategories(ctx, req.ResidentID, window.Start, window.End, sources)

	document := shift.BuildDocument(results, req.CurrentFormData)

	debug := &ShiftSummaryDebug{
		TimeRange: map[string]string{
			"start": window.Start.Format(time.RFC3339),
			"end":   window.End.Format(time.RFC3339),
		},
		RecordCounts:    results.Counts(),
		QueryErrors:     queryErrors,
		InputDate:       req.Date,
		InputShift:      req.Shift,
		InputResidentID: req.ResidentID,
	}

	if document == shift.NoActivitySentinel {
		s.logger.Info("no shift data found, skipping model call",
			zap.Int64("resident_id", req.ResidentID))
		return &ShiftSummaryResponse{Content: shift.NoActivitySentinel, Debug: debug}, nil
	}

	residentName := req.ResidentName
	if residentName == "" {
		residentName = "ไม่ระบุชื่อ"
	}
	finalPrompt := strings.NewReplacer(
		"{{RESIDENT_NAME}}", residentName,
		"{{SHIFT}}", req.Shift,
		"{{DATE}}", req.Date,
		"{{DATA}}", document,
	).Replace(prompt)

	content, err := s.generator.Generate(ctx, ai.Request{
		Prompt:      finalPrompt,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate shift summary: %w", err)
	}

	return &ShiftSummaryResponse{Content: content, Debug: debug}, nil
}

// loadConfig reads the prompt and data-source toggles, both falling back to
// defaults when absent or unreadable.
func (s *ShiftSummaryService) loadConfig(ctx context.Context) (string, shift.DataSourceConfig) {
	var (
		wg         sync.WaitGroup
		prompt     = defaultShiftSummaryPrompt
		sourcesRaw string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		value, err := s.config.GetValue(ctx, repository.ConfigKeySummaryPrompt)
		if err != nil {
			s.logger.Warn("failed to load summary prompt, using default", zap.Error(err))
			return
		}
		if value != "" {
			prompt = value
		}
	}()
	go func() {
		defer wg.Done()
		value, err := s.config.GetValue(ctx, repository.ConfigKeySummaryDataSource)
		if err != nil {
			s.logger.Warn("failed to load data sources config, using defaults", zap.Error(err))
			return
		}
		sourcesRaw = value
	}()
	wg.Wait()

	return prompt, shift.ParseDataSources(sourcesRaw)
}

// fetchCategories runs every enabled category query concurrently. A failed
// category logs, records its error for the debug block, and contributes
// nothing; it never fails the whole summary.
func (s *ShiftSummaryService) fetchCategories(
	ctx context.Context,
	residentID int64,
	start, end time.Time,
	sources shift.DataSourceConfig,
) (shift.CategoryResults, map[string]string) {
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		results     shift.CategoryResults
		queryErrors = map[string]string{}
	)

	fail := func(category string, err error) {
		s.logger.Error("shift category query failed",
			zap.String("category", category), zap.Error(err))
		mu.Lock()
		queryErrors[category] = err.Error()
		mu.Unlock()
	}
	run := func(enabled bool, category string, fetch func() error) {
		if !enabled {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				fail(category, err)
			}
		}()
	}

	run(sources.VitalSigns, "vital_signs", func() error {
		records, err := s.records.VitalSigns(ctx, residentID, start, end)
		results.VitalSigns = records
		return err
	})
	run(sources.TaskLogs, "task_logs", func() error {
		records, err := s.records.TaskLogs(ctx, residentID, start, end)
		results.TaskLogs = records
		return err
	})
	run(sources.MedLogs, "med_logs", func() error {
		records, err := s.records.MedLogs(ctx, residentID, start, end)
		results.MedLogs = records
		return err
	})
	run(sources.Posts, "posts", func() error {
		records, err := s.records.Posts(ctx, residentID, start, end)
		results.Posts = records
		return err
	})
	run(sources.SOAPNotes, "soap_notes", func() error {
		records, err := s.records.SOAPNotes(ctx, residentID, start, end)
		results.SOAPNotes = records
		return err
	})
	run(sources.BowelMovements, "bowel_movements", func() error {
		records, err := s.records.BowelMovements(ctx, residentID, start, end)
		results.BowelMovements = records
		return err
	})
	run(sources.ScaleReports, "scale_reports", func() error {
		records, err := s.records.ScaleReports(ctx, residentID, start, end)
		results.ScaleReports = records
		return err
	})
	run(sources.MedErrors, "med_errors", func() error {
		records, err := s.records.MedErrors(ctx, residentID, start, end)
		results.MedErrors = records
		return err
	})
	run(sources.Calendars, "calendars", func() error {
		records, err := s.records.Calendars(ctx, residentID, start, end)
		results.Calendars = records
		return err
	})
	run(sources.AbnormalValues, "abnormal_values", func() error {
		records, err := s.records.AbnormalValues(ctx, residentID, start, end)
		results.AbnormalValues = records
		return err
	})

	wg.Wait()

	if len(queryErrors) == 0 {
		queryErrors = nil
	}
	return results, queryErrors
}
