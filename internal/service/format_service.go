package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/manish-107/CollegeCAT-sub000/internal/dto"
	"github.com/manish-107/CollegeCAT-sub000/internal/models"
	"github.com/manish-107/CollegeCAT-sub000/internal/periodformat"
	appErrors "github.com/manish-107/CollegeCAT-sub000/pkg/errors"
)

const (
	operationDecode = "decode"
	operationExpand = "expand"
)

// FormatService encodes coordinator-authored weeks into formats and decodes
// stored formats into per-day period views.
type FormatService struct {
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewFormatService wires format dependencies.
func NewFormatService(validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *FormatService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormatService{
		validator: validate,
		metrics:   metrics,
		logger:    logger,
	}
}

// EncodeWeek compresses every day of req into a format. Days missing from the
// request are stored with no units.
func (s *FormatService) EncodeWeek(req dto.EncodeFormatRequest) (*models.Format, error) {
	req = req.Normalized()
	if err := s.validator.Struct(req); err != nil {
		s.metrics.ObserveValidationFailure("payload")
		return nil, appErrors.Validation(err, "invalid format payload")
	}

	format := &models.Format{
		Name:    req.Name,
		YearID:  req.YearID,
		BatchID: req.BatchID,
		Days:    make(map[models.Weekday][]int, len(models.Weekdays())),
	}
	if format.Name == "" {
		format.Name = models.NewFormatName(req.AcademicYear, req.Section)
	}

	for _, day := range models.Weekdays() {
		names, ok := req.Days[string(day)]
		if !ok {
			format.Days[day] = []int{}
			continue
		}
		codes, err := s.encodeDay(day, names)
		if err != nil {
			return nil, err
		}
		format.Days[day] = codes
		s.metrics.ObserveEncoded()
	}

	s.logger.Debug("format encoded",
		zap.String("format_name", format.Name),
		zap.Int("year_id", format.YearID),
		zap.Int("batch_id", format.BatchID),
	)
	return format, nil
}

func (s *FormatService) encodeDay(day models.Weekday, names []string) ([]int, error) {
	slots := make([]periodformat.SlotType, len(names))
	for i, name := range names {
		slot, err := periodformat.ParseSlotType(name)
		if err != nil {
			s.metrics.ObserveValidationFailure("payload")
			return nil, appErrors.Validation(err, string(day))
		}
		slots[i] = slot
	}

	codes, err := periodformat.EncodeDay(slots)
	if err != nil {
		s.metrics.ObserveValidationFailure(failureReason(err))
		s.logger.Info("day rejected", zap.String("day", string(day)), zap.Error(err))
		return nil, appErrors.Validation(err, string(day))
	}
	return codes, nil
}

// DecodeWeek expands every weekday of format. Malformed code sequences never
// fail; the affected days are logged and counted as degraded.
func (s *FormatService) DecodeWeek(format *models.Format) (*models.WeekView, error) {
	if format == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format is required")
	}
	if err := checkWeekdays(format.Days); err != nil {
		return nil, err
	}

	view := newWeekView(format)
	for _, day := range models.Weekdays() {
		codes := format.Codes(day)
		dayView := buildDayView(day, codes, nil)
		if dayView.Summary.Degraded() {
			s.metrics.ObserveDegraded(operationDecode)
			s.logger.Warn("format day partially decoded",
				zap.String("format_name", format.Name),
				zap.String("day", string(day)),
				zap.Ints("codes", codes),
				zap.Int("dropped", dayView.Summary.Dropped),
				zap.Bool("truncated_lab", dayView.Summary.TruncatedLab),
			)
		}
		s.metrics.ObserveDecoded()
		view.Days = append(view.Days, dayView)
	}
	return view, nil
}

// ExpandTimetable decodes format and places the subjects of timetable into the
// periods each unit occupies. Units without a subject stay unlabeled.
func (s *FormatService) ExpandTimetable(format *models.Format, timetable *models.Timetable) (*models.WeekView, error) {
	if format == nil || timetable == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format and timetable are required")
	}
	if err := checkWeekdays(format.Days); err != nil {
		return nil, err
	}
	if err := checkWeekdays(timetable.Days); err != nil {
		return nil, err
	}
	if mismatched(format.YearID, timetable.YearID) || mismatched(format.BatchID, timetable.BatchID) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "timetable belongs to a different academic year or batch")
	}

	view := newWeekView(format)
	for _, day := range models.Weekdays() {
		codes := format.Codes(day)
		subjects := timetable.Subjects(day)
		dayView := buildDayView(day, codes, periodformat.ExpandSubjects(codes, subjects))

		unlabeled := 0
		for _, period := range dayView.Periods {
			if period.Type.Teaching() && period.Subject == "" {
				unlabeled++
			}
		}
		if unlabeled > 0 || dayView.Summary.Degraded() {
			s.metrics.ObserveDegraded(operationExpand)
			s.logger.Warn("timetable day partially expanded",
				zap.String("format_name", format.Name),
				zap.String("day", string(day)),
				zap.Int("units", dayView.Summary.Units()),
				zap.Int("subjects", len(subjects)),
				zap.Int("unlabeled_periods", unlabeled),
			)
		}
		s.metrics.ObserveDecoded()
		view.Days = append(view.Days, dayView)
	}
	return view, nil
}

func newWeekView(format *models.Format) *models.WeekView {
	return &models.WeekView{
		FormatName: format.Name,
		YearID:     format.YearID,
		BatchID:    format.BatchID,
		Days:       make([]models.DayView, 0, len(models.Weekdays())),
	}
}

func buildDayView(day models.Weekday, codes []int, subjects map[int]string) models.DayView {
	decoded := periodformat.DecodeDay(codes)
	periods := make([]models.Period, 0, periodformat.SlotCount)
	for _, slot := range periodformat.Slots() {
		periods = append(periods, models.Period{
			Position: slot.Position,
			Start:    slot.Start,
			End:      slot.End,
			Type:     decoded[slot.Position],
			Label:    slot.Label,
			Subject:  subjects[slot.Position],
		})
	}
	stored := make([]int, len(codes))
	copy(stored, codes)
	return models.DayView{
		Day:     day,
		Codes:   stored,
		Periods: periods,
		Summary: periodformat.Summarize(codes),
	}
}

func checkWeekdays[V any](days map[models.Weekday]V) error {
	var unknown []string
	for day := range days {
		if !day.Valid() {
			unknown = append(unknown, string(day))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown weekdays: %v", unknown))
}

func mismatched(a, b int) bool {
	return a != 0 && b != 0 && a != b
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, periodformat.ErrWrongSlotCount):
		return "wrong_slot_count"
	case errors.Is(err, periodformat.ErrBreakPositionMismatch):
		return "break_position_mismatch"
	case errors.Is(err, periodformat.ErrInvalidLabBlock):
		return "invalid_lab_block"
	case errors.Is(err, periodformat.ErrUnknownSlotType):
		return "unknown_slot_type"
	default:
		return "other"
	}
}
