package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/manish-107/CollegeCAT-sub000/internal/periodformat"
)

// Format stores the compressed unit codes of every weekday for one academic
// year and batch.
type Format struct {
	Name    string            `json:"format_name" yaml:"format_name"`
	YearID  int               `json:"year_id" yaml:"year_id"`
	BatchID int               `json:"batch_id" yaml:"batch_id"`
	Days    map[Weekday][]int `json:"format_data" yaml:"format_data"`
}

// Codes returns the codes stored for day, nil when the day is absent.
func (f *Format) Codes(day Weekday) []int {
	if f == nil {
		return nil
	}
	return f.Days[day]
}

// Timetable attaches one subject per unit to a format.
type Timetable struct {
	FormatName string               `json:"format_name,omitempty" yaml:"format_name,omitempty"`
	YearID     int                  `json:"year_id" yaml:"year_id"`
	BatchID    int                  `json:"batch_id" yaml:"batch_id"`
	Days       map[Weekday][]string `json:"timetable_data" yaml:"timetable_data"`
}

// Subjects returns the subject list stored for day.
func (t *Timetable) Subjects(day Weekday) []string {
	if t == nil {
		return nil
	}
	return t.Days[day]
}

// Period is one decoded slot of a day.
type Period struct {
	Position int                   `json:"position" yaml:"position"`
	Start    string                `json:"start" yaml:"start"`
	End      string                `json:"end" yaml:"end"`
	Type     periodformat.SlotType `json:"type" yaml:"type"`
	Label    string                `json:"label,omitempty" yaml:"label,omitempty"`
	Subject  string                `json:"subject,omitempty" yaml:"subject,omitempty"`
}

// DayView is the decoded schedule of one weekday.
type DayView struct {
	Day     Weekday              `json:"day" yaml:"day"`
	Codes   []int                `json:"codes" yaml:"codes"`
	Periods []Period             `json:"periods" yaml:"periods"`
	Summary periodformat.Summary `json:"summary" yaml:"summary"`
}

// WeekView is the decoded schedule of every weekday in calendar order.
type WeekView struct {
	FormatName string    `json:"format_name,omitempty" yaml:"format_name,omitempty"`
	YearID     int       `json:"year_id,omitempty" yaml:"year_id,omitempty"`
	BatchID    int       `json:"batch_id,omitempty" yaml:"batch_id,omitempty"`
	Days       []DayView `json:"days" yaml:"days"`
}

// NewFormatName builds a display name for a freshly created format. The
// suffix keeps names unique when a batch is given several formats.
func NewFormatName(academicYear, section string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("Timetable Format - %s - %s - %s", academicYear, section, suffix)
}
