package dto

import "strings"

// EncodeFormatRequest carries the slot-by-slot layout of a week authored by a
// timetable coordinator. Each day lists exactly nine slot names.
type EncodeFormatRequest struct {
	Name         string              `json:"format_name" yaml:"format_name"`
	YearID       int                 `json:"year_id" yaml:"year_id" validate:"gte=0"`
	BatchID      int                 `json:"batch_id" yaml:"batch_id" validate:"gte=0"`
	AcademicYear string              `json:"academic_year" yaml:"academic_year"`
	Section      string              `json:"section" yaml:"section"`
	Days         map[string][]string `json:"days" yaml:"days" validate:"required,min=1,dive,keys,oneof=monday tuesday wednesday thursday friday saturday,endkeys,len=9,dive,oneof=empty class lab break"`
}

// Normalized returns a copy of the request with weekday keys and slot names
// trimmed and lowercased.
func (r EncodeFormatRequest) Normalized() EncodeFormatRequest {
	if r.Days == nil {
		return r
	}
	days := make(map[string][]string, len(r.Days))
	for day, names := range r.Days {
		slots := make([]string, len(names))
		for i, name := range names {
			slots[i] = strings.ToLower(strings.TrimSpace(name))
		}
		days[strings.ToLower(strings.TrimSpace(day))] = slots
	}
	r.Days = days
	return r
}
