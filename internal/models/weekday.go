package models

import (
	"fmt"
	"strings"
)

// Weekday is the lowercase day key used by formats and timetables.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

var weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Weekdays returns the teaching days in calendar order.
func Weekdays() []Weekday {
	out := make([]Weekday, len(weekdays))
	copy(out, weekdays)
	return out
}

// ParseWeekday normalises raw into a Weekday.
func ParseWeekday(raw string) (Weekday, error) {
	day := Weekday(strings.ToLower(strings.TrimSpace(raw)))
	if !day.Valid() {
		return "", fmt.Errorf("unknown weekday %q", raw)
	}
	return day, nil
}

// Valid reports whether d is one of the teaching days.
func (d Weekday) Valid() bool {
	for _, candidate := range weekdays {
		if candidate == d {
			return true
		}
	}
	return false
}

// Title returns the capitalised day name.
func (d Weekday) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}
