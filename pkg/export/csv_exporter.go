package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/manish-107/CollegeCAT-sub000/internal/models"
	"github.com/manish-107/CollegeCAT-sub000/internal/periodformat"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// PeriodRow is one decoded slot of one day in the long CSV layout.
type PeriodRow struct {
	Day      string `csv:"day"`
	Position int    `csv:"position"`
	Start    string `csv:"start"`
	End      string `csv:"end"`
	Type     string `csv:"type"`
	Label    string `csv:"label"`
	Subject  string `csv:"subject"`
}

// CSVExporter renders decoded weeks into CSV bytes.
type CSVExporter struct {
	delimiter rune
}

// NewCSVExporter builds a CSV exporter. A zero delimiter means comma.
func NewCSVExporter(delimiter rune) *CSVExporter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVExporter{delimiter: delimiter}
}

func (e *CSVExporter) newWriter(buf *bytes.Buffer) *csv.Writer {
	writer := csv.NewWriter(buf)
	writer.Comma = e.delimiter
	return writer
}

// RenderPeriods writes one row per day and slot.
func (e *CSVExporter) RenderPeriods(week *models.WeekView) ([]byte, error) {
	rows := PeriodRows(week)
	buf := &bytes.Buffer{}
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(e.newWriter(buf))); err != nil {
		return nil, fmt.Errorf("write period rows: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderGrid writes one row per day with a column per slot.
func (e *CSVExporter) RenderGrid(week *models.WeekView) ([]byte, error) {
	return e.Render(WeekGrid(week))
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	writer := e.newWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PeriodRows flattens week into rows in day then slot order.
func PeriodRows(week *models.WeekView) []PeriodRow {
	if week == nil {
		return []PeriodRow{}
	}
	rows := make([]PeriodRow, 0, len(week.Days)*periodformat.SlotCount)
	for _, day := range week.Days {
		for _, period := range day.Periods {
			rows = append(rows, PeriodRow{
				Day:      string(day.Day),
				Position: period.Position,
				Start:    period.Start,
				End:      period.End,
				Type:     period.Type.String(),
				Label:    period.Label,
				Subject:  period.Subject,
			})
		}
	}
	return rows
}

// WeekGrid lays week out as a day-by-slot table.
func WeekGrid(week *models.WeekView) Dataset {
	headers := []string{"Day"}
	for _, slot := range periodformat.Slots() {
		headers = append(headers, SlotHeader(slot))
	}
	data := Dataset{Headers: headers}
	if week == nil {
		return data
	}
	for _, day := range week.Days {
		row := map[string]string{"Day": day.Day.Title()}
		for _, period := range day.Periods {
			slot, ok := periodformat.SlotAt(period.Position)
			if !ok {
				continue
			}
			row[SlotHeader(slot)] = Cell(period)
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// SlotHeader is the column title of a slot.
func SlotHeader(slot periodformat.Slot) string {
	return slot.Start + "-" + slot.End
}

// Cell is the text shown for a period in grid layouts: the subject when one is
// attached, otherwise the break label or slot type.
func Cell(period models.Period) string {
	switch {
	case period.Type == periodformat.Break:
		return period.Label
	case period.Subject != "":
		return period.Subject
	case period.Type == periodformat.Empty:
		return ""
	default:
		return period.Type.Title()
	}
}
