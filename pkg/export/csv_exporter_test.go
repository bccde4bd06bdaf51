package export

import (
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manish-107/CollegeCAT-sub000/internal/models"
	"github.com/manish-107/CollegeCAT-sub000/internal/periodformat"
)

func mondayView() *models.WeekView {
	codes := []int{1, 3, 1}
	decoded := periodformat.DecodeDay(codes)
	subjects := periodformat.ExpandSubjects(codes, []string{"CN", "AWT"})

	day := models.DayView{Day: models.Monday, Codes: codes}
	for _, slot := range periodformat.Slots() {
		day.Periods = append(day.Periods, models.Period{
			Position: slot.Position,
			Start:    slot.Start,
			End:      slot.End,
			Type:     decoded[slot.Position],
			Label:    slot.Label,
			Subject:  subjects[slot.Position],
		})
	}
	return &models.WeekView{FormatName: "Standard", Days: []models.DayView{day}}
}

func TestRenderPeriods(t *testing.T) {
	out, err := NewCSVExporter(0).RenderPeriods(mondayView())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 1+periodformat.SlotCount)
	assert.Equal(t, "day,position,start,end,type,label,subject", lines[0])
	assert.Equal(t, "monday,0,09:00,09:55,class,,CN", lines[1])
	assert.Equal(t, "monday,2,10:50,11:05,break,Morning Break,", lines[3])
	assert.Equal(t, "monday,6,14:00,14:55,class,,", lines[7])

	var rows []PeriodRow
	require.NoError(t, gocsv.UnmarshalBytes(out, &rows))
	assert.Equal(t, PeriodRows(mondayView()), rows)
}

func TestRenderGrid(t *testing.T) {
	out, err := NewCSVExporter(';').RenderGrid(mondayView())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Day;09:00-09:55;09:55-10:50;10:50-11:05;11:05-12:00;12:00-12:55;12:55-14:00;14:00-14:55;14:55-15:50;15:50-16:45", lines[0])
	assert.Equal(t, "Monday;CN;AWT;Morning Break;AWT;AWT;Lunch Break;Class;;", lines[1])
}

func TestRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter(',').Render(Dataset{})
	assert.Error(t, err)
}

func TestPeriodRowsNilWeek(t *testing.T) {
	assert.Empty(t, PeriodRows(nil))
	assert.Len(t, WeekGrid(nil).Headers, 1+periodformat.SlotCount)
}
