package formatfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manish-107/CollegeCAT-sub000/internal/models"
	appErrors "github.com/manish-107/CollegeCAT-sub000/pkg/errors"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFormatJSON(t *testing.T) {
	path := writeTemp(t, "format.json", `{
  "format_name": "Standard",
  "year_id": 1,
  "batch_id": 2,
  "format_data": {"monday": [1, 3, 1], "saturday": []}
}`)

	format, err := LoadFormat(path)
	require.NoError(t, err)
	assert.Equal(t, "Standard", format.Name)
	assert.Equal(t, []int{1, 3, 1}, format.Codes(models.Monday))
}

func TestLoadTimetableYAML(t *testing.T) {
	path := writeTemp(t, "timetable.yml", `
year_id: 1
batch_id: 2
timetable_data:
  monday: [NoSQL, "C#.NET", AWT, CN, Lab]
  saturday: ["", ""]
`)

	timetable, err := LoadTimetable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"NoSQL", "C#.NET", "AWT", "CN", "Lab"}, timetable.Subjects(models.Monday))
	assert.Equal(t, []string{"", ""}, timetable.Subjects(models.Saturday))
}

func TestLoadLayoutYAML(t *testing.T) {
	path := writeTemp(t, "week.yaml", `
academic_year: "2024-2025"
section: A
days:
  monday: [class, class, break, class, class, break, lab, lab, lab]
`)

	layout, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-2025", layout.AcademicYear)
	assert.Len(t, layout.Days["monday"], 9)
}

func TestReadRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		file string
		body string
	}{
		{name: "extension", file: "format.txt", body: `{}`},
		{name: "unknown field", file: "format.json", body: `{"format_data": {}, "colour": "red"}`},
		{name: "broken yaml", file: "format.yaml", body: "format_data: [1, 2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFormat(writeTemp(t, tc.file, tc.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, appErrors.ErrInvalidDocument)
		})
	}

	_, err := LoadFormat(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, appErrors.ErrInvalidDocument)
}

func TestWriteFileRoundTrip(t *testing.T) {
	format := &models.Format{
		Name: "Standard",
		Days: map[models.Weekday][]int{models.Monday: {1, 1, 1, 1, 3}},
	}

	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, WriteFile(path, format))

		loaded, err := LoadFormat(path)
		require.NoError(t, err)
		assert.Equal(t, format, loaded)
	}
}

func TestWriteUnsupportedEncoding(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, struct{}{}, "toml"))
}
