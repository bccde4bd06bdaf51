// Package periodformat holds the compressed period format used to describe the
// shape of a teaching day, together with the encoder and decoder that convert
// between the compressed codes and a slot-by-slot schedule.
package periodformat

// SlotCount is the number of fixed time slots in a teaching day.
const SlotCount = 9

// LabLength is the number of non-break slots a lab unit occupies.
const LabLength = 3

// Unit codes stored in a format.
const (
	CodeEmpty = 0
	CodeClass = 1
	CodeLab   = 3
)

// Slot describes one fixed position of the teaching day.
type Slot struct {
	Position int    `json:"position" yaml:"position"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Break    bool   `json:"break" yaml:"break"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
}

var day = [SlotCount]Slot{
	{Position: 0, Start: "09:00", End: "09:55"},
	{Position: 1, Start: "09:55", End: "10:50"},
	{Position: 2, Start: "10:50", End: "11:05", Break: true, Label: "Morning Break"},
	{Position: 3, Start: "11:05", End: "12:00"},
	{Position: 4, Start: "12:00", End: "12:55"},
	{Position: 5, Start: "12:55", End: "14:00", Break: true, Label: "Lunch Break"},
	{Position: 6, Start: "14:00", End: "14:55"},
	{Position: 7, Start: "14:55", End: "15:50"},
	{Position: 8, Start: "15:50", End: "16:45"},
}

// IsBreak reports whether pos is one of the fixed break positions.
func IsBreak(pos int) bool {
	return pos >= 0 && pos < SlotCount && day[pos].Break
}

// BreakPositions returns the fixed break positions in ascending order.
func BreakPositions() []int {
	positions := make([]int, 0, 2)
	for _, slot := range day {
		if slot.Break {
			positions = append(positions, slot.Position)
		}
	}
	return positions
}

// Slots returns a copy of the day's slot table.
func Slots() []Slot {
	out := make([]Slot, SlotCount)
	copy(out, day[:])
	return out
}

// SlotAt returns the slot at pos.
func SlotAt(pos int) (Slot, bool) {
	if pos < 0 || pos >= SlotCount {
		return Slot{}, false
	}
	return day[pos], true
}

// TeachingSlots is the number of positions that can carry a unit.
func TeachingSlots() int {
	return SlotCount - len(BreakPositions())
}
