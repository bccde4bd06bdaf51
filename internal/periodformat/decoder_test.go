package periodformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	E = Empty
	C = Class
	L = Lab
	B = Break
)

func TestDecodeDayTracesDualCursorWalk(t *testing.T) {
	got := DecodeDay([]int{1, 3, 1})
	assert.Equal(t, []SlotType{C, L, B, L, L, B, C, E, E}, got)
}

func TestDecodeDay(t *testing.T) {
	cases := []struct {
		name  string
		codes []int
		want  []SlotType
	}{
		{name: "nil", codes: nil, want: []SlotType{E, E, B, E, E, B, E, E, E}},
		{name: "empty", codes: []int{}, want: []SlotType{E, E, B, E, E, B, E, E, E}},
		{name: "full classes", codes: []int{1, 1, 1, 1, 1, 1, 1}, want: []SlotType{C, C, B, C, C, B, C, C, C}},
		{name: "afternoon lab", codes: []int{1, 1, 1, 1, 3}, want: []SlotType{C, C, B, C, C, B, L, L, L}},
		{name: "leading lab spans morning break", codes: []int{3, 1}, want: []SlotType{L, L, B, L, C, B, E, E, E}},
		{name: "lab spans lunch break", codes: []int{1, 1, 1, 3}, want: []SlotType{C, C, B, C, L, B, L, L, E}},
		{name: "explicit empties", codes: []int{0, 1, 0, 0, 3}, want: []SlotType{E, C, B, E, E, B, L, L, L}},
		{name: "lab cut short at end of day", codes: []int{1, 1, 1, 1, 1, 3}, want: []SlotType{C, C, B, C, C, B, C, L, L}},
		{name: "unknown code stops walk", codes: []int{1, 2, 1}, want: []SlotType{C, E, B, E, E, B, E, E, E}},
		{name: "negative code stops walk", codes: []int{-1, 1}, want: []SlotType{E, E, B, E, E, B, E, E, E}},
		{name: "overflow is dropped", codes: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 3}, want: []SlotType{C, C, B, C, C, B, C, C, C}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeDay(tc.codes))
		})
	}
}

func TestDecodeDayInvariants(t *testing.T) {
	inputs := [][]int{nil, {}, {3, 3, 3}, {1, 3, 1}, {7, 7}, {0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, {3, 1, 3}, {1, 0, 3, 1, 3}}
	for code := -1; code <= 4; code++ {
		for other := -1; other <= 4; other++ {
			inputs = append(inputs, []int{code, other, code, other})
		}
	}

	for _, codes := range inputs {
		out := DecodeDay(codes)
		require.Len(t, out, SlotCount, "codes %v", codes)
		for pos, slot := range out {
			assert.Equal(t, IsBreak(pos), slot == Break, "codes %v pos %d", codes, pos)
		}
		assertLabContiguity(t, codes, out)
	}
}

// assertLabContiguity checks that every lab run covers LabLength non-break
// positions unless it was cut short by the end of the day.
func assertLabContiguity(t *testing.T, codes []int, out []SlotType) {
	t.Helper()
	teaching := make([]int, 0, SlotCount)
	for pos := range out {
		if !IsBreak(pos) {
			teaching = append(teaching, pos)
		}
	}
	for i := 0; i < len(teaching); {
		if out[teaching[i]] != Lab {
			i++
			continue
		}
		run := 0
		for i < len(teaching) && out[teaching[i]] == Lab {
			run++
			i++
		}
		if i < len(teaching) {
			assert.Zero(t, run%LabLength, "codes %v: lab run of %d", codes, run)
		}
	}
}

func TestSummarize(t *testing.T) {
	cases := []struct {
		name  string
		codes []int
		want  Summary
	}{
		{name: "empty", codes: nil, want: Summary{}},
		{name: "mixed", codes: []int{1, 3, 1}, want: Summary{Classes: 2, Labs: 1}},
		{name: "zeros", codes: []int{0, 0, 1}, want: Summary{Classes: 1, Empty: 2}},
		{name: "unknown code", codes: []int{1, 2, 1}, want: Summary{Classes: 1, Dropped: 2}},
		{name: "overflow", codes: []int{1, 1, 1, 1, 1, 1, 1, 1}, want: Summary{Classes: 7, Dropped: 1}},
		{name: "truncated lab", codes: []int{1, 1, 1, 1, 1, 3}, want: Summary{Classes: 5, Labs: 1, TruncatedLab: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.codes)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Dropped > 0 || tc.want.TruncatedLab, got.Degraded())
		})
	}
}
