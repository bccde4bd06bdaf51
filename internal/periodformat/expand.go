package periodformat

// ExpandSubjects pairs unit i of codes with subjects[i] and maps every slot
// position the unit occupies to that subject. Units without a subject, because
// the list is short or the entry is blank, and empty units are left out of the
// result.
func ExpandSubjects(codes []int, subjects []string) map[int]string {
	assigned := make(map[int]string, SlotCount)
	walk(codes, func(pos, unit int, t SlotType) {
		if !t.Teaching() || unit >= len(subjects) || subjects[unit] == "" {
			return
		}
		assigned[pos] = subjects[unit]
	})
	return assigned
}

// Summary describes how a day's codes decode.
type Summary struct {
	Classes int `json:"classes" yaml:"classes"`
	Labs    int `json:"labs" yaml:"labs"`
	Empty   int `json:"empty" yaml:"empty"`
	// Dropped counts trailing codes the walk never reached.
	Dropped      int  `json:"dropped" yaml:"dropped"`
	TruncatedLab bool `json:"truncatedLab" yaml:"truncatedLab"`
}

// Units is the number of codes consumed by the walk.
func (s Summary) Units() int {
	return s.Classes + s.Labs + s.Empty
}

// Degraded reports whether decoding had to discard or shorten anything.
func (s Summary) Degraded() bool {
	return s.Dropped > 0 || s.TruncatedLab
}

// Summarize walks codes the same way DecodeDay does and counts the units.
func Summarize(codes []int) Summary {
	var summary Summary
	lastUnit := -1
	consumed, truncated := walk(codes, func(_ int, unit int, t SlotType) {
		if unit == lastUnit {
			return
		}
		lastUnit = unit
		switch t {
		case Class:
			summary.Classes++
		case Lab:
			summary.Labs++
		case Empty:
			summary.Empty++
		}
	})
	summary.Dropped = len(codes) - consumed
	summary.TruncatedLab = truncated
	return summary
}
