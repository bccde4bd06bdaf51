package periodformat

// placeFunc receives every teaching position a unit occupies.
type placeFunc func(pos, unit int, t SlotType)

// walk expands codes over the day with two cursors: pos over the output slots
// and unit over codes. Breaks consume no code. A lab claims the next LabLength
// non-break positions and may stop short at the end of the day. The walk ends at
// the first code it does not recognise. It returns the number of codes consumed
// and whether a lab was cut short.
func walk(codes []int, place placeFunc) (consumed int, truncated bool) {
	pos, unit := 0, 0
	for pos < SlotCount && unit < len(codes) {
		if IsBreak(pos) {
			pos++
			continue
		}
		switch codes[unit] {
		case CodeLab:
			filled := 0
			for ; filled < LabLength && pos < SlotCount; pos++ {
				if IsBreak(pos) {
					continue
				}
				place(pos, unit, Lab)
				filled++
			}
			if filled < LabLength {
				truncated = true
			}
		case CodeClass:
			place(pos, unit, Class)
			pos++
		case CodeEmpty:
			place(pos, unit, Empty)
			pos++
		default:
			return unit, truncated
		}
		unit++
	}
	return unit, truncated
}

// DecodeDay expands compressed codes into exactly SlotCount slot types. It never
// fails: unknown codes end the walk, and every position not reached is Empty
// (or Break at a break position).
//
// A CodeEmpty is an empty unit: it occupies the next non-break position and
// leaves it Empty, so the units after it shift right by one slot.
func DecodeDay(codes []int) []SlotType {
	out := make([]SlotType, SlotCount)
	for pos := range out {
		if IsBreak(pos) {
			out[pos] = Break
		}
	}
	walk(codes, func(pos, _ int, t SlotType) {
		out[pos] = t
	})
	return out
}
