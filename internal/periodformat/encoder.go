package periodformat

// EncodeDay compresses a day of exactly SlotCount slot types into unit codes.
//
// Each Class becomes CodeClass and each lab run becomes a single CodeLab. Empty
// slots become CodeEmpty only when a later unit follows them, so a day whose
// units are packed to the left encodes without any zeros.
func EncodeDay(slots []SlotType) ([]int, error) {
	if len(slots) != SlotCount {
		return nil, invalid(ErrWrongSlotCount, len(slots))
	}
	for pos, t := range slots {
		if t < Empty || t > Break {
			return nil, invalid(ErrUnknownSlotType, pos)
		}
		if IsBreak(pos) != (t == Break) {
			return nil, invalid(ErrBreakPositionMismatch, pos)
		}
	}

	codes := make([]int, 0, SlotCount)
	pendingEmpty := 0
	emit := func(code int) {
		for ; pendingEmpty > 0; pendingEmpty-- {
			codes = append(codes, CodeEmpty)
		}
		codes = append(codes, code)
	}

	for pos := 0; pos < SlotCount; {
		switch slots[pos] {
		case Break:
			pos++
		case Empty:
			pendingEmpty++
			pos++
		case Class:
			emit(CodeClass)
			pos++
		case Lab:
			if err := checkLabRun(slots, pos); err != nil {
				return nil, err
			}
			emit(CodeLab)
			pos += LabLength
		}
	}
	return codes, nil
}

// checkLabRun verifies that a lab run starting at start covers exactly
// LabLength adjacent positions. Breaks already sit at their fixed positions, so
// a run interrupted by a break fails the adjacency check.
func checkLabRun(slots []SlotType, start int) error {
	for offset := 0; offset < LabLength; offset++ {
		pos := start + offset
		if pos >= len(slots) || slots[pos] != Lab {
			return invalid(ErrInvalidLabBlock, start)
		}
	}
	if next := start + LabLength; next < len(slots) && slots[next] == Lab {
		return invalid(ErrInvalidLabBlock, next)
	}
	return nil
}
