package periodformat

import (
	"fmt"
	"strings"
)

// SlotType classifies a single slot of a decoded day.
type SlotType int

const (
	Empty SlotType = iota
	Class
	Lab
	Break
)

var slotTypeNames = [...]string{
	Empty: "empty",
	Class: "class",
	Lab:   "lab",
	Break: "break",
}

// String returns the lowercase name of the slot type.
func (t SlotType) String() string {
	if t < Empty || t > Break {
		return fmt.Sprintf("SlotType(%d)", int(t))
	}
	return slotTypeNames[t]
}

// ParseSlotType converts a name such as "class" into a SlotType.
func ParseSlotType(raw string) (SlotType, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for t, candidate := range slotTypeNames {
		if candidate == name {
			return SlotType(t), nil
		}
	}
	return Empty, fmt.Errorf("unknown slot type %q", raw)
}

// MarshalText implements encoding.TextMarshaler.
func (t SlotType) MarshalText() ([]byte, error) {
	if t < Empty || t > Break {
		return nil, fmt.Errorf("invalid slot type %d", int(t))
	}
	return []byte(slotTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SlotType) UnmarshalText(text []byte) error {
	parsed, err := ParseSlotType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Teaching reports whether the slot carries a unit.
func (t SlotType) Teaching() bool {
	return t == Class || t == Lab
}

// Title returns the capitalised name, e.g. "Lab".
func (t SlotType) Title() string {
	name := t.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
