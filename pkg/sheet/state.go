package sheet

import "fmt"

// DisplayState is one of the two rest positions of a sheet.
type DisplayState int

const (
	// Minimized shows only the minimized height of the sheet.
	Minimized DisplayState = iota
	// Maximized shows the full maximized height of the sheet.
	Maximized
)

func (s DisplayState) String() string {
	switch s {
	case Minimized:
		return "minimized"
	case Maximized:
		return "maximized"
	default:
		return fmt.Sprintf("DisplayState(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s DisplayState) MarshalText() ([]byte, error) {
	switch s {
	case Minimized, Maximized:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid display state %d", int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *DisplayState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "minimized", "min":
		*s = Minimized
	case "maximized", "max":
		*s = Maximized
	default:
		return fmt.Errorf("unknown display state %q (use minimized or maximized)", text)
	}
	return nil
}
