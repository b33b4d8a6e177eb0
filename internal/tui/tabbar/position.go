package tabbar

import "fmt"

// Position is the placement of the tab bar relative to the content it
// switches between.
type Position int

const (
	// Unspecified leaves placement to the container, which lays the bar out
	// at the top.
	Unspecified Position = iota
	Top
	Bottom
)

func (p Position) String() string {
	switch p {
	case Unspecified:
		return "unspecified"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// ParsePosition parses the string representation of a position.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "", "unspecified":
		return Unspecified, nil
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Unspecified, fmt.Errorf("invalid tab bar position: %q", s)
}

// Next returns the position to cycle to: top, then bottom, then top again.
func (p Position) Next() Position {
	if p == Bottom {
		return Top
	}
	return Bottom
}
