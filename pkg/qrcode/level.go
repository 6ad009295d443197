package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Level is a QR error-correction level. Higher levels survive more damage
// at the cost of data capacity.
type Level string

const (
	LevelLow      Level = "L" // ~7% recovery
	LevelMedium   Level = "M" // ~15% recovery
	LevelQuartile Level = "Q" // ~25% recovery
	LevelHigh     Level = "H" // ~30% recovery
)

// DefaultLevel is used when no level is given.
const DefaultLevel = LevelHigh

// ParseLevel parses "L", "M", "Q" or "H" (case-insensitive).
// An empty string yields DefaultLevel.
func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultLevel, nil
	}
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// Valid reports whether l is one of the four known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelQuartile, LevelHigh:
		return true
	}
	return false
}

func (l Level) String() string {
	return string(l)
}

// recoveryLevel maps l to the encoder library's tier.
func (l Level) recoveryLevel() (qrcode.RecoveryLevel, error) {
	switch l {
	case LevelLow:
		return qrcode.Low, nil
	case LevelMedium:
		return qrcode.Medium, nil
	case LevelQuartile:
		return qrcode.High, nil
	case LevelHigh:
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, string(l))
}
