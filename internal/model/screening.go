package model

import (
	"fmt"
	"time"

	"github.com/kinoteka/cinema-core/internal/clock"
)

// ScreeningTime identifies a single showing of a film: a start instant and
// the hall it plays in. It is an immutable value; two screenings are the
// same screening exactly when start and hall match.
//
// Fields:
//
//	Start – the instant the showing begins.
//	Hall  – the number of the hall it plays in.
type ScreeningTime struct {
	Start time.Time // start of the showing
	Hall  int       // hall number, always positive
}

// NewScreeningTime validates and builds a ScreeningTime. The start must be
// strictly in the future relative to clk and the hall number positive. A
// nil clk falls back to the system clock.
func NewScreeningTime(start time.Time, hall int, clk clock.Clock) (ScreeningTime, error) {
	if clk == nil {
		clk = clock.System()
	}
	if !start.After(clk.Now()) {
		return ScreeningTime{}, fmt.Errorf("%w: screening time must be in the future", ErrValidation)
	}
	if hall <= 0 {
		return ScreeningTime{}, fmt.Errorf("%w: hall number must be positive", ErrValidation)
	}
	return ScreeningTime{Start: start, Hall: hall}, nil
}

// Equal reports whether s and other denote the same showing. Start instants
// are compared with time.Time.Equal so differing wall-clock locations of
// the same instant still match.
func (s ScreeningTime) Equal(other ScreeningTime) bool {
	return s.Hall == other.Hall && s.Start.Equal(other.Start)
}

// Key returns the comparable identity of the screening, suitable for map
// keys, sets and the snapshot wire format.
func (s ScreeningTime) Key() ScreeningKey {
	return ScreeningKey{Hall: s.Hall, Start: FormatInstant(s.Start)}
}

func (s ScreeningTime) String() string {
	return fmt.Sprintf("hall %d at %s", s.Hall, FormatInstant(s.Start))
}

// ScreeningKey is the value identity of a screening: hall number plus the
// start instant rendered as an ISO-8601 string. Keeping the instant as a
// string makes the key comparable and keeps map identity aligned with the
// persisted snapshot representation.
type ScreeningKey struct {
	Hall  int    // hall number
	Start string // start instant, ISO-8601
}

// FormatInstant renders an instant in the ISO-8601 form used for screening
// keys and the snapshot file.
func FormatInstant(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseInstant is the inverse of FormatInstant.
func ParseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
