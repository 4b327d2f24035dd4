package cinema

import (
	"fmt"
	"sort"

	"github.com/kinoteka/cinema-core/internal/clock"
	"github.com/kinoteka/cinema-core/internal/model"
)

// Snapshot is the persisted view of a cinema: its halls and the
// reservation ledger. Films and their schedules are deliberately not part
// of the snapshot; only halls and ledger survive a save/load cycle.
type Snapshot struct {
	Meta         Meta               `json:"meta"`
	Halls        []HallState        `json:"halls"`
	Reservations []ReservationState `json:"reservations"`
}

// Meta carries the cinema identity and the instant the snapshot was taken.
type Meta struct {
	Name    string `json:"name"`
	SavedAt string `json:"timestamp,omitempty"`
}

// HallState is the persisted form of a hall, including its own
// available-seat counter verbatim.
type HallState struct {
	Number         int `json:"number"`
	Capacity       int `json:"capacity"`
	AvailableSeats int `json:"available_seats"`
}

// ReservationState is one ledger entry: seats held for a screening
// identified by hall number and ISO-8601 start instant.
type ReservationState struct {
	Hall           int    `json:"hall"`
	ScreeningStart string `json:"screening_start"`
	Reserved       int    `json:"reserved"`
}

// Snapshot captures the current aggregate state. Halls are ordered by
// number and ledger entries by (hall, start) so the output is
// deterministic.
func (c *Cinema) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		Meta:         Meta{Name: c.name, SavedAt: model.FormatInstant(c.clk.Now())},
		Halls:        make([]HallState, 0, len(c.halls)),
		Reservations: make([]ReservationState, 0, len(c.reservations)),
	}
	for _, h := range c.halls {
		snap.Halls = append(snap.Halls, HallState{
			Number:         h.Number(),
			Capacity:       h.Capacity(),
			AvailableSeats: h.AvailableSeats(),
		})
	}
	sort.Slice(snap.Halls, func(i, j int) bool { return snap.Halls[i].Number < snap.Halls[j].Number })

	for key, reserved := range c.reservations {
		snap.Reservations = append(snap.Reservations, ReservationState{
			Hall:           key.Hall,
			ScreeningStart: key.Start,
			Reserved:       reserved,
		})
	}
	sort.Slice(snap.Reservations, func(i, j int) bool {
		a, b := snap.Reservations[i], snap.Reservations[j]
		if a.Hall != b.Hall {
			return a.Hall < b.Hall
		}
		return a.ScreeningStart < b.ScreeningStart
	})
	return snap
}

// FromSnapshot reconstructs a Cinema from a persisted snapshot. Halls keep
// their persisted available-seat counters and the ledger is repopulated
// verbatim, without re-running screening-conflict validation. Structural
// defects fail with ErrValidation: a missing name, an out-of-range hall
// counter, a ledger entry for an unregistered hall, an unparsable start
// instant, or a reserved count outside [0, capacity].
func FromSnapshot(snap Snapshot, clk clock.Clock) (*Cinema, error) {
	c, err := New(snap.Meta.Name, clk)
	if err != nil {
		return nil, err
	}
	for _, hs := range snap.Halls {
		h, err := model.RestoreHall(hs.Number, hs.Capacity, hs.AvailableSeats)
		if err != nil {
			return nil, err
		}
		if _, dup := c.halls[h.Number()]; dup {
			return nil, fmt.Errorf("%w: duplicate hall %d in snapshot", model.ErrValidation, h.Number())
		}
		c.halls[h.Number()] = h
	}
	for _, rs := range snap.Reservations {
		hall, exists := c.halls[rs.Hall]
		if !exists {
			return nil, fmt.Errorf("%w: reservation for unknown hall %d", model.ErrValidation, rs.Hall)
		}
		if _, err := model.ParseInstant(rs.ScreeningStart); err != nil {
			return nil, fmt.Errorf("%w: bad screening start %q: %v", model.ErrValidation, rs.ScreeningStart, err)
		}
		if rs.Reserved < 0 || rs.Reserved > hall.Capacity() {
			return nil, fmt.Errorf("%w: reserved count %d out of range for hall %d",
				model.ErrValidation, rs.Reserved, rs.Hall)
		}
		key := model.ScreeningKey{Hall: rs.Hall, Start: rs.ScreeningStart}
		if _, dup := c.reservations[key]; dup {
			return nil, fmt.Errorf("%w: duplicate ledger entry for hall %d at %s",
				model.ErrValidation, rs.Hall, rs.ScreeningStart)
		}
		c.reservations[key] = rs.Reserved
	}
	return c, nil
}
