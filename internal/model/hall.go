package model

import "fmt"

// Hall represents an individual screening hall with a fixed seat capacity.
// It keeps a plain counter of seats still available, with no notion of
// which screening the seats belong to; the per-screening view lives in the
// cinema aggregate's reservation ledger.
//
// Fields:
//
//	number    – the hall number, unique within a cinema.
//	capacity  – total number of seats, always positive.
//	available – seats not currently reserved, kept within [0, capacity].
type Hall struct {
	number    int
	capacity  int
	available int
}

// NewHall validates and builds a Hall with all seats available.
func NewHall(number, capacity int) (*Hall, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: hall number must be positive", ErrValidation)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	return &Hall{number: number, capacity: capacity, available: capacity}, nil
}

// RestoreHall rebuilds a Hall from persisted state, keeping the persisted
// available-seat count instead of resetting it to capacity. Used only by
// snapshot loading.
func RestoreHall(number, capacity, available int) (*Hall, error) {
	h, err := NewHall(number, capacity)
	if err != nil {
		return nil, err
	}
	if available < 0 || available > capacity {
		return nil, fmt.Errorf("%w: available seats %d out of range for capacity %d", ErrValidation, available, capacity)
	}
	h.available = available
	return h, nil
}

// Number returns the hall number.
func (h *Hall) Number() int { return h.number }

// Capacity returns the total number of seats.
func (h *Hall) Capacity() int { return h.capacity }

// AvailableSeats returns the seats not currently reserved on the hall's
// own counter.
func (h *Hall) AvailableSeats() int { return h.available }

// ReserveSeats takes seats from the hall's counter. It fails with
// ErrValidation for a non-positive count and with ErrReservation when more
// seats are requested than remain available.
func (h *Hall) ReserveSeats(seats int) error {
	if seats <= 0 {
		return fmt.Errorf("%w: number of seats must be positive", ErrValidation)
	}
	if seats > h.available {
		return fmt.Errorf("%w: not enough seats available in hall %d", ErrReservation, h.number)
	}
	h.available -= seats
	return nil
}

// CancelReservation returns seats to the hall's counter. It fails with
// ErrValidation for a non-positive count and with ErrReservation when the
// count exceeds the seats currently reserved.
func (h *Hall) CancelReservation(seats int) error {
	if seats <= 0 {
		return fmt.Errorf("%w: number of seats must be positive", ErrValidation)
	}
	if seats > h.capacity-h.available {
		return fmt.Errorf("%w: not enough reserved seats to cancel in hall %d", ErrReservation, h.number)
	}
	h.available += seats
	return nil
}
