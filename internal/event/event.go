// Package event defines the payloads the cinema core hands to downstream
// collaborators when reservations change. Audit logging and statistics are
// external to the core; they receive these events through the Publisher
// interface and never touch the aggregate itself.
package event

// Kind discriminates reservation events.
type Kind string

const (
	KindReserved  Kind = "reservation.reserved"
	KindCancelled Kind = "reservation.cancelled"
)

// ReservationChanged is published after a reservation or cancellation has
// been committed to the ledger. It carries enough information for
// downstream consumers to log or aggregate without querying the cinema.
type ReservationChanged struct {
	Kind           Kind   `json:"kind"`
	CinemaName     string `json:"cinema_name"`
	FilmTitle      string `json:"film_title"`
	Hall           int    `json:"hall"`
	ScreeningStart string `json:"screening_start"`
	Seats          int    `json:"seats"`
	SeatsRemaining int    `json:"seats_remaining"`
	OccurredAt     string `json:"occurred_at"`
}
