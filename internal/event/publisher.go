package event

import "log"

// Publisher delivers reservation events to whatever collaborator is
// interested. Implementations must not block the caller for long; errors
// are logged by the aggregate and never fail the reservation itself.
type Publisher interface {
	Publish(ev ReservationChanged) error
}

// LogPublisher writes events to the process log. It is the default
// publisher wired by the CLI and a convenient stand-in for the external
// audit collaborator in tests.
type LogPublisher struct{}

// Publish logs the event. It never fails.
func (LogPublisher) Publish(ev ReservationChanged) error {
	log.Printf("event: %s cinema=%q film=%q hall=%d start=%s seats=%d remaining=%d",
		ev.Kind, ev.CinemaName, ev.FilmTitle, ev.Hall, ev.ScreeningStart, ev.Seats, ev.SeatsRemaining)
	return nil
}
