// Package cinema implements the aggregate root that owns halls and the
// per-screening reservation ledger. All mutation goes through Cinema
// methods, which serialize access with a single mutex so the capacity
// invariant holds under concurrent callers.
package cinema

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/kinoteka/cinema-core/internal/clock"
	"github.com/kinoteka/cinema-core/internal/event"
	"github.com/kinoteka/cinema-core/internal/model"
)

// Cinema owns a set of halls and the reservation ledger mapping
// (hall, screening start) to seats currently held. The ledger is the
// authoritative record for capacity checks in Reserve and
// CancelReservation; the per-hall counter on model.Hall is only touched
// when seats are reserved directly on a hall, and the two are not
// reconciled automatically.
type Cinema struct {
	mu           sync.RWMutex
	name         string
	halls        map[int]*model.Hall
	reservations map[model.ScreeningKey]int
	clk          clock.Clock
	pub          event.Publisher
}

// New validates and builds a Cinema. Halls given here are registered as if
// through AddHall with overwrite enabled, so a later hall with a duplicate
// number replaces an earlier one. A nil clk falls back to the system clock.
func New(name string, clk clock.Clock, halls ...*model.Hall) (*Cinema, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: cinema name cannot be empty", model.ErrValidation)
	}
	if clk == nil {
		clk = clock.System()
	}
	c := &Cinema{
		name:         name,
		halls:        make(map[int]*model.Hall, len(halls)),
		reservations: make(map[model.ScreeningKey]int),
		clk:          clk,
	}
	for _, h := range halls {
		c.halls[h.Number()] = h
	}
	return c, nil
}

// SetPublisher wires the collaborator that receives reservation events.
// Passing nil disables publishing.
func (c *Cinema) SetPublisher(p event.Publisher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pub = p
}

// Name returns the cinema name.
func (c *Cinema) Name() string { return c.name }

// AddHall registers a hall. A hall with the same number already registered
// fails with ErrValidation unless overwrite is set.
func (c *Cinema) AddHall(h *model.Hall, overwrite bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.halls[h.Number()]; exists && !overwrite {
		return fmt.Errorf("%w: hall #%d already exists", model.ErrValidation, h.Number())
	}
	c.halls[h.Number()] = h
	return nil
}

// RemoveHall unregisters the hall with the given number, failing with
// ErrValidation when it is not registered.
func (c *Cinema) RemoveHall(number int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.halls[number]; !exists {
		return fmt.Errorf("%w: hall %d does not exist", model.ErrValidation, number)
	}
	delete(c.halls, number)
	return nil
}

// Hall returns the registered hall with the given number.
func (c *Cinema) Hall(number int) (*model.Hall, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.halls[number]
	return h, ok
}

// Halls returns the registered halls sorted by number.
func (c *Cinema) Halls() []*model.Hall {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*model.Hall, 0, len(c.halls))
	for _, h := range c.halls {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out
}

// AddScreening schedules a showing on the film after checking that the
// screening's hall is registered in this cinema.
func (c *Cinema) AddScreening(film *model.Film, s model.ScreeningTime) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.halls[s.Hall]; !exists {
		return fmt.Errorf("%w: hall %d does not exist", model.ErrValidation, s.Hall)
	}
	return film.AddScreening(s)
}

// Reserve holds seats for a screening of the film, recording the hold in
// the reservation ledger. Validation order: positive seat count
// (ErrValidation), screening belongs to the film, the screening's hall is
// registered, and the request fits within the hall capacity net of seats
// already in the ledger (all ErrReservation). The ledger is only mutated
// once every check has passed.
func (c *Cinema) Reserve(film *model.Film, s model.ScreeningTime, seats int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.validateReserve(film, s, seats); err != nil {
		return err
	}
	key := s.Key()
	c.reservations[key] += seats
	c.publish(event.KindReserved, film, s, seats)
	return nil
}

// CanReserve runs the same validation as Reserve without committing
// anything to the ledger.
func (c *Cinema) CanReserve(film *model.Film, s model.ScreeningTime, seats int) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.validateReserve(film, s, seats)
}

func (c *Cinema) validateReserve(film *model.Film, s model.ScreeningTime, seats int) error {
	if seats <= 0 {
		return fmt.Errorf("%w: number of seats must be positive", model.ErrValidation)
	}
	if !film.HasScreening(s) {
		return fmt.Errorf("%w: screening does not belong to the given film", model.ErrReservation)
	}
	hall, exists := c.halls[s.Hall]
	if !exists {
		return fmt.Errorf("%w: hall #%d not registered in cinema", model.ErrReservation, s.Hall)
	}
	reserved := c.reservations[s.Key()]
	available := hall.Capacity() - reserved
	if seats > available {
		return fmt.Errorf("%w: requested %d seats, but only %d left in hall %d",
			model.ErrReservation, seats, available, hall.Number())
	}
	return nil
}

// CancelReservation releases seats previously held for a screening of the
// film. It fails with ErrValidation for a non-positive count and with
// ErrReservation when the screening is not the film's, the hall is not
// registered, or the count exceeds the seats currently held in the ledger.
func (c *Cinema) CancelReservation(film *model.Film, s model.ScreeningTime, seats int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seats <= 0 {
		return fmt.Errorf("%w: number of seats must be positive", model.ErrValidation)
	}
	if !film.HasScreening(s) {
		return fmt.Errorf("%w: screening does not belong to the given film", model.ErrReservation)
	}
	hall, exists := c.halls[s.Hall]
	if !exists {
		return fmt.Errorf("%w: hall #%d not registered in cinema", model.ErrReservation, s.Hall)
	}
	key := s.Key()
	reserved := c.reservations[key]
	if seats > reserved {
		return fmt.Errorf("%w: requested to cancel %d seats, but only %d reserved in hall %d",
			model.ErrReservation, seats, reserved, hall.Number())
	}
	c.reservations[key] = reserved - seats
	c.publish(event.KindCancelled, film, s, seats)
	return nil
}

// AvailableSeats returns the hall capacity net of the seats held in the
// ledger for the screening. It fails with ErrReservation when the
// screening's hall is not registered.
func (c *Cinema) AvailableSeats(s model.ScreeningTime) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hall, exists := c.halls[s.Hall]
	if !exists {
		return 0, fmt.Errorf("%w: hall #%d not registered in cinema", model.ErrReservation, s.Hall)
	}
	return hall.Capacity() - c.reservations[s.Key()], nil
}

// publish hands the committed change to the wired publisher. Publish
// failures are logged and never fail the reservation. Callers hold the
// write lock.
func (c *Cinema) publish(kind event.Kind, film *model.Film, s model.ScreeningTime, seats int) {
	if c.pub == nil {
		return
	}
	hall := c.halls[s.Hall]
	ev := event.ReservationChanged{
		Kind:           kind,
		CinemaName:     c.name,
		FilmTitle:      film.Title(),
		Hall:           s.Hall,
		ScreeningStart: model.FormatInstant(s.Start),
		Seats:          seats,
		SeatsRemaining: hall.Capacity() - c.reservations[s.Key()],
		OccurredAt:     model.FormatInstant(c.clk.Now()),
	}
	if err := c.pub.Publish(ev); err != nil {
		log.Printf("cinema: publish %s failed: %v", kind, err)
	}
}
