package cinema

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinoteka/cinema-core/internal/clock"
	"github.com/kinoteka/cinema-core/internal/event"
	"github.com/kinoteka/cinema-core/internal/model"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func testClock() clock.Clock {
	return clock.Fixed(testNow)
}

func testHall(t *testing.T, number, capacity int) *model.Hall {
	t.Helper()
	h, err := model.NewHall(number, capacity)
	require.NoError(t, err)
	return h
}

func testCinema(t *testing.T) *Cinema {
	t.Helper()
	c, err := New("Test Cinema", testClock(), testHall(t, 1, 100))
	require.NoError(t, err)
	return c
}

func testFilm(t *testing.T) *model.Film {
	t.Helper()
	f, err := model.NewFilm("Test Film", 120, model.RatingPG13, testClock())
	require.NoError(t, err)
	return f
}

func screeningAt(t *testing.T, start time.Time, hall int) model.ScreeningTime {
	t.Helper()
	s, err := model.NewScreeningTime(start, hall, testClock())
	require.NoError(t, err)
	return s
}

// scheduled returns a film with one screening in hall 1, added through the
// cinema so hall registration is checked.
func scheduled(t *testing.T, c *Cinema) (*model.Film, model.ScreeningTime) {
	t.Helper()
	f := testFilm(t)
	s := screeningAt(t, testNow.Add(24*time.Hour), 1)
	require.NoError(t, c.AddScreening(f, s))
	return f, s
}

func TestNewRejectsEmptyName(t *testing.T) {
	_, err := New("", testClock())
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestAddHall(t *testing.T) {
	c := testCinema(t)

	err := c.AddHall(testHall(t, 1, 50), false)
	assert.True(t, errors.Is(err, model.ErrValidation))

	// Overwrite replaces the registered hall.
	require.NoError(t, c.AddHall(testHall(t, 1, 50), true))
	h, ok := c.Hall(1)
	require.True(t, ok)
	assert.Equal(t, 50, h.Capacity())

	require.NoError(t, c.AddHall(testHall(t, 2, 80), false))
	halls := c.Halls()
	require.Len(t, halls, 2)
	assert.Equal(t, 1, halls[0].Number())
	assert.Equal(t, 2, halls[1].Number())
}

func TestRemoveHall(t *testing.T) {
	c := testCinema(t)

	require.NoError(t, c.RemoveHall(1))
	_, ok := c.Hall(1)
	assert.False(t, ok)

	err := c.RemoveHall(1)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestAddScreeningRequiresRegisteredHall(t *testing.T) {
	c := testCinema(t)
	f := testFilm(t)

	err := c.AddScreening(f, screeningAt(t, testNow.Add(24*time.Hour), 7))
	assert.True(t, errors.Is(err, model.ErrValidation))
	assert.Empty(t, f.Screenings())

	assert.NoError(t, c.AddScreening(f, screeningAt(t, testNow.Add(24*time.Hour), 1)))
}

func TestReserveAndCancelLedgerFlow(t *testing.T) {
	c := testCinema(t)
	f, s := scheduled(t, c)

	require.NoError(t, c.Reserve(f, s, 50))
	avail, err := c.AvailableSeats(s)
	require.NoError(t, err)
	assert.Equal(t, 50, avail)

	require.NoError(t, c.CancelReservation(f, s, 30))
	avail, err = c.AvailableSeats(s)
	require.NoError(t, err)
	assert.Equal(t, 80, avail)

	// Only 20 seats remain reserved; cancelling 30 exceeds that.
	err = c.CancelReservation(f, s, 30)
	assert.True(t, errors.Is(err, model.ErrReservation))

	require.NoError(t, c.CancelReservation(f, s, 20))
	avail, err = c.AvailableSeats(s)
	require.NoError(t, err)
	assert.Equal(t, 100, avail)

	err = c.CancelReservation(f, s, 1)
	assert.True(t, errors.Is(err, model.ErrReservation))
}

func TestReserveValidationOrder(t *testing.T) {
	c := testCinema(t)
	f, s := scheduled(t, c)

	// Non-positive seats.
	err := c.Reserve(f, s, 0)
	assert.True(t, errors.Is(err, model.ErrValidation))

	// Screening not part of the film.
	foreign := screeningAt(t, testNow.Add(72*time.Hour), 1)
	err = c.Reserve(f, foreign, 10)
	assert.True(t, errors.Is(err, model.ErrReservation))

	// Screening hall not registered in this cinema.
	otherFilm := testFilm(t)
	inHall9 := screeningAt(t, testNow.Add(24*time.Hour), 9)
	require.NoError(t, otherFilm.AddScreening(inHall9))
	err = c.Reserve(otherFilm, inHall9, 10)
	assert.True(t, errors.Is(err, model.ErrReservation))
}

func TestReserveOverCapacityLeavesLedgerUntouched(t *testing.T) {
	c := testCinema(t)
	f, s := scheduled(t, c)

	err := c.Reserve(f, s, 101)
	assert.True(t, errors.Is(err, model.ErrReservation))

	avail, err := c.AvailableSeats(s)
	require.NoError(t, err)
	assert.Equal(t, 100, avail)
}

func TestReserveAccumulatesUpToCapacity(t *testing.T) {
	c := testCinema(t)
	f, s := scheduled(t, c)

	require.NoError(t, c.Reserve(f, s, 60))
	require.NoError(t, c.Reserve(f, s, 40))

	err := c.Reserve(f, s, 1)
	assert.True(t, errors.Is(err, model.ErrReservation))

	avail, err := c.AvailableSeats(s)
	require.NoError(t, err)
	assert.Equal(t, 0, avail)
}

func TestCanReserveIsDryRun(t *testing.T) {
	c := testCinema(t)
	f, s := scheduled(t, c)

	require.NoError(t, c.CanReserve(f, s, 100))

	// Validation only: nothing was committed.
	avail, err := c.AvailableSeats(s)
	require.NoError(t, err)
	assert.Equal(t, 100, avail)

	err = c.CanReserve(f, s, 101)
	assert.True(t, errors.Is(err, model.ErrReservation))
}

func TestAvailableSeatsUnknownHall(t *testing.T) {
	c := testCinema(t)

	_, err := c.AvailableSeats(model.ScreeningTime{Start: testNow.Add(time.Hour), Hall: 99})
	assert.True(t, errors.Is(err, model.ErrReservation))
}

// capturePublisher records events and optionally fails every publish.
type capturePublisher struct {
	mu     sync.Mutex
	events []event.ReservationChanged
	fail   bool
}

func (p *capturePublisher) Publish(ev event.ReservationChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	if p.fail {
		return fmt.Errorf("publisher down")
	}
	return nil
}

func TestReservePublishesEvents(t *testing.T) {
	c := testCinema(t)
	f, s := scheduled(t, c)
	pub := &capturePublisher{}
	c.SetPublisher(pub)

	require.NoError(t, c.Reserve(f, s, 40))
	require.NoError(t, c.CancelReservation(f, s, 10))

	require.Len(t, pub.events, 2)
	assert.Equal(t, event.KindReserved, pub.events[0].Kind)
	assert.Equal(t, 40, pub.events[0].Seats)
	assert.Equal(t, 60, pub.events[0].SeatsRemaining)
	assert.Equal(t, event.KindCancelled, pub.events[1].Kind)
	assert.Equal(t, 70, pub.events[1].SeatsRemaining)
	assert.Equal(t, "Test Cinema", pub.events[0].CinemaName)
	assert.Equal(t, "Test Film", pub.events[0].FilmTitle)
}

func TestPublishFailureDoesNotFailReservation(t *testing.T) {
	c := testCinema(t)
	f, s := scheduled(t, c)
	c.SetPublisher(&capturePublisher{fail: true})

	assert.NoError(t, c.Reserve(f, s, 10))
	avail, err := c.AvailableSeats(s)
	require.NoError(t, err)
	assert.Equal(t, 90, avail)
}

func TestConcurrentReservesNeverExceedCapacity(t *testing.T) {
	c := testCinema(t)
	f, s := scheduled(t, c)

	const workers = 10
	const attemptsPerWorker = 15 // 150 single-seat attempts against 100 seats

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range attemptsPerWorker {
				if err := c.Reserve(f, s, 1); err == nil {
					mu.Lock()
					granted++
					mu.Unlock()
				} else if !errors.Is(err, model.ErrReservation) {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, granted)
	avail, err := c.AvailableSeats(s)
	require.NoError(t, err)
	assert.Equal(t, 0, avail)
}
