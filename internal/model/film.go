package model

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/kinoteka/cinema-core/internal/clock"
)

// Duration bounds for a film, in minutes.
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 960 // 16 hours
)

// Film owns the screening schedule of a single title. Screenings are added
// and removed exclusively through its methods, which keep the list sorted
// by start time and free of same-hall overlaps. A film may additionally
// hold at most one promotion per screening.
//
// Fields:
//
//	title      – film title, non-empty.
//	duration   – running time in minutes, within [MinDurationMinutes, MaxDurationMinutes].
//	rating     – age classification, one of the fixed Rating values.
//	screenings – scheduled showings, always sorted by start ascending.
//	promotions – at most one promotion per screening, keyed by value identity.
type Film struct {
	title    string
	duration int
	rating   Rating

	screenings []ScreeningTime
	promotions map[ScreeningKey]*Promotion
	clk        clock.Clock
}

// NewFilm validates and builds a Film with an empty schedule. A nil clk
// falls back to the system clock; tests pass a fixed one.
func NewFilm(title string, durationMinutes int, rating Rating, clk clock.Clock) (*Film, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrValidation, MinDurationMinutes, MaxDurationMinutes)
	}
	if !rating.IsValid() {
		return nil, fmt.Errorf("%w: invalid rating %q", ErrValidation, rating)
	}
	if clk == nil {
		clk = clock.System()
	}
	return &Film{
		title:      title,
		duration:   durationMinutes,
		rating:     rating,
		promotions: make(map[ScreeningKey]*Promotion),
		clk:        clk,
	}, nil
}

// Title returns the film title.
func (f *Film) Title() string { return f.title }

// Duration returns the running time.
func (f *Film) Duration() time.Duration {
	return time.Duration(f.duration) * time.Minute
}

// DurationMinutes returns the running time in minutes.
func (f *Film) DurationMinutes() int { return f.duration }

// Rating returns the age classification.
func (f *Film) Rating() Rating { return f.rating }

// Screenings returns a copy of the schedule, sorted by start ascending.
func (f *Film) Screenings() []ScreeningTime {
	return slices.Clone(f.screenings)
}

// HasScreening reports whether s is part of the schedule, by value identity.
func (f *Film) HasScreening(s ScreeningTime) bool {
	return slices.ContainsFunc(f.screenings, s.Equal)
}

// AddScreening schedules a new showing. A screening already present fails
// with ErrValidation. A screening whose occupied interval
// [start, start+duration) intersects an existing screening's interval in
// the same hall fails with ErrScheduleConflict; back-to-back showings where
// one ends exactly when the next begins are allowed. On success the
// schedule is re-sorted so enumeration stays chronological regardless of
// insertion order.
func (f *Film) AddScreening(s ScreeningTime) error {
	if f.HasScreening(s) {
		return fmt.Errorf("%w: screening already exists", ErrValidation)
	}
	end := s.Start.Add(f.Duration())
	for _, existing := range f.screenings {
		if existing.Hall != s.Hall {
			continue
		}
		existingEnd := existing.Start.Add(f.Duration())
		if existing.Start.Before(end) && s.Start.Before(existingEnd) {
			return fmt.Errorf("%w: screening conflicts with existing screening in hall %d",
				ErrScheduleConflict, existing.Hall)
		}
	}
	f.screenings = append(f.screenings, s)
	slices.SortFunc(f.screenings, func(a, b ScreeningTime) int {
		return a.Start.Compare(b.Start)
	})
	return nil
}

// RemoveScreening takes a showing off the schedule, failing with
// ErrValidation when it is not present. Any promotion attached to the
// screening is cleared as well, so no dangling promotion entry survives
// the screening it was attached to.
func (f *Film) RemoveScreening(s ScreeningTime) error {
	idx := slices.IndexFunc(f.screenings, s.Equal)
	if idx < 0 {
		return fmt.Errorf("%w: screening does not exist", ErrValidation)
	}
	f.screenings = slices.Delete(f.screenings, idx, idx+1)
	if promo, ok := f.promotions[s.Key()]; ok {
		promo.unmark(s)
		delete(f.promotions, s.Key())
	}
	return nil
}

// ApplyPromotion attaches a promotion to a scheduled screening. It fails
// with ErrValidation when the screening is unknown to the film, when the
// screening already carries a promotion, or when the promotion has already
// expired.
func (f *Film) ApplyPromotion(s ScreeningTime, promo *Promotion) error {
	if !f.HasScreening(s) {
		return fmt.Errorf("%w: screening not found", ErrValidation)
	}
	if _, ok := f.promotions[s.Key()]; ok {
		return fmt.Errorf("%w: screening already has a promotion", ErrValidation)
	}
	if !promo.Valid(f.clk) {
		return fmt.Errorf("%w: promotion has expired", ErrValidation)
	}
	f.promotions[s.Key()] = promo
	promo.markApplied(s)
	return nil
}

// RemovePromotion detaches the promotion from a screening, failing with
// ErrValidation when the screening is unknown or carries none.
func (f *Film) RemovePromotion(s ScreeningTime) error {
	if !f.HasScreening(s) {
		return fmt.Errorf("%w: screening not found", ErrValidation)
	}
	promo, ok := f.promotions[s.Key()]
	if !ok {
		return fmt.Errorf("%w: screening has no promotion", ErrValidation)
	}
	promo.unmark(s)
	delete(f.promotions, s.Key())
	return nil
}

// PromotionFor returns the promotion attached to a screening, or nil when
// none is attached. It fails with ErrValidation when the screening is not
// part of the schedule.
func (f *Film) PromotionFor(s ScreeningTime) (*Promotion, error) {
	if !f.HasScreening(s) {
		return nil, fmt.Errorf("%w: screening not found", ErrValidation)
	}
	return f.promotions[s.Key()], nil
}

// UpcomingScreenings yields the screenings starting strictly after now, in
// chronological order. The sequence is lazy and restartable and does not
// mutate the schedule. A zero now means the film clock's current instant.
func (f *Film) UpcomingScreenings(now time.Time) iter.Seq[ScreeningTime] {
	if now.IsZero() {
		now = f.clk.Now()
	}
	return func(yield func(ScreeningTime) bool) {
		for _, s := range f.screenings {
			if !s.Start.After(now) {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

func (f *Film) String() string {
	return fmt.Sprintf("%s (%s) - %d min", f.title, f.rating, f.duration)
}
