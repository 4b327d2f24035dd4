package model

import (
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/kinoteka/cinema-core/internal/clock"
)

// Promotion is a discount campaign that can be attached to screenings.
// It is supplied by the promotions collaborator and consumed by
// Film.ApplyPromotion; the core only cares about its expiry and which
// screenings it has been attached to.
//
// Fields:
//
//	Name            – campaign label, non-empty.
//	DiscountPercent – fraction of the base price charged, in (0, 1].
//	Conditions      – free-form campaign conditions (e.g. "day": "tuesday").
//	ExpiresAt       – instant after which the promotion may no longer be applied.
type Promotion struct {
	Name            string
	DiscountPercent float64
	Conditions      map[string]string
	ExpiresAt       time.Time

	applied mapset.Set[ScreeningKey]
}

// NewPromotion validates and builds a Promotion with no applied screenings.
func NewPromotion(name string, discountPercent float64, conditions map[string]string, expiresAt time.Time) (*Promotion, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: promotion name cannot be empty", ErrValidation)
	}
	if discountPercent <= 0 || discountPercent > 1 {
		return nil, fmt.Errorf("%w: discount percent must be in (0, 1]", ErrValidation)
	}
	return &Promotion{
		Name:            name,
		DiscountPercent: discountPercent,
		Conditions:      conditions,
		ExpiresAt:       expiresAt,
		applied:         mapset.NewSet[ScreeningKey](),
	}, nil
}

// Valid reports whether the promotion may still be applied at the instant
// given by clk.
func (p *Promotion) Valid(clk clock.Clock) bool {
	if clk == nil {
		clk = clock.System()
	}
	return !clk.Now().After(p.ExpiresAt)
}

// Discount returns the discounted price for basePrice.
func (p *Promotion) Discount(basePrice float64) float64 {
	return basePrice * p.DiscountPercent
}

// IsAppliedTo reports whether the promotion is attached to the screening.
func (p *Promotion) IsAppliedTo(s ScreeningTime) bool {
	return p.applied.Contains(s.Key())
}

// AppliedScreenings returns the keys of all screenings the promotion is
// currently attached to, in no particular order.
func (p *Promotion) AppliedScreenings() []ScreeningKey {
	return p.applied.ToSlice()
}

// markApplied and unmark keep the promotion's own view of its attachments
// in step with the films it is applied through.
func (p *Promotion) markApplied(s ScreeningTime) { p.applied.Add(s.Key()) }
func (p *Promotion) unmark(s ScreeningTime)      { p.applied.Remove(s.Key()) }
