package model

import "fmt"

// ScreeningType categorizes special showings and carries the price
// multiplier applied to the base ticket price for that showing.
type ScreeningType string

const (
	ScreeningRegular   ScreeningType = "REGULAR"
	ScreeningPremiere  ScreeningType = "PREMIERE"
	ScreeningMidnight  ScreeningType = "MIDNIGHT"
	ScreeningMatinee   ScreeningType = "MATINEE"
	ScreeningSeniorDay ScreeningType = "SENIOR_DAY"
)

// Multiplier returns the price factor for the screening type.
func (t ScreeningType) Multiplier() float64 {
	switch t {
	case ScreeningPremiere:
		return 1.5
	case ScreeningMidnight:
		return 0.8
	case ScreeningMatinee:
		return 0.7
	case ScreeningSeniorDay:
		return 0.6
	default:
		return 1.0
	}
}

// IsValid reports whether t is one of the defined screening types.
func (t ScreeningType) IsValid() bool {
	switch t {
	case ScreeningRegular, ScreeningPremiere, ScreeningMidnight, ScreeningMatinee, ScreeningSeniorDay:
		return true
	}
	return false
}

// SpecialScreening marks a scheduled showing as a special event, such as a
// premiere or a matinee. It is a value shared with the promotions and
// pricing collaborators.
type SpecialScreening struct {
	Film        *Film
	Screening   ScreeningTime
	Type        ScreeningType
	Description string
}

// NewSpecialScreening validates and builds a SpecialScreening.
func NewSpecialScreening(film *Film, s ScreeningTime, typ ScreeningType, description string) (SpecialScreening, error) {
	if !typ.IsValid() {
		return SpecialScreening{}, fmt.Errorf("%w: invalid screening type %q", ErrValidation, typ)
	}
	if description == "" {
		return SpecialScreening{}, fmt.Errorf("%w: description cannot be empty", ErrValidation)
	}
	return SpecialScreening{Film: film, Screening: s, Type: typ, Description: description}, nil
}

// BasePrice returns the base price factor for this kind of showing.
func (s SpecialScreening) BasePrice() float64 {
	return s.Type.Multiplier()
}
