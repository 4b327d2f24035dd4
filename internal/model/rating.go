package model

import "fmt"

// Rating is the age-classification of a film. Only the five MPA values are
// accepted; anything else fails validation.
type Rating string

const (
	RatingG    Rating = "G"
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG-13"
	RatingR    Rating = "R"
	RatingNC17 Rating = "NC-17"
)

// IsValid reports whether r is one of the fixed rating values.
func (r Rating) IsValid() bool {
	switch r {
	case RatingG, RatingPG, RatingPG13, RatingR, RatingNC17:
		return true
	}
	return false
}

// MinAge returns the minimum viewer age admitted for this rating. Used by
// the viewer-facing collaborators when checking admission.
func (r Rating) MinAge() int {
	switch r {
	case RatingPG13:
		return 13
	case RatingR:
		return 17
	case RatingNC17:
		return 18
	default:
		return 0
	}
}

// ParseRating converts a string into a Rating, rejecting unknown values
// with ErrValidation.
func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: invalid rating %q", ErrValidation, s)
	}
	return r, nil
}
