// Package model holds the leaf domain types of the cinema core: films and
// their screening schedules, halls with seat capacity, promotions and the
// ticket values consumed by external collaborators. This file defines the
// error kinds shared across the domain. These sentinel values allow callers
// to distinguish between failure scenarios with errors.Is: for example,
// ErrScheduleConflict signals that an individually well-formed screening
// collides with an existing one, while ErrValidation marks input that was
// malformed on its own.
package model

import "errors"

// ErrValidation is returned for malformed or out-of-range input: empty
// titles, non-positive seat counts or capacities, unknown ratings,
// past-dated screenings, duplicate hall numbers. It is always raised
// before any state mutation, so the caller can retry with corrected input.
var ErrValidation = errors.New("validation")

// ErrScheduleConflict is returned when a structurally valid screening
// overlaps an existing screening in the same hall. Distinct from
// ErrValidation: the input itself was fine, the caller must pick a
// different time or hall.
var ErrScheduleConflict = errors.New("schedule conflict")

// ErrReservation is returned when a reservation operation cannot proceed:
// capacity exceeded, cancel amount above the reserved count, or a
// screening/hall that is not registered. The ledger is never left in a
// partial state when this is returned.
var ErrReservation = errors.New("reservation")
