package model

import (
	"fmt"
	"time"

	"github.com/kinoteka/cinema-core/internal/clock"
)

// TicketType categorizes a ticket and carries its price multiplier.
// Pricing itself is handled by the payment and loyalty collaborators; the
// core only defines the values they exchange.
type TicketType string

const (
	TicketRegular TicketType = "REGULAR"
	TicketStudent TicketType = "STUDENT"
	TicketSenior  TicketType = "SENIOR"
	TicketChild   TicketType = "CHILD"
	TicketVIP     TicketType = "VIP"
)

// Multiplier returns the factor applied to a base price for this ticket
// type. Unknown types price as regular.
func (t TicketType) Multiplier() float64 {
	switch t {
	case TicketStudent:
		return 0.8
	case TicketSenior:
		return 0.7
	case TicketChild:
		return 0.5
	case TicketVIP:
		return 1.5
	default:
		return 1.0
	}
}

// IsValid reports whether t is one of the defined ticket types.
func (t TicketType) IsValid() bool {
	switch t {
	case TicketRegular, TicketStudent, TicketSenior, TicketChild, TicketVIP:
		return true
	}
	return false
}

// Ticket is the immutable sale record the viewer and statistics
// collaborators exchange with the core. The core never creates tickets on
// its own; it only defines and validates their shape.
//
// Fields:
//
//	Film         – the film the ticket admits to.
//	Screening    – the showing the ticket is for.
//	Type         – ticket category, one of the TicketType values.
//	SeatNumber   – positive seat number within the hall.
//	Price        – final price paid, strictly positive.
//	PurchaseDate – instant the sale was made.
type Ticket struct {
	Film         *Film
	Screening    ScreeningTime
	Type         TicketType
	SeatNumber   int
	Price        float64
	PurchaseDate time.Time
}

// NewTicket validates and builds a Ticket.
func NewTicket(film *Film, s ScreeningTime, typ TicketType, seatNumber int, price float64, purchaseDate time.Time) (Ticket, error) {
	if !typ.IsValid() {
		return Ticket{}, fmt.Errorf("%w: invalid ticket type %q", ErrValidation, typ)
	}
	if seatNumber <= 0 {
		return Ticket{}, fmt.Errorf("%w: seat number must be positive", ErrValidation)
	}
	if price <= 0 {
		return Ticket{}, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if purchaseDate.IsZero() {
		return Ticket{}, fmt.Errorf("%w: purchase date must be set", ErrValidation)
	}
	return Ticket{
		Film:         film,
		Screening:    s,
		Type:         typ,
		SeatNumber:   seatNumber,
		Price:        price,
		PurchaseDate: purchaseDate,
	}, nil
}

// Valid reports whether the ticket still admits to a future showing.
func (t Ticket) Valid(clk clock.Clock) bool {
	if clk == nil {
		clk = clock.System()
	}
	return t.Screening.Start.After(clk.Now())
}

// FinalPrice applies the ticket type multiplier to a base price.
func (t Ticket) FinalPrice(basePrice float64) float64 {
	return basePrice * t.Type.Multiplier()
}
