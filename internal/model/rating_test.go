package model

import "testing"

func TestRating_IsValid(t *testing.T) {
	tests := []struct {
		rating Rating
		want   bool
	}{
		{RatingG, true},
		{RatingPG, true},
		{RatingPG13, true},
		{RatingR, true},
		{RatingNC17, true},
		{Rating(""), false},
		{Rating("pg-13"), false},
		{Rating("PG13"), false},
		{Rating("X"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.rating), func(t *testing.T) {
			if got := tt.rating.IsValid(); got != tt.want {
				t.Errorf("Rating(%q).IsValid() = %v, want %v", tt.rating, got, tt.want)
			}
		})
	}
}

func TestRating_MinAge(t *testing.T) {
	tests := []struct {
		rating Rating
		want   int
	}{
		{RatingG, 0},
		{RatingPG, 0},
		{RatingPG13, 13},
		{RatingR, 17},
		{RatingNC17, 18},
	}
	for _, tt := range tests {
		t.Run(string(tt.rating), func(t *testing.T) {
			if got := tt.rating.MinAge(); got != tt.want {
				t.Errorf("Rating(%q).MinAge() = %d, want %d", tt.rating, got, tt.want)
			}
		})
	}
}

func TestParseRating(t *testing.T) {
	if _, err := ParseRating("PG-13"); err != nil {
		t.Fatalf("ParseRating(PG-13) failed: %v", err)
	}
	if _, err := ParseRating("PG-18"); err == nil {
		t.Fatal("ParseRating(PG-18) should fail")
	}
}

func TestTicketType_Multiplier(t *testing.T) {
	tests := []struct {
		typ  TicketType
		want float64
	}{
		{TicketRegular, 1.0},
		{TicketStudent, 0.8},
		{TicketSenior, 0.7},
		{TicketChild, 0.5},
		{TicketVIP, 1.5},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.Multiplier(); got != tt.want {
				t.Errorf("TicketType(%q).Multiplier() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestScreeningType_Multiplier(t *testing.T) {
	tests := []struct {
		typ  ScreeningType
		want float64
	}{
		{ScreeningRegular, 1.0},
		{ScreeningPremiere, 1.5},
		{ScreeningMidnight, 0.8},
		{ScreeningMatinee, 0.7},
		{ScreeningSeniorDay, 0.6},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.Multiplier(); got != tt.want {
				t.Errorf("ScreeningType(%q).Multiplier() = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}
