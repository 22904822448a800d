package main

import (
	"testing"

	"github.com/ribhisaleh/poker-trainer/internal/deck"
)

func TestParseCardGroup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     int
		hasError bool
	}{
		{
			name:     "Hole cards",
			input:    "AcKh",
			want:     2,
			hasError: false,
		},
		{
			name:     "Hole cards with spaces",
			input:    "Ac Kh",
			want:     2,
			hasError: false,
		},
		{
			name:     "Flop",
			input:    "QsJs2h",
			want:     3,
			hasError: false,
		},
		{
			name:     "Wrong card count",
			input:    "AcKhQd",
			want:     2,
			hasError: true,
		},
		{
			name:     "Invalid card format",
			input:    "AcXy",
			want:     2,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := parseCardGroup(tt.input, tt.want, "cards")

			if tt.hasError {
				if err == nil {
					t.Errorf("expected error, got cards %v", cards)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cards) != tt.want {
				t.Errorf("expected %d cards, got %d", tt.want, len(cards))
			}
		})
	}
}

func TestValidateNoDuplicates(t *testing.T) {
	if err := validateNoDuplicates(deck.MustParseCards("AsKsQsJs2h")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validateNoDuplicates(deck.MustParseCards("AsKsAs")); err == nil {
		t.Error("expected duplicate card error")
	}
}
