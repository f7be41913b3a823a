package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
)

func TestValidateNewWorkshop(t *testing.T) {
	validDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		date        time.Time
		tncAccepted bool
		wantErr     bool
	}{
		{"valid booking", validDate, true, false},
		{"terms not accepted", validDate, false, true},
		{"zero date", time.Time{}, true, true},
		{"zero date and no terms", time.Time{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNewWorkshop(tt.date, tt.tncAccepted)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateNewWorkshop() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var vErr *apperror.ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected a ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestValidateRatingScore(t *testing.T) {
	for _, score := range []int{1, 2, 3, 4, 5} {
		if err := validateRatingScore(score); err != nil {
			t.Errorf("validateRatingScore(%d) = %v, want nil", score, err)
		}
	}

	for _, score := range []int{0, 6, -1, 100} {
		if err := validateRatingScore(score); err == nil {
			t.Errorf("validateRatingScore(%d) = nil, want error", score)
		}
	}
}
