package pricing_test

import (
	"testing"
	"time"

	"riviera/internal/domains/booking/pricing"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, _ := time.Parse(time.DateOnly, value)

	return t
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		checkIn  time.Time
		checkOut time.Time
		want     pricing.Quote
		wantErr  bool
	}{
		{
			name:     "three nights standard rate",
			rate:     150,
			checkIn:  date("2024-01-10"),
			checkOut: date("2024-01-13"),
			want:     pricing.Quote{Nights: 3, Rate: 150, Subtotal: 450, Tax: 54, Total: 504},
		},
		{
			name:     "single night",
			rate:     200,
			checkIn:  date("2024-03-01"),
			checkOut: date("2024-03-02"),
			want:     pricing.Quote{Nights: 1, Rate: 200, Subtotal: 200, Tax: 24, Total: 224},
		},
		{
			name:     "suite three nights rounds tax to whole units",
			rate:     399,
			checkIn:  date("2024-06-10"),
			checkOut: date("2024-06-13"),
			want:     pricing.Quote{Nights: 3, Rate: 399, Subtotal: 1197, Tax: 144, Total: 1341},
		},
		{
			name:     "partial day rounds up to a full night",
			rate:     100,
			checkIn:  date("2024-05-01"),
			checkOut: date("2024-05-02").Add(10 * time.Hour),
			want:     pricing.Quote{Nights: 2, Rate: 100, Subtotal: 200, Tax: 24, Total: 224},
		},
		{
			name:     "free stay",
			rate:     0,
			checkIn:  date("2024-02-01"),
			checkOut: date("2024-02-03"),
			want:     pricing.Quote{Nights: 2, Rate: 0, Subtotal: 0, Tax: 0, Total: 0},
		},
		{
			name:     "checkout equals checkin",
			rate:     150,
			checkIn:  date("2024-01-10"),
			checkOut: date("2024-01-10"),
			wantErr:  true,
		},
		{
			name:     "checkout before checkin",
			rate:     150,
			checkIn:  date("2024-01-13"),
			checkOut: date("2024-01-10"),
			wantErr:  true,
		},
		{
			name:     "negative rate",
			rate:     -1,
			checkIn:  date("2024-01-10"),
			checkOut: date("2024-01-13"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Compute(tt.rate, tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Subtotal+got.Tax, got.Total)
		})
	}
}
