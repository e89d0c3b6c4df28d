//go:build unit

package booking_test

import (
	"testing"
	"time"

	"voltshare-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourAt(hh int) time.Time {
	return time.Date(2026, 3, 10, hh, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, startHour, endHour int) booking.Range {
	t.Helper()
	rng, err := booking.NewRange(hourAt(startHour), hourAt(endHour))
	require.NoError(t, err)
	return rng
}

func TestTaxedHourlyCalculator(t *testing.T) {
	calc := booking.NewTaxedHourlyCalculator(70)

	t.Run("時間単価に税を足して切り上げる", func(t *testing.T) {
		// 5.00€/h + 0.70€ 税、3時間（10時〜12時の包含範囲）で 17.10€ → 18€
		rng := mustRange(t, 10, 12)
		price := calc.Calculate(500, rng)

		assert.Equal(t, int64(1800), price.Cents())
		assert.Equal(t, 18.0, price.Euros())
	})

	t.Run("ちょうど割り切れる場合は切り上げない", func(t *testing.T) {
		// 9.30€/h + 0.70€ = 10.00€ × 2時間 = 20.00€
		rng := mustRange(t, 10, 11)
		price := calc.Calculate(930, rng)

		assert.Equal(t, int64(2000), price.Cents())
	})

	t.Run("単一バケットは1時間として課金される", func(t *testing.T) {
		rng := mustRange(t, 10, 10)
		price := calc.Calculate(500, rng)

		// (5.00 + 0.70) × 1 = 5.70€ → 6€
		assert.Equal(t, int64(600), price.Cents())
	})

	t.Run("税ゼロでも端数があれば切り上げ", func(t *testing.T) {
		noTax := booking.NewTaxedHourlyCalculator(0)
		rng := mustRange(t, 10, 10)
		price := noTax.Calculate(450, rng)

		assert.Equal(t, int64(500), price.Cents())
	})
}

func TestRange(t *testing.T) {
	t.Run("startがendより後ならエラー", func(t *testing.T) {
		_, err := booking.NewRange(hourAt(12), hourAt(10))
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("ReservationEndは終了バケットの1時間後", func(t *testing.T) {
		rng := mustRange(t, 10, 12)
		assert.True(t, rng.ReservationEnd().Equal(hourAt(13)))
	})

	t.Run("InclusiveHoursは両端を数える", func(t *testing.T) {
		assert.Equal(t, 3, mustRange(t, 10, 12).InclusiveHours())
		assert.Equal(t, 1, mustRange(t, 10, 10).InclusiveHours())
	})
}

func TestMoney(t *testing.T) {
	t.Run("負の金額は拒否される", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}
