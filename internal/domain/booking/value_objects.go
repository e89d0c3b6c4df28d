package booking

import (
	"errors"
	"time"

	"voltshare-booking/internal/domain/schedule"
)

var (
	ErrInvalidRange  = errors.New("range start must not be after end")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Range is a committed selection expressed as bucket starts, both inclusive.
// A single-bucket booking has start == end; the persisted reservation runs
// to ReservationEnd, which is always strictly after start.
type Range struct {
	start time.Time
	end   time.Time
}

func NewRange(start, end time.Time) (Range, error) {
	if start.After(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{start: start, end: end}, nil
}

// RangeFromSelection lifts a committed selection into a booking range.
func RangeFromSelection(sel *schedule.Selection) (Range, error) {
	start, end, err := sel.Range()
	if err != nil {
		return Range{}, err
	}
	return NewRange(start, end)
}

func (r Range) Start() time.Time { return r.start }
func (r Range) End() time.Time   { return r.end }

// ReservationEnd is the exclusive end instant of the booked window: the end
// bucket's hour counts fully.
func (r Range) ReservationEnd() time.Time {
	return r.end.Add(schedule.BucketDuration)
}

// InclusiveHours is the billed duration: the number of buckets between start
// and end, counting both endpoints.
func (r Range) InclusiveHours() int {
	return int(r.end.Sub(r.start)/schedule.BucketDuration) + 1
}

func (r Range) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Euros() float64 {
	return float64(m.cents) / 100.0
}
