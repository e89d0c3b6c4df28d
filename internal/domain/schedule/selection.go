package schedule

import (
	"errors"
	"time"
)

var ErrNotCommitted = errors.New("selection is not committed")

type SelectionState string

const (
	SelectionEmpty     SelectionState = "empty"
	SelectionPartial   SelectionState = "partially_selected"
	SelectionCommitted SelectionState = "committed"
)

// Selection accumulates taps on available buckets into a validated
// [start, end] range of bucket starts. The state is an explicit tagged
// variant: end is only ever meaningful in the committed state, so "end set
// while start unset" cannot be represented.
//
// Selection is keyed by absolute instants, not by the displayed day, so
// paging the calendar does not disturb it. A range spanning calendar days is
// therefore representable; the HTTP layer only ever offers same-day buckets.
type Selection struct {
	state SelectionState
	start time.Time
	end   time.Time
}

func NewSelection() *Selection {
	return &Selection{state: SelectionEmpty}
}

// Tap feeds one bucket tap into the state machine. Taps on buckets that are
// not selectable (taken or past) are ignored and report false.
//
// Empty: first tap opens a range. Partial: a second tap commits it, swapping
// the endpoints when the rider picked the end first. Committed: any further
// tap abandons the range and starts a fresh one; there is no extend.
func (s *Selection) Tap(bucket TimeBucket) bool {
	if !bucket.Status.Selectable() {
		return false
	}

	switch s.state {
	case SelectionEmpty:
		s.start = bucket.Start
		s.state = SelectionPartial
	case SelectionPartial:
		if bucket.Start.Before(s.start) {
			s.end = s.start
			s.start = bucket.Start
		} else {
			s.end = bucket.Start
		}
		s.state = SelectionCommitted
	case SelectionCommitted:
		s.start = bucket.Start
		s.end = time.Time{}
		s.state = SelectionPartial
	}
	return true
}

func (s *Selection) Reset() {
	*s = Selection{state: SelectionEmpty}
}

func (s *Selection) State() SelectionState {
	return s.state
}

// Start returns the opening bucket start once one has been tapped.
func (s *Selection) Start() (time.Time, bool) {
	if s.state == SelectionEmpty {
		return time.Time{}, false
	}
	return s.start, true
}

// Range returns the committed [start, end] bucket starts, both inclusive.
// start == end is a valid single-bucket range.
func (s *Selection) Range() (start, end time.Time, err error) {
	if s.state != SelectionCommitted {
		return time.Time{}, time.Time{}, ErrNotCommitted
	}
	return s.start, s.end, nil
}

// Covers reports whether a bucket should render as Selected: the whole
// inclusive range when committed, just the opening bucket when partial.
func (s *Selection) Covers(bucket TimeBucket) bool {
	switch s.state {
	case SelectionPartial:
		return bucket.Start.Equal(s.start)
	case SelectionCommitted:
		return !bucket.Start.Before(s.start) && !bucket.Start.After(s.end)
	default:
		return false
	}
}

// Overlay returns a copy of buckets with the selection painted on top.
// Only available buckets are repainted; past/taken rendering is untouched.
func (s *Selection) Overlay(buckets []TimeBucket) []TimeBucket {
	out := make([]TimeBucket, len(buckets))
	copy(out, buckets)
	for i, b := range out {
		if b.Status == StatusAvailable && s.Covers(b) {
			out[i].Status = StatusSelected
		}
	}
	return out
}
