package schedule

import (
	"time"

	"voltshare-booking/internal/pkg/clock"
)

// Cursor is the day/week position the booking screen is showing.
type Cursor struct {
	ActiveDay        time.Time // midnight in the navigator's location
	ActiveWeekOffset int       // whole weeks from the current week
}

// Navigator governs which day is active and which week is shown. Browsing
// into the past is rejected by snapping back to the current position, with
// no error raised: the UI simply stays put. Selection state is deliberately
// not touched by navigation; resetting on day change is the caller's policy.
type Navigator struct {
	clock     clock.Clock
	activeDay time.Time
	weekOff   int
}

func NewNavigator(clk clock.Clock) *Navigator {
	return &Navigator{
		clock:     clk,
		activeDay: midnightOf(clk.Now()),
	}
}

func (n *Navigator) Cursor() Cursor {
	return Cursor{ActiveDay: n.activeDay, ActiveWeekOffset: n.weekOff}
}

// PageWeek moves the view one week forward or back, keeping the same weekday.
// Direction is clamped to {-1, 0, +1}; 0 is a no-op.
func (n *Navigator) PageWeek(direction int) Cursor {
	direction = clampDirection(direction)
	if direction == 0 {
		return n.Cursor()
	}

	candidate := n.activeDay.AddDate(0, 0, 7*direction)
	if candidate.Before(n.today()) {
		return n.Cursor()
	}

	n.activeDay = candidate
	n.weekOff += direction
	return n.Cursor()
}

// PageDay moves the active day by one. Crossing a week boundary drags the
// week cursor along so the two never disagree.
func (n *Navigator) PageDay(direction int) Cursor {
	direction = clampDirection(direction)
	if direction == 0 {
		return n.Cursor()
	}

	candidate := n.activeDay.AddDate(0, 0, direction)
	if candidate.Before(n.today()) {
		return n.Cursor()
	}

	if !weekStart(candidate).Equal(weekStart(n.activeDay)) {
		n.weekOff += direction
	}
	n.activeDay = candidate
	return n.Cursor()
}

func (n *Navigator) today() time.Time {
	return midnightOf(n.clock.Now())
}

func clampDirection(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday of t's week.
func weekStart(t time.Time) time.Time {
	day := midnightOf(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
