package schedule

import "time"

// BucketStatus is the render/selection state of one hour of a day.
type BucketStatus string

const (
	StatusAvailable BucketStatus = "available"
	StatusTaken     BucketStatus = "taken"
	StatusPast      BucketStatus = "past"
	StatusSelected  BucketStatus = "selected"
)

func (s BucketStatus) String() string {
	return string(s)
}

// Selectable reports whether a tap on a bucket with this status does anything.
func (s BucketStatus) Selectable() bool {
	return s == StatusAvailable || s == StatusSelected
}

// TimeBucket is one fixed one-hour interval of a calendar day. Buckets are
// derived values: they are recomputed whenever the active day, the
// reservation snapshot, or "now" changes, and are never persisted.
type TimeBucket struct {
	Start  time.Time
	End    time.Time
	Status BucketStatus
}

// OverlapsWindow reports whether the bucket's half-open window [Start, End)
// strictly overlaps [start, end).
func (b TimeBucket) OverlapsWindow(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

const BucketsPerDay = 24

// BucketDuration is the fixed bucket width. The grid the mobile UI renders
// is hourly; finer granularity would change the day tiling invariant.
const BucketDuration = time.Hour
