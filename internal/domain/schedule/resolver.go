package schedule

import (
	"time"

	"voltshare-booking/internal/domain/station"
)

// ResolveDay computes the 24-bucket status grid for one calendar day from a
// station's reservation snapshot. It is a pure function of (day, reservations,
// now): no side effects, identical output for identical input.
//
// A bucket is Taken when any reservation strictly overlaps its half-open
// window (bucketStart < resEnd && bucketEnd > resStart), which also covers
// reservation boundaries that are not hour-aligned. A bucket is Past when its
// window starts before now. A bucket can be both in the past and taken; Past
// wins for display and both are unselectable either way.
func ResolveDay(day time.Time, reservations []station.ExistingReservation, now time.Time) []TimeBucket {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	buckets := make([]TimeBucket, BucketsPerDay)
	for h := range BucketsPerDay {
		start := midnight.Add(time.Duration(h) * BucketDuration)
		end := start.Add(BucketDuration)

		status := StatusAvailable
		if taken(start, end, reservations) {
			status = StatusTaken
		}
		if start.Before(now) {
			status = StatusPast
		}

		buckets[h] = TimeBucket{Start: start, End: end, Status: status}
	}
	return buckets
}

func taken(start, end time.Time, reservations []station.ExistingReservation) bool {
	for _, r := range reservations {
		if r.Overlaps(start, end) {
			return true
		}
	}
	return false
}
