//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"voltshare-booking/internal/domain/schedule"
	"voltshare-booking/internal/domain/station"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var berlin = time.FixedZone("CET", 3600)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, berlin)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, berlin)
}

func reservation(start, end time.Time) station.ExistingReservation {
	return station.ExistingReservation{StartTime: start, EndTime: end}
}

func TestResolveDay(t *testing.T) {
	target := day(2026, 3, 10)
	past := at(2026, 3, 9, 12, 0) // 前日の正午、全バケット未来

	t.Run("24個のバケットが隙間なく1日を敷き詰める", func(t *testing.T) {
		buckets := schedule.ResolveDay(target, nil, past)

		require.Len(t, buckets, schedule.BucketsPerDay)
		assert.True(t, buckets[0].Start.Equal(target))
		assert.True(t, buckets[23].End.Equal(target.AddDate(0, 0, 1)))
		for i := 1; i < len(buckets); i++ {
			assert.True(t, buckets[i].Start.Equal(buckets[i-1].End), "bucket %d must start where %d ends", i, i-1)
		}
	})

	t.Run("予約なしなら全てavailable", func(t *testing.T) {
		buckets := schedule.ResolveDay(target, nil, past)
		for _, b := range buckets {
			assert.Equal(t, schedule.StatusAvailable, b.Status)
		}
	})

	t.Run("時刻非整列の予約は両端のバケットを塞ぐ", func(t *testing.T) {
		// 09:30-10:30 の予約は 09:00 と 10:00 の両方を taken にする
		res := []station.ExistingReservation{
			reservation(at(2026, 3, 10, 9, 30), at(2026, 3, 10, 10, 30)),
		}
		buckets := schedule.ResolveDay(target, res, past)

		assert.Equal(t, schedule.StatusTaken, buckets[9].Status)
		assert.Equal(t, schedule.StatusTaken, buckets[10].Status)
		assert.Equal(t, schedule.StatusAvailable, buckets[8].Status)
		assert.Equal(t, schedule.StatusAvailable, buckets[11].Status)
	})

	t.Run("境界一致の予約は隣接バケットを塞がない", func(t *testing.T) {
		// 10:00-12:00 ちょうどの予約は 09:00 と 12:00 を塞がない
		res := []station.ExistingReservation{
			reservation(at(2026, 3, 10, 10, 0), at(2026, 3, 10, 12, 0)),
		}
		buckets := schedule.ResolveDay(target, res, past)

		assert.Equal(t, schedule.StatusAvailable, buckets[9].Status)
		assert.Equal(t, schedule.StatusTaken, buckets[10].Status)
		assert.Equal(t, schedule.StatusTaken, buckets[11].Status)
		assert.Equal(t, schedule.StatusAvailable, buckets[12].Status)
	})

	t.Run("nowより前に始まるバケットはpast", func(t *testing.T) {
		now := at(2026, 3, 10, 14, 30) // 14時台の途中
		buckets := schedule.ResolveDay(target, nil, now)

		for h := 0; h <= 14; h++ {
			assert.Equal(t, schedule.StatusPast, buckets[h].Status, "hour %d", h)
		}
		for h := 15; h < 24; h++ {
			assert.Equal(t, schedule.StatusAvailable, buckets[h].Status, "hour %d", h)
		}
	})

	t.Run("過去かつ予約済みはpastとして表示される", func(t *testing.T) {
		now := at(2026, 3, 10, 14, 30)
		res := []station.ExistingReservation{
			reservation(at(2026, 3, 10, 9, 0), at(2026, 3, 10, 11, 0)),
		}
		buckets := schedule.ResolveDay(target, res, now)

		assert.Equal(t, schedule.StatusPast, buckets[9].Status)
		assert.Equal(t, schedule.StatusPast, buckets[10].Status)
	})

	t.Run("同一入力なら同一出力の純関数", func(t *testing.T) {
		res := []station.ExistingReservation{
			reservation(at(2026, 3, 10, 9, 30), at(2026, 3, 10, 10, 30)),
		}
		now := at(2026, 3, 10, 8, 0)

		first := schedule.ResolveDay(target, res, now)
		second := schedule.ResolveDay(target, res, now)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("ResolveDay mismatch (-want +got):\n%s", diff)
		}
	})
}
