//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"voltshare-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availableBucket(hour int) schedule.TimeBucket {
	start := at(2026, 3, 10, hour, 0)
	return schedule.TimeBucket{
		Start:  start,
		End:    start.Add(time.Hour),
		Status: schedule.StatusAvailable,
	}
}

func TestSelectionTap(t *testing.T) {
	t.Run("最初のタップで範囲が開く", func(t *testing.T) {
		sel := schedule.NewSelection()

		assert.True(t, sel.Tap(availableBucket(10)))
		assert.Equal(t, schedule.SelectionPartial, sel.State())

		start, ok := sel.Start()
		require.True(t, ok)
		assert.True(t, start.Equal(at(2026, 3, 10, 10, 0)))
	})

	t.Run("2回目のタップで確定する", func(t *testing.T) {
		sel := schedule.NewSelection()
		sel.Tap(availableBucket(10))
		sel.Tap(availableBucket(12))

		assert.Equal(t, schedule.SelectionCommitted, sel.State())
		start, end, err := sel.Range()
		require.NoError(t, err)
		assert.True(t, start.Equal(at(2026, 3, 10, 10, 0)))
		assert.True(t, end.Equal(at(2026, 3, 10, 12, 0)))
	})

	t.Run("逆順のタップは端点を入れ替えて同じ範囲になる", func(t *testing.T) {
		sel := schedule.NewSelection()
		sel.Tap(availableBucket(12))
		sel.Tap(availableBucket(10))

		start, end, err := sel.Range()
		require.NoError(t, err)
		assert.True(t, start.Equal(at(2026, 3, 10, 10, 0)))
		assert.True(t, end.Equal(at(2026, 3, 10, 12, 0)))
	})

	t.Run("同一バケット2回タップは1時間の範囲", func(t *testing.T) {
		sel := schedule.NewSelection()
		sel.Tap(availableBucket(10))
		sel.Tap(availableBucket(10))

		start, end, err := sel.Range()
		require.NoError(t, err)
		assert.True(t, start.Equal(end))
	})

	t.Run("確定後のタップは新しい範囲を開き直す", func(t *testing.T) {
		sel := schedule.NewSelection()
		sel.Tap(availableBucket(10))
		sel.Tap(availableBucket(12))
		sel.Tap(availableBucket(15))

		assert.Equal(t, schedule.SelectionPartial, sel.State())
		start, ok := sel.Start()
		require.True(t, ok)
		assert.True(t, start.Equal(at(2026, 3, 10, 15, 0)))

		_, _, err := sel.Range()
		assert.ErrorIs(t, err, schedule.ErrNotCommitted)
	})

	t.Run("選択不可バケットへのタップは無視される", func(t *testing.T) {
		taken := availableBucket(11)
		taken.Status = schedule.StatusTaken
		past := availableBucket(8)
		past.Status = schedule.StatusPast

		sel := schedule.NewSelection()
		assert.False(t, sel.Tap(taken))
		assert.False(t, sel.Tap(past))
		assert.Equal(t, schedule.SelectionEmpty, sel.State())
	})

	t.Run("Resetで空に戻る", func(t *testing.T) {
		sel := schedule.NewSelection()
		sel.Tap(availableBucket(10))
		sel.Tap(availableBucket(12))
		sel.Reset()

		assert.Equal(t, schedule.SelectionEmpty, sel.State())
		_, ok := sel.Start()
		assert.False(t, ok)
	})
}

func TestSelectionOverlay(t *testing.T) {
	t.Run("確定範囲のavailableバケットだけがselectedになる", func(t *testing.T) {
		buckets := []schedule.TimeBucket{
			availableBucket(9),
			availableBucket(10),
			availableBucket(11),
			availableBucket(12),
			availableBucket(13),
		}
		buckets[2].Status = schedule.StatusTaken // 11時台

		sel := schedule.NewSelection()
		sel.Tap(buckets[1])
		sel.Tap(buckets[3])

		painted := sel.Overlay(buckets)

		assert.Equal(t, schedule.StatusAvailable, painted[0].Status)
		assert.Equal(t, schedule.StatusSelected, painted[1].Status)
		assert.Equal(t, schedule.StatusTaken, painted[2].Status)
		assert.Equal(t, schedule.StatusSelected, painted[3].Status)
		assert.Equal(t, schedule.StatusAvailable, painted[4].Status)

		// 元のスライスは変更されない
		assert.Equal(t, schedule.StatusAvailable, buckets[1].Status)
	})

	t.Run("部分選択中は開始バケットのみselected", func(t *testing.T) {
		buckets := []schedule.TimeBucket{
			availableBucket(9),
			availableBucket(10),
			availableBucket(11),
		}

		sel := schedule.NewSelection()
		sel.Tap(buckets[1])

		painted := sel.Overlay(buckets)

		assert.Equal(t, schedule.StatusAvailable, painted[0].Status)
		assert.Equal(t, schedule.StatusSelected, painted[1].Status)
		assert.Equal(t, schedule.StatusAvailable, painted[2].Status)
	})
}
