package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestMonthBounds は月の初日と末日が正しく計算されることをテーブル駆動テストで検証します。
func TestMonthBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		now      time.Time
		wantFrom string
		wantTo   string
	}{
		{name: "31-day month", now: time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC), wantFrom: "2026-10-01", wantTo: "2026-10-31"},
		{name: "30-day month", now: time.Date(2026, 11, 30, 23, 59, 59, 0, time.UTC), wantFrom: "2026-11-01", wantTo: "2026-11-30"},
		{name: "february", now: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), wantFrom: "2026-02-01", wantTo: "2026-02-28"},
		{name: "leap february", now: time.Date(2028, 2, 29, 12, 0, 0, 0, time.UTC), wantFrom: "2028-02-01", wantTo: "2028-02-29"},
		{name: "december", now: time.Date(2022, 12, 22, 3, 2, 14, 0, time.UTC), wantFrom: "2022-12-01", wantTo: "2022-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			from, to := MonthBounds(tt.now)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestEndOfMonth_KeepsLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("JST", 9*60*60)
	end := EndOfMonth(time.Date(2026, 1, 31, 23, 0, 0, 0, loc))

	assert.Equal(t, loc, end.Location())
	assert.Equal(t, 31, end.Day())
}
