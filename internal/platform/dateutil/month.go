// Package dateutil はフォームの既定値計算に使う日付ユーティリティを提供します。
package dateutil

import "time"

// DateLayout はフォームの日付フィールドの形式（yyyy-MM-dd）です。
const DateLayout = "2006-01-02"

// StartOfMonth は t と同じ月の初日（0時）を返します。
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth は t と同じ月の末日を返します。
func EndOfMonth(t time.Time) time.Time {
	// 翌月1日の前日
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// FormatDate は t を yyyy-MM-dd 形式で返します。
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthBounds は t の月の初日と末日を yyyy-MM-dd 形式で返します。
func MonthBounds(t time.Time) (from, to string) {
	return FormatDate(StartOfMonth(t)), FormatDate(EndOfMonth(t))
}
