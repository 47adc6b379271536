package domain

import "time"

// TimestampLayout matches JavaScript's Date.toISOString, which keeps stored
// created_at values sortable and prefix-searchable by date.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
