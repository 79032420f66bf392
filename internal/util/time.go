package util

import "time"

// TimestampLayout is the wire format for response timestamps: UTC with
// microsecond precision, parseable as RFC 3339.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Timestamp returns the current UTC time in the wire format.
func Timestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}
