package sqlite

import "time"

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func fromUnixNano(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}
