package format

import "time"

const (
	// filetimeUnixOffset is the number of 100ns ticks between 1601-01-01
	// and 1970-01-01.
	filetimeUnixOffset = 116444736000000000
	ticksPerSecond     = 10000000
)

// FiletimeToTime converts a Windows FILETIME (100ns ticks since
// 1601-01-01 UTC) to time.Time. Values before the Unix epoch are kept
// rather than clamped so annotations show what the file actually holds.
func FiletimeToTime(v uint64) time.Time {
	sec := int64(v/ticksPerSecond) - filetimeUnixOffset/ticksPerSecond
	nsec := int64(v%ticksPerSecond) * 100
	return time.Unix(sec, nsec).UTC()
}

// TimeToFiletime converts a time.Time to a Windows FILETIME value.
func TimeToFiletime(t time.Time) uint64 {
	sec := t.Unix() + filetimeUnixOffset/ticksPerSecond
	if sec < 0 {
		return 0
	}
	return uint64(sec)*ticksPerSecond + uint64(t.Nanosecond()/100)
}
