package format

import (
	"testing"
	"time"
)

func TestFiletimeToTime(t *testing.T) {
	got := FiletimeToTime(131560831927601799)
	want := time.Date(2017, 11, 25, 11, 33, 12, 760179900, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("FiletimeToTime = %v, want %v", got, want)
	}

	if epoch := FiletimeToTime(filetimeUnixOffset); !epoch.Equal(time.Unix(0, 0)) {
		t.Fatalf("unix epoch mismatch: %v", epoch)
	}

	if early := FiletimeToTime(1); early.Year() != 1601 {
		t.Fatalf("expected a 1601 timestamp, got %v", early)
	}
}

func TestTimeToFiletimeRoundTrip(t *testing.T) {
	in := time.Date(2017, 11, 25, 11, 33, 12, 760179900, time.UTC)
	if got := TimeToFiletime(in); got != 131560831927601799 {
		t.Fatalf("TimeToFiletime = %d", got)
	}
	if got := TimeToFiletime(time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Fatalf("pre-1601 should clamp to 0, got %d", got)
	}
}
