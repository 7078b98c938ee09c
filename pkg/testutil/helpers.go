// Package testutil provides common utility functions for testing.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/iwvelando/zemenbar/internal/monthview"
	"github.com/iwvelando/zemenbar/pkg/datetime"
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
)

// ClockAt returns a clock fixed on the given YYYY-MM-DD Gregorian date.
// It panics if the date does not parse.
func ClockAt(date string) ethiopic.FixedClock {
	return ethiopic.FixedClock(ethiopic.GregorianFromTime(datetime.MustParseTime(datetime.DateTimeLayout, date)))
}

// FindDay finds a day by its number in the month view.
// Returns a pointer to the day if found, nil otherwise.
func FindDay(view monthview.CalendarMonth, day int) *monthview.CalendarDay {
	for i := range view.Days {
		if view.Days[i].Day == day {
			return &view.Days[i]
		}
	}
	return nil
}

// CaptureStdout runs fn and returns everything it wrote to os.Stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout
	return <-done
}
