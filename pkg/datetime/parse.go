// Package datetime parses the YYYY-MM-DD date strings accepted on the command
// line and over HTTP.
package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/zemenbar/pkg/constants"
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
)

const (
	// DateTimeLayout is the format expected for date arguments and is also the
	// output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// SplitDate splits a YYYY-MM-DD string into its numeric fields. Only the
// shape is checked; whether the fields name a real day is left to the caller.
func SplitDate(date string) (year, month, day int, err error) {
	parts := strings.Split(date, "-")
	if len(date) != len(DateTimeLayout) || len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	fields := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
		}
		fields[i] = n
	}
	return fields[0], fields[1], fields[2], nil
}

// ParseGregorian parses a YYYY-MM-DD Gregorian date.
func ParseGregorian(date string) (ethiopic.GregorianDate, error) {
	year, month, day, err := SplitDate(date)
	if err != nil {
		return ethiopic.GregorianDate{}, fmt.Errorf("invalid Gregorian date: %w", err)
	}
	g := ethiopic.GregorianDate{Year: year, Month: month, Day: day}
	if !g.Valid() {
		return ethiopic.GregorianDate{}, fmt.Errorf("invalid Gregorian date %q", date)
	}
	return g, nil
}

// ParseEthiopian parses a YYYY-MM-DD Ethiopian date. time.Parse cannot be
// used since months run to 13 and Pagume ends on day 5 or 6.
func ParseEthiopian(date string) (ethiopic.EthiopianDate, error) {
	year, month, day, err := SplitDate(date)
	if err != nil {
		return ethiopic.EthiopianDate{}, fmt.Errorf("invalid Ethiopian date: %w", err)
	}
	d := ethiopic.NewDate(year, month, day)
	if !d.Valid() {
		return ethiopic.EthiopianDate{}, fmt.Errorf("invalid Ethiopian date %q", date)
	}
	return d, nil
}
