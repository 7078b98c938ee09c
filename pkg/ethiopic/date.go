// Package ethiopic converts dates between the Ethiopian and the proleptic
// Gregorian calendars.
//
// Both calendars are mapped onto Julian Day Numbers. The Ethiopian
// calendar is anchored at the Amete Mihret epoch: Meskerem 1 of year 1
// is JDN 1724221 (29 August 8 CE in the Julian calendar). Leap years,
// where Pagume has a sixth day, follow from the epoch arithmetic.
package ethiopic

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/iwvelando/zemenbar/pkg/geez"
)

// Pagume is the thirteenth, short month of the Ethiopian year.
const Pagume = 13

// EthiopianDate is a day in the Ethiopian calendar. DayGeez caches the Geez
// rendering of Day and is not part of the date's identity.
type EthiopianDate struct {
	Year    int    `json:"year" yaml:"year"`
	Month   int    `json:"month" yaml:"month"`
	Day     int    `json:"day" yaml:"day"`
	DayGeez string `json:"day_geez" yaml:"dayGeez"`
}

// NewDate returns the EthiopianDate for the given parts with DayGeez filled
// in. It does not validate; use Valid for that.
func NewDate(year, month, day int) EthiopianDate {
	return EthiopianDate{Year: year, Month: month, Day: day, DayGeez: geez.Encode(day)}
}

// Valid reports whether the date exists in the Ethiopian calendar.
func (e EthiopianDate) Valid() bool {
	return e.Year >= 1 && e.Day >= 1 && e.Day <= DaysInMonth(e.Year, e.Month)
}

// Equal compares year, month and day.
func (e EthiopianDate) Equal(o EthiopianDate) bool {
	return e.Year == o.Year && e.Month == o.Month && e.Day == o.Day
}

// YearGeez renders the year in Geez numerals.
func (e EthiopianDate) YearGeez() string {
	return geez.Encode(e.Year)
}

func (e EthiopianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", e.Year, e.Month, e.Day)
}

// IsLeapYear reports whether Pagume has six days in the given year.
func IsLeapYear(year int) bool {
	return mod(year, 4) == 3
}

// DaysInMonth returns the number of days in the Ethiopian month, or 0 for
// a month outside 1..13.
func DaysInMonth(year, month int) int {
	switch {
	case month < 1 || month > Pagume:
		return 0
	case month < Pagume:
		return 30
	case IsLeapYear(year):
		return 6
	default:
		return 5
	}
}

// GregorianDate is a day in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// GregorianFromTime returns the calendar date of t in t's location.
func GregorianFromTime(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: int(m), Day: d}
}

// Valid reports whether the date exists in the proleptic Gregorian calendar.
// Years before 1 CE are rejected.
func (g GregorianDate) Valid() bool {
	if g.Year < 1 || g.Month < 1 || g.Month > 12 || g.Day < 1 {
		return false
	}
	return g.Day <= datetime.DaysInMonth(g.Year, datetime.Month(g.Month))
}

// Time returns midnight UTC of the date.
func (g GregorianDate) Time() time.Time {
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC)
}

func (g GregorianDate) String() string {
	return g.Time().Format("2006-01-02")
}
