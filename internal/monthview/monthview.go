// Package monthview assembles the day grid of an Ethiopian month.
package monthview

import (
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
	"github.com/iwvelando/zemenbar/pkg/geez"
	"github.com/iwvelando/zemenbar/pkg/locale"
)

// CalendarMonth is a read-only view of one Ethiopian month.
type CalendarMonth struct {
	Year             int           `json:"year"`
	YearGeez         string        `json:"year_geez"`
	Month            int           `json:"month"`
	MonthNameAmharic string        `json:"month_name_amharic"`
	MonthNameEnglish string        `json:"month_name_english"`
	Days             []CalendarDay `json:"days"`
	FirstDayWeekday  int           `json:"first_day_weekday"`
}

// CalendarDay is one cell of a CalendarMonth.
type CalendarDay struct {
	Day                int    `json:"day"`
	DayGeez            string `json:"day_geez"`
	IsToday            bool   `json:"is_today"`
	Weekday            int    `json:"weekday"`
	WeekdayNameAmharic string `json:"weekday_name_amharic"`
	WeekdayNameEnglish string `json:"weekday_name_english"`
}

// MonthName returns the month name in lang.
func (m CalendarMonth) MonthName(lang locale.Language) string {
	if lang == locale.English {
		return m.MonthNameEnglish
	}
	return m.MonthNameAmharic
}

// Today returns the day marked as today, if any.
func (m CalendarMonth) Today() (CalendarDay, bool) {
	for _, d := range m.Days {
		if d.IsToday {
			return d, true
		}
	}
	return CalendarDay{}, false
}

// WeekdayName returns the weekday name in lang.
func (d CalendarDay) WeekdayName(lang locale.Language) string {
	if lang == locale.English {
		return d.WeekdayNameEnglish
	}
	return d.WeekdayNameAmharic
}

// Builder builds month views relative to the date reported by its clock.
type Builder struct {
	clock ethiopic.Clock
}

// NewBuilder returns a Builder; a nil clock reads the local wall clock.
func NewBuilder(clock ethiopic.Clock) *Builder {
	if clock == nil {
		clock = ethiopic.SystemClock{}
	}
	return &Builder{clock: clock}
}

// Build returns the view of the given Ethiopian month. A month outside
// 1..13 yields no days and "Unknown" names.
func (b *Builder) Build(year, month int) CalendarMonth {
	today := ethiopic.Today(b.clock)
	n := ethiopic.DaysInMonth(year, month)

	view := CalendarMonth{
		Year:             year,
		YearGeez:         geez.Encode(year),
		Month:            month,
		MonthNameAmharic: locale.MonthName(month, locale.Amharic),
		MonthNameEnglish: locale.MonthName(month, locale.English),
		Days:             make([]CalendarDay, 0, n),
		FirstDayWeekday:  ethiopic.WeekdayOf(ethiopic.NewDate(year, month, 1)),
	}

	for day := 1; day <= n; day++ {
		date := ethiopic.NewDate(year, month, day)
		weekday := ethiopic.WeekdayOf(date)
		view.Days = append(view.Days, CalendarDay{
			Day:                day,
			DayGeez:            date.DayGeez,
			IsToday:            date.Equal(today),
			Weekday:            weekday,
			WeekdayNameAmharic: locale.WeekdayName(weekday, locale.Amharic),
			WeekdayNameEnglish: locale.WeekdayName(weekday, locale.English),
		})
	}
	return view
}

// Weeks splits the month into rows of seven cells for a Sunday-first
// grid. Cells before the first day and after the last are nil.
func (m CalendarMonth) Weeks() [][]*CalendarDay {
	if len(m.Days) == 0 {
		return nil
	}
	var weeks [][]*CalendarDay
	row := make([]*CalendarDay, m.FirstDayWeekday, 7)
	for i := range m.Days {
		row = append(row, &m.Days[i])
		if len(row) == 7 {
			weeks = append(weeks, row)
			row = make([]*CalendarDay, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, nil)
		}
		weeks = append(weeks, row)
	}
	return weeks
}
