package output

import (
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/iwvelando/zemenbar/internal/monthview"
	"github.com/iwvelando/zemenbar/pkg/constants"
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
	"github.com/iwvelando/zemenbar/pkg/geez"
	"github.com/iwvelando/zemenbar/pkg/locale"
)

// IcsString renders a month as an iCalendar document with one all-day
// event per Ethiopian day, placed on its Gregorian date.
func IcsString(view monthview.CalendarMonth, opts Options) string {
	cal := newCalendar()
	for _, day := range view.Days {
		date := ethiopic.NewDate(view.Year, view.Month, day.Day)
		summary := fmt.Sprintf("%s %s %s", view.MonthName(opts.Language),
			geez.Digits(day.Day, opts.Geez), geez.Digits(view.Year, opts.Geez))
		addDay(cal, date, summary, day.WeekdayName(opts.Language))
	}
	return cal.Serialize()
}

// IcsFormat outputs a month in iCalendar format.
func IcsFormat(view monthview.CalendarMonth, opts Options) {
	fmt.Print(IcsString(view, opts))
}

// IcsDate outputs a single date as an iCalendar document.
func IcsDate(date ethiopic.EthiopianDate, text string, lang locale.Language) {
	cal := newCalendar()
	addDay(cal, date, text, locale.WeekdayName(ethiopic.WeekdayOf(date), lang))
	fmt.Print(cal.Serialize())
}

func newCalendar() *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(constants.ICSProductID)
	return cal
}

func addDay(cal *ics.Calendar, date ethiopic.EthiopianDate, summary, weekday string) {
	start := ethiopic.ToGregorian(date).Time()
	event := cal.AddEvent(fmt.Sprintf("%s@zemenbar", date))
	event.SetDtStampTime(start)
	event.SetAllDayStartAt(start)
	event.SetAllDayEndAt(start.AddDate(0, 0, 1))
	event.SetSummary(summary)
	event.SetDescription(strings.Join([]string{weekday, date.String()}, " "))
}
