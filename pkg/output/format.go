// Package output provides utilities for formatting and displaying Ethiopian
// dates and month views.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iwvelando/zemenbar/internal/monthview"
	"github.com/iwvelando/zemenbar/pkg/constants"
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
	"github.com/iwvelando/zemenbar/pkg/geez"
	"github.com/iwvelando/zemenbar/pkg/locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dayCountFooter closes the pretty grid. English falls back to the key.
const dayCountFooter = "%s days\n"

func init() {
	_ = message.SetString(language.Amharic, dayCountFooter, "%s ቀናት\n")
}

// Options selects the language and numeral style of pretty output.
type Options struct {
	Language locale.Language
	Geez     bool
}

const cellWidth = 5

// PrettyFormat outputs a month as a seven column grid followed by its day
// count. Today is marked with an asterisk.
func PrettyFormat(view monthview.CalendarMonth, opts Options) {
	p := message.NewPrinter(opts.Language.Tag())
	_, _ = p.Printf("--- %s %s ---\n", view.MonthName(opts.Language), geez.Digits(view.Year, opts.Geez))

	header := make([]string, 0, constants.DaysPerWeek)
	for weekday := 0; weekday < constants.DaysPerWeek; weekday++ {
		header = append(header, pad(abbreviate(locale.WeekdayName(weekday, opts.Language), 3)))
	}
	fmt.Println(strings.TrimRight(strings.Join(header, ""), " "))

	for _, week := range view.Weeks() {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			if day == nil {
				cells = append(cells, pad(""))
				continue
			}
			label := geez.Digits(day.Day, opts.Geez)
			if day.IsToday {
				label += "*"
			}
			cells = append(cells, pad(label))
		}
		fmt.Println(strings.TrimRight(strings.Join(cells, ""), " "))
	}
	_, _ = p.Printf(dayCountFooter, geez.Digits(len(view.Days), opts.Geez))
}

// PrettyDate outputs a single date with its Gregorian equivalent.
func PrettyDate(date ethiopic.EthiopianDate, text string) {
	fmt.Printf("%s (%s | Gregorian %s)\n", text, date, ethiopic.ToGregorian(date))
}

// CsvFormat outputs a month in comma-separated value format.
func CsvFormat(view monthview.CalendarMonth) {
	fmt.Print(CsvString(view))
}

// CsvString renders a month in comma-separated value format, one row per
// day.
func CsvString(view monthview.CalendarMonth) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"year", "month", "day", "day_geez", "weekday", "weekday_amharic", "weekday_english", "gregorian", "today"})
	for _, day := range view.Days {
		gregorian := ethiopic.ToGregorian(ethiopic.NewDate(view.Year, view.Month, day.Day))
		_ = w.Write([]string{
			strconv.Itoa(view.Year),
			strconv.Itoa(view.Month),
			strconv.Itoa(day.Day),
			day.DayGeez,
			strconv.Itoa(day.Weekday),
			day.WeekdayNameAmharic,
			day.WeekdayNameEnglish,
			gregorian.String(),
			strconv.FormatBool(day.IsToday),
		})
	}
	w.Flush()
	return buf.String()
}

// CsvDate outputs a single date in comma-separated value format.
func CsvDate(date ethiopic.EthiopianDate) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"year", "month", "day", "day_geez", "weekday", "gregorian"})
	_ = w.Write([]string{
		strconv.Itoa(date.Year),
		strconv.Itoa(date.Month),
		strconv.Itoa(date.Day),
		date.DayGeez,
		strconv.Itoa(ethiopic.WeekdayOf(date)),
		ethiopic.ToGregorian(date).String(),
	})
	w.Flush()
	fmt.Print(buf.String())
}

func abbreviate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// pad right-pads to cellWidth runes.
func pad(s string) string {
	if n := utf8.RuneCountInString(s); n < cellWidth {
		return s + strings.Repeat(" ", cellWidth-n)
	}
	return s + " "
}
