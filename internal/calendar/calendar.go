// Package calendar is the function-level API the tray and HTTP front ends
// call into. It combines conversion, month views and display formatting.
package calendar

import (
	"fmt"
	"strings"

	"github.com/iwvelando/zemenbar/internal/monthview"
	"github.com/iwvelando/zemenbar/internal/settings"
	"github.com/iwvelando/zemenbar/pkg/ethiopic"
	"github.com/iwvelando/zemenbar/pkg/geez"
	"github.com/iwvelando/zemenbar/pkg/locale"
	"go.uber.org/zap"
)

// TrayIcon is shown in place of the date when the tray date is disabled.
const TrayIcon = "📅"

// Service answers calendar queries relative to its clock.
type Service struct {
	logger  *zap.Logger
	clock   ethiopic.Clock
	builder *monthview.Builder
}

// NewService returns a Service. A nil logger discards output and a nil
// clock reads the local wall clock.
func NewService(logger *zap.Logger, clock ethiopic.Clock) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = ethiopic.SystemClock{}
	}
	return &Service{
		logger:  logger,
		clock:   clock,
		builder: monthview.NewBuilder(clock),
	}
}

// GetCurrentDate returns today's Ethiopian date.
func (s *Service) GetCurrentDate() ethiopic.EthiopianDate {
	today := ethiopic.Today(s.clock)
	s.logger.Debug("resolved current date",
		zap.String("op", "calendar.GetCurrentDate"),
		zap.Stringer("ethiopian", today),
	)
	return today
}

// GetMonthView returns the grid for an Ethiopian month.
func (s *Service) GetMonthView(year, month int) monthview.CalendarMonth {
	view := s.builder.Build(year, month)
	s.logger.Debug("built month view",
		zap.String("op", "calendar.GetMonthView"),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("days", len(view.Days)),
	)
	return view
}

// ConvertGregorianToEthiopian converts a Gregorian date given as parts.
// It returns false when the parts do not form an existing date.
func (s *Service) ConvertGregorianToEthiopian(year, month, day int) (ethiopic.EthiopianDate, bool) {
	date, ok := ethiopic.FromGregorianParts(year, month, day)
	if !ok {
		s.logger.Debug("rejected gregorian date",
			zap.String("op", "calendar.ConvertGregorianToEthiopian"),
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Int("day", day),
		)
	}
	return date, ok
}

// FormatDate renders d according to the display preferences.
func (s *Service) FormatDate(d ethiopic.EthiopianDate, prefs settings.Settings) string {
	return FormatDate(d, prefs)
}

// TrayTitle returns the tray label for today.
func (s *Service) TrayTitle(prefs settings.Settings) string {
	if !prefs.ShowDateInTray {
		return TrayIcon
	}
	return FormatDate(s.GetCurrentDate(), prefs)
}

// FormatDate renders d either as "<month> <day> <year>" or, with
// UseNumericFormat, as "DD/MM/YYYY". ShowQen prefixes the weekday and
// ShowAmeteMihret appends the era.
func FormatDate(d ethiopic.EthiopianDate, prefs settings.Settings) string {
	lang := prefs.Language()

	var b strings.Builder
	if prefs.ShowQen {
		b.WriteString(locale.WeekdayName(ethiopic.WeekdayOf(d), lang))
		b.WriteString(", ")
	}

	switch {
	case prefs.UseNumericFormat && prefs.UseGeezNumbers:
		b.WriteString(strings.Join([]string{geez.Encode(d.Day), geez.Encode(d.Month), geez.Encode(d.Year)}, "/"))
	case prefs.UseNumericFormat:
		fmt.Fprintf(&b, "%02d/%02d/%d", d.Day, d.Month, d.Year)
	default:
		b.WriteString(locale.MonthName(d.Month, lang))
		b.WriteString(" ")
		b.WriteString(geez.Digits(d.Day, prefs.UseGeezNumbers))
		b.WriteString(" ")
		b.WriteString(geez.Digits(d.Year, prefs.UseGeezNumbers))
	}

	if prefs.ShowAmeteMihret {
		b.WriteString(" ")
		b.WriteString(locale.EraSuffix(lang))
	}
	return b.String()
}
