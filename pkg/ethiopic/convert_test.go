package ethiopic

import (
	"testing"
	"time"
)

func TestToEthiopianKnownDates(t *testing.T) {
	tests := []struct {
		name      string
		gregorian GregorianDate
		expected  EthiopianDate
	}{
		{
			name:      "New year 2017",
			gregorian: GregorianDate{Year: 2024, Month: 9, Day: 11},
			expected:  NewDate(2017, 1, 1),
		},
		{
			name:      "Pagume 6 of leap year 2015",
			gregorian: GregorianDate{Year: 2023, Month: 9, Day: 11},
			expected:  NewDate(2015, 13, 6),
		},
		{
			name:      "New year 2016 after leap year",
			gregorian: GregorianDate{Year: 2023, Month: 9, Day: 12},
			expected:  NewDate(2016, 1, 1),
		},
		{
			name:      "Ethiopian Christmas",
			gregorian: GregorianDate{Year: 2024, Month: 1, Day: 7},
			expected:  NewDate(2016, 4, 28),
		},
		{
			name:      "Gregorian millennium",
			gregorian: GregorianDate{Year: 2000, Month: 1, Day: 1},
			expected:  NewDate(1992, 4, 22),
		},
		{
			name:      "Ethiopian millennium",
			gregorian: GregorianDate{Year: 2007, Month: 9, Day: 12},
			expected:  NewDate(2000, 1, 1),
		},
		{
			name:      "Adwa victory",
			gregorian: GregorianDate{Year: 1896, Month: 3, Day: 1},
			expected:  NewDate(1888, 6, 23),
		},
		{
			name:      "Epoch",
			gregorian: GregorianDate{Year: 8, Month: 8, Day: 27},
			expected:  NewDate(1, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToEthiopian(tt.gregorian)
			if result != tt.expected {
				t.Errorf("ToEthiopian(%v) = %+v, expected %+v", tt.gregorian, result, tt.expected)
			}
			back := ToGregorian(tt.expected)
			if back != tt.gregorian {
				t.Errorf("ToGregorian(%v) = %v, expected %v", tt.expected, back, tt.gregorian)
			}
		})
	}
}

func TestEpochJDN(t *testing.T) {
	if jdn := NewDate(1, 1, 1).ToJDN(); jdn != Epoch {
		t.Fatalf("Meskerem 1, year 1 JDN = %d, expected %d", jdn, Epoch)
	}
	if jdn := (GregorianDate{Year: 2000, Month: 1, Day: 1}).ToJDN(); jdn != 2451545 {
		t.Fatalf("2000-01-01 JDN = %d, expected 2451545", jdn)
	}
}

func TestGregorianRoundTrip(t *testing.T) {
	start := time.Date(1600, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2400, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		g := GregorianFromTime(d)
		e := ToEthiopian(g)
		if !e.Valid() {
			t.Fatalf("ToEthiopian(%v) = %v is not a valid Ethiopian date", g, e)
		}
		if back := ToGregorian(e); back != g {
			t.Fatalf("round trip %v -> %v -> %v", g, e, back)
		}
	}
}

func TestEthiopianRoundTrip(t *testing.T) {
	prevJDN := NewDate(1591, 1, 1).ToJDN() - 1
	for year := 1591; year < 2392; year++ {
		for month := 1; month <= Pagume; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				e := NewDate(year, month, day)
				g := ToGregorian(e)
				if !g.Valid() {
					t.Fatalf("ToGregorian(%v) = %v is not a valid Gregorian date", e, g)
				}
				if back := ToEthiopian(g); back != e {
					t.Fatalf("round trip %v -> %v -> %v", e, g, back)
				}
				// Consecutive Ethiopian days must be consecutive absolute days.
				jdn := e.ToJDN()
				if jdn != prevJDN+1 {
					t.Fatalf("%v has JDN %d, expected %d", e, jdn, prevJDN+1)
				}
				prevJDN = jdn
			}
		}
	}
}

func TestPagumeLeapPlacement(t *testing.T) {
	for year := 1800; year < 2300; year++ {
		expected := 5
		if year%4 == 3 {
			expected = 6
		}
		if got := DaysInMonth(year, Pagume); got != expected {
			t.Fatalf("DaysInMonth(%d, 13) = %d, expected %d", year, got, expected)
		}
		// The conversion must agree: the day after the last Pagume day is
		// the next new year.
		last := NewDate(year, Pagume, expected)
		next := FromJDN(last.ToJDN() + 1)
		if next != NewDate(year+1, 1, 1) {
			t.Fatalf("day after %v = %v, expected %d-01-01", last, next, year+1)
		}
		yearLength := NewDate(year+1, 1, 1).ToJDN() - NewDate(year, 1, 1).ToJDN()
		if yearLength != 360+expected {
			t.Fatalf("year %d has %d days, expected %d", year, yearLength, 360+expected)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, expected int
	}{
		{2017, 1, 30},
		{2017, 12, 30},
		{2015, 13, 6},
		{2016, 13, 5},
		{2017, 13, 5},
		{2019, 13, 6},
		{2017, 0, 0},
		{2017, 14, 0},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.expected {
			t.Errorf("DaysInMonth(%d, %d) = %d, expected %d", tt.year, tt.month, got, tt.expected)
		}
	}
}

func TestFromGregorianParts(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		wantOK           bool
		expected         EthiopianDate
	}{
		{name: "Valid", year: 2024, month: 9, day: 11, wantOK: true, expected: NewDate(2017, 1, 1)},
		{name: "Leap day", year: 2024, month: 2, day: 29, wantOK: true, expected: NewDate(2016, 6, 21)},
		{name: "Non-leap Feb 29", year: 2023, month: 2, day: 29},
		{name: "Century non-leap", year: 1900, month: 2, day: 29},
		{name: "Feb 30", year: 2024, month: 2, day: 30},
		{name: "Month 13", year: 2024, month: 13, day: 1},
		{name: "Month 0", year: 2024, month: 0, day: 1},
		{name: "Day 0", year: 2024, month: 1, day: 0},
		{name: "Day 32", year: 2024, month: 1, day: 32},
		{name: "April 31", year: 2024, month: 4, day: 31},
		{name: "Year 0", year: 0, month: 1, day: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := FromGregorianParts(tt.year, tt.month, tt.day)
			if ok != tt.wantOK {
				t.Fatalf("FromGregorianParts(%d, %d, %d) ok = %v, expected %v", tt.year, tt.month, tt.day, ok, tt.wantOK)
			}
			if ok && result != tt.expected {
				t.Errorf("FromGregorianParts(%d, %d, %d) = %+v, expected %+v", tt.year, tt.month, tt.day, result, tt.expected)
			}
			if !ok && result != (EthiopianDate{}) {
				t.Errorf("expected zero date on failure, got %+v", result)
			}
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		name     string
		date     EthiopianDate
		expected time.Weekday
	}{
		{name: "New year 2017 is a Wednesday", date: NewDate(2017, 1, 1), expected: time.Wednesday},
		{name: "New year 2016 is a Tuesday", date: NewDate(2016, 1, 1), expected: time.Tuesday},
		{name: "Ethiopian millennium is a Wednesday", date: NewDate(2000, 1, 1), expected: time.Wednesday},
		{name: "Gregorian 2000-01-01 is a Saturday", date: NewDate(1992, 4, 22), expected: time.Saturday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayOf(tt.date); got != int(tt.expected) {
				t.Errorf("WeekdayOf(%v) = %d, expected %d", tt.date, got, tt.expected)
			}
		})
	}
}

func TestWeekdayMatchesJDN(t *testing.T) {
	for year := 1990; year < 2100; year++ {
		for month := 1; month <= Pagume; month++ {
			e := NewDate(year, month, 1)
			// JDN 0 was a Monday.
			expected := mod(e.ToJDN()+1, 7)
			if got := WeekdayOf(e); got != expected {
				t.Fatalf("WeekdayOf(%v) = %d, expected %d", e, got, expected)
			}
		}
	}
}

func TestEthiopianDateHelpers(t *testing.T) {
	e := NewDate(2017, 1, 1)
	if e.DayGeez != "፩" {
		t.Errorf("DayGeez = %q, expected ፩", e.DayGeez)
	}
	if e.YearGeez() != "፳፻፲፯" {
		t.Errorf("YearGeez() = %q, expected ፳፻፲፯", e.YearGeez())
	}
	if e.String() != "2017-01-01" {
		t.Errorf("String() = %q", e.String())
	}
	if !e.Equal(EthiopianDate{Year: 2017, Month: 1, Day: 1}) {
		t.Error("Equal should ignore the cached Geez rendering")
	}
	if NewDate(2016, 13, 6).Valid() {
		t.Error("2016-13-06 should be invalid")
	}
	if !NewDate(2015, 13, 6).Valid() {
		t.Error("2015-13-06 should be valid")
	}
}

func TestToday(t *testing.T) {
	clock := FixedClock{Year: 2024, Month: 9, Day: 11}
	if got := Today(clock); got != NewDate(2017, 1, 1) {
		t.Errorf("Today() = %+v, expected 2017-01-01", got)
	}

	sys := SystemClock{Location: time.UTC}
	today := Today(sys)
	if !today.Valid() {
		t.Errorf("Today(SystemClock) = %v is not valid", today)
	}
}
