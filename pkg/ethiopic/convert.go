package ethiopic

// Epoch is the Julian Day Number of Meskerem 1, year 1 (Amete Mihret).
const Epoch = 1724221

const daysPerCycle = 4*365 + 1

// ToJDN returns the Julian Day Number of an Ethiopian date.
func (e EthiopianDate) ToJDN() int {
	return Epoch - 1 + 365*(e.Year-1) + floorDiv(e.Year, 4) + 30*(e.Month-1) + e.Day
}

// FromJDN returns the Ethiopian date of a Julian Day Number.
func FromJDN(jdn int) EthiopianDate {
	year := floorDiv(4*(jdn-Epoch)+daysPerCycle+2, daysPerCycle)
	dayOfYear := jdn - NewDate(year, 1, 1).ToJDN()
	return NewDate(year, dayOfYear/30+1, dayOfYear%30+1)
}

// ToJDN returns the Julian Day Number of a Gregorian date.
func (g GregorianDate) ToJDN() int {
	a := floorDiv(14-g.Month, 12)
	y := g.Year + 4800 - a
	m := g.Month + 12*a - 3
	return g.Day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// GregorianFromJDN returns the Gregorian date of a Julian Day Number.
func GregorianFromJDN(jdn int) GregorianDate {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	return GregorianDate{
		Year:  100*b + d - 4800 + m/10,
		Month: m + 3 - 12*(m/10),
		Day:   e - floorDiv(153*m+2, 5) + 1,
	}
}

// ToEthiopian converts a Gregorian date.
func ToEthiopian(g GregorianDate) EthiopianDate {
	return FromJDN(g.ToJDN())
}

// ToGregorian converts an Ethiopian date.
func ToGregorian(e EthiopianDate) GregorianDate {
	return GregorianFromJDN(e.ToJDN())
}

// FromGregorianParts validates and converts a Gregorian year, month and
// day. It returns false when the parts do not form an existing date.
func FromGregorianParts(year, month, day int) (EthiopianDate, bool) {
	g := GregorianDate{Year: year, Month: month, Day: day}
	if !g.Valid() {
		return EthiopianDate{}, false
	}
	return ToEthiopian(g), true
}

// WeekdayOf returns the day of the week of e, 0 for Sunday through 6 for
// Saturday.
func WeekdayOf(e EthiopianDate) int {
	return int(ToGregorian(e).Time().Weekday())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return a - b*floorDiv(a, b)
}
