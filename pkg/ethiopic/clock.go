package ethiopic

import "time"

// Clock supplies the current local Gregorian date.
type Clock interface {
	Today() GregorianDate
}

// SystemClock reads the wall clock in Location, or time.Local when nil.
type SystemClock struct {
	Location *time.Location
}

// Today implements Clock.
func (c SystemClock) Today() GregorianDate {
	now := time.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	} else {
		now = now.Local()
	}
	return GregorianFromTime(now)
}

// FixedClock always returns the same date.
type FixedClock GregorianDate

// Today implements Clock.
func (c FixedClock) Today() GregorianDate {
	return GregorianDate(c)
}

// Today returns the current Ethiopian date as seen by clock.
func Today(clock Clock) EthiopianDate {
	if clock == nil {
		clock = SystemClock{}
	}
	return ToEthiopian(clock.Today())
}
