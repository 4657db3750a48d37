package calct

import (
	"math"
	"strconv"
	"strings"
	"time"

	"fortio.org/safecast"
)

// Duration is a signed span of time counted in minutes. The count may be
// fractional, e.g. after dividing by a number. The zero value is no time.
//
// Durations are values: arithmetic methods return new durations and never
// modify their receivers.
type Duration struct {
	min float64
}

// NewDuration creates a duration of hours*60 + minutes minutes. Neither
// argument is range checked, and either may be fractional or negative.
func NewDuration(hours, minutes float64) Duration {
	return Duration{min: hours*60 + minutes}
}

// Minutes creates a duration of m minutes.
func Minutes(m float64) Duration {
	return Duration{min: m}
}

// FromTimeDuration converts a time.Duration to a Duration.
func FromTimeDuration(d time.Duration) Duration {
	return Duration{min: d.Minutes()}
}

// TimeDuration converts d to a time.Duration. Fractions of a nanosecond are
// truncated.
func (d Duration) TimeDuration() time.Duration {
	return time.Duration(d.min * float64(time.Minute))
}

// Minutes returns the total number of minutes in d.
func (d Duration) Minutes() float64 {
	return d.min
}

// Hours returns the number of whole hours in d, truncated toward zero.
func (d Duration) Hours() float64 {
	return math.Trunc(d.min / 60)
}

// Remainder returns the minutes left over after Hours. It has the same sign
// as d, so that d.Hours()*60 + d.Remainder() == d.Minutes().
func (d Duration) Remainder() float64 {
	return math.Mod(d.min, 60)
}

// HoursMinutes returns d.Hours() and d.Remainder().
func (d Duration) HoursMinutes() (hours, minutes float64) {
	return d.Hours(), d.Remainder()
}

// SetHours sets d to exactly h hours, discarding any minutes.
func (d *Duration) SetHours(h float64) {
	d.min = h * 60
}

// Add returns d + e.
func (d Duration) Add(e Duration) Duration {
	return Duration{min: d.min + e.min}
}

// Sub returns d - e.
func (d Duration) Sub(e Duration) Duration {
	return Duration{min: d.min - e.min}
}

// Mul returns d scaled by k.
func (d Duration) Mul(k float64) Duration {
	return Duration{min: d.min * k}
}

// Div returns d divided by k. Dividing by zero returns a *DomainError.
func (d Duration) Div(k float64) (Duration, error) {
	if k == 0 {
		return Duration{}, &DomainError{Op: "/", X: d.String(), Y: "0"}
	}
	return Duration{min: d.min / k}, nil
}

// Cmp compares d and e by their minute counts, returning -1, 0, or +1.
func (d Duration) Cmp(e Duration) int {
	switch {
	case d.min < e.min:
		return -1
	case d.min > e.min:
		return 1
	default:
		return 0
	}
}

// Less reports whether d is shorter than e.
func (d Duration) Less(e Duration) bool {
	return d.min < e.min
}

// Equal reports whether d and e have the same number of minutes.
func (d Duration) Equal(e Duration) bool {
	return d.min == e.min
}

// Text formats d as hours, sep, then minutes padded to two digits, e.g. with
// sep "h", 3h05. The minute count is rounded to the nearest minute before it
// is split. Negative durations are written with a leading minus sign on the
// magnitude, so -30 minutes is -0h30.
func (d Duration) Text(sep string) string {
	r := math.Round(d.min)
	sign := ""
	if r < 0 {
		sign = "-"
		r = -r
	}
	n, err := safecast.Convert[int64](r)
	if err != nil {
		// Infinite or too large to split into hours.
		return strconv.FormatFloat(d.min, 'g', -1, 64) + DefaultMinuteSeparators[:1]
	}
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(strconv.FormatInt(n/60, 10))
	b.WriteString(sep)
	m := n % 60
	if m < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(m, 10))
	return b.String()
}

// String formats d using the default separator.
func (d Duration) String() string {
	return d.Text(DefaultSeparator)
}

// GoString formats d as a constructor call, for test failure messages.
func (d Duration) GoString() string {
	h, m := d.HoursMinutes()
	return "calct.NewDuration(" + strconv.FormatFloat(h, 'g', -1, 64) + ", " + strconv.FormatFloat(m, 'g', -1, 64) + ")"
}
