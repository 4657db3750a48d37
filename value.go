package calct

import (
	"fmt"
	"strconv"
)

// Value is the result of evaluating an expression or any part of one. It is
// either a Number or a Duration.
type Value interface {
	fmt.Stringer
	// sort names the kind of value for error messages.
	sort() string
}

// Number is a plain scalar, e.g. the 2 in "2 * 1h30".
type Number float64

// String formats x without an exponent. Integers have no decimal point.
func (x Number) String() string {
	return strconv.FormatFloat(float64(x), 'f', -1, 64)
}

func (Number) sort() string { return "number" }

func (Duration) sort() string { return "duration" }

var (
	_ Value = Number(0)
	_ Value = Duration{}
)
