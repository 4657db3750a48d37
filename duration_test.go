package calct_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/zephyrtronium/calct"
)

func TestNewDurationMinutes(t *testing.T) {
	vals := []float64{0, 1, 2.5, 59, 60, 61, -1, -30.25, 1000}
	for _, h := range vals {
		for _, m := range vals {
			d := calct.NewDuration(h, m)
			if got, want := d.Minutes(), h*60+m; got != want {
				t.Errorf("NewDuration(%g, %g).Minutes(): want %g, got %g", h, m, want, got)
			}
		}
	}
}

func TestHoursRemainder(t *testing.T) {
	cases := []struct {
		min  float64
		h, m float64
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{132, 2, 12},
		{-30, 0, -30},
		{-90, -1, -30},
		{22.5, 0, 22.5},
		{125.5, 2, 5.5},
	}
	for _, c := range cases {
		d := calct.Minutes(c.min)
		h, m := d.HoursMinutes()
		if h != c.h || m != c.m {
			t.Errorf("%g minutes: want %g hours %g minutes, got %g and %g", c.min, c.h, c.m, h, m)
		}
		if h != d.Hours() || m != d.Remainder() {
			t.Errorf("%g minutes: HoursMinutes gave %g, %g but Hours and Remainder gave %g, %g", c.min, h, m, d.Hours(), d.Remainder())
		}
		if got := h*60 + m; got != c.min {
			t.Errorf("%g minutes: hours and minutes reconstruct %g", c.min, got)
		}
	}
	if h := calct.NewDuration(2, 60).Hours(); h != 3 {
		t.Errorf("2 hours 60 minutes has %g hours", h)
	}
}

func TestSetHours(t *testing.T) {
	var d calct.Duration
	if d.Hours() != 0 {
		t.Errorf("zero duration has %g hours", d.Hours())
	}
	d.SetHours(4)
	if !d.Equal(calct.NewDuration(4, 0)) {
		t.Errorf("want 4 hours, got %#v", d)
	}
	d = calct.NewDuration(1, 30)
	d.SetHours(2)
	if !d.Equal(calct.NewDuration(2, 0)) {
		t.Errorf("setting hours kept minutes: %#v", d)
	}
}

func TestDurationOrder(t *testing.T) {
	vals := []float64{-61, -1, 0, 0.5, 1, 59, 60, 3600}
	for _, a := range vals {
		for _, b := range vals {
			x, y := calct.Minutes(a), calct.Minutes(b)
			if x.Less(y) != (a < b) {
				t.Errorf("Minutes(%g).Less(Minutes(%g)) = %t", a, b, x.Less(y))
			}
			if x.Equal(y) != (a == b) {
				t.Errorf("Minutes(%g).Equal(Minutes(%g)) = %t", a, b, x.Equal(y))
			}
			want := 0
			switch {
			case a < b:
				want = -1
			case a > b:
				want = 1
			}
			if got := x.Cmp(y); got != want {
				t.Errorf("Minutes(%g).Cmp(Minutes(%g)): want %d, got %d", a, b, want, got)
			}
		}
	}
}

func TestDurationArithmetic(t *testing.T) {
	vals := []float64{-90, -1, 0, 1, 44, 132, 720}
	ks := []float64{-2, 0, 0.5, 1, 3}
	for _, a := range vals {
		for _, b := range vals {
			x, y := calct.Minutes(a), calct.Minutes(b)
			if got := x.Add(y); !got.Equal(calct.Minutes(a + b)) {
				t.Errorf("%g + %g: got %#v", a, b, got)
			}
			if got := x.Sub(y); !got.Equal(calct.Minutes(a - b)) {
				t.Errorf("%g - %g: got %#v", a, b, got)
			}
		}
		for _, k := range ks {
			x := calct.Minutes(a)
			if got := x.Mul(k); !got.Equal(calct.Minutes(k * a)) {
				t.Errorf("%g * %g: got %#v", a, k, got)
			}
			if k == 0 {
				continue
			}
			got, err := x.Div(k)
			if err != nil {
				t.Errorf("%g / %g: %v", a, k, err)
				continue
			}
			if !got.Equal(calct.Minutes(a / k)) {
				t.Errorf("%g / %g: got %#v", a, k, got)
			}
		}
	}
}

func TestDurationDivZero(t *testing.T) {
	d, err := calct.NewDuration(2, 12).Div(0)
	var derr *calct.DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("error %#v is not a *DomainError", err)
	}
	if derr.Op != "/" {
		t.Errorf("wrong operator %q", derr.Op)
	}
	if !d.Equal(calct.Duration{}) {
		t.Errorf("division by zero gave %#v", d)
	}
}

func TestDurationImmutable(t *testing.T) {
	d := calct.NewDuration(1, 0)
	d.Add(calct.Minutes(5))
	d.Sub(calct.Minutes(5))
	d.Mul(2)
	d.Div(2)
	if !d.Equal(calct.Minutes(60)) {
		t.Errorf("arithmetic modified receiver: %#v", d)
	}
}

func TestTimeDuration(t *testing.T) {
	if got := calct.Minutes(2).TimeDuration(); got != 2*time.Minute {
		t.Errorf("2 minutes converted to %v", got)
	}
	d := calct.FromTimeDuration(3*time.Hour + 32*time.Minute)
	if !d.Equal(calct.NewDuration(3, 32)) {
		t.Errorf("3h32m converted to %#v", d)
	}
	for m := -120; m <= 120; m += 7 {
		d := calct.Minutes(float64(m))
		if got := calct.FromTimeDuration(d.TimeDuration()); !got.Equal(d) {
			t.Errorf("%d minutes round trip to %#v", m, got)
		}
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		d   calct.Duration
		sep string
		s   string
	}{
		{calct.Minutes(0), "h", "0h00"},
		{calct.Minutes(5), "h", "0h05"},
		{calct.NewDuration(3, 23), "h", "3h23"},
		{calct.NewDuration(3, 23), ":", "3:23"},
		{calct.NewDuration(12, 72), "h", "13h12"},
		{calct.NewDuration(100, 0), "h", "100h00"},
		{calct.Minutes(-30), "h", "-0h30"},
		{calct.Minutes(-90), "h", "-1h30"},
		{calct.Minutes(59.6), "h", "1h00"},
		{calct.Minutes(0.4), "h", "0h00"},
		{calct.Minutes(-0.4), "h", "0h00"},
		{calct.Minutes(math.Inf(1)), "h", "+Infm"},
		{calct.Minutes(math.Inf(-1)), "h", "-Infm"},
	}
	for _, c := range cases {
		if got := c.d.Text(c.sep); got != c.s {
			t.Errorf("%#v with %q: want %q, got %q", c.d, c.sep, c.s, got)
		}
	}
	if got := calct.NewDuration(3, 23).String(); got != "3h23" {
		t.Errorf("String gave %q", got)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		text string
		min  float64
	}{
		{"3h23", 203},
		{"3h5", 185},
		{"3h05", 185},
		{"0h00", 0},
		{"100h59", 6059},
		{"3h", 180},
		{"1.5h", 90},
		{"h23", 23},
		{"h5", 5},
		{"3:23", 203},
		{"3:", 180},
		{":45", 45},
		{"45m", 45},
		{"90m", 90},
		{"0m", 0},
	}
	ctx := calct.NewContext()
	for _, c := range cases {
		d, err := ctx.ParseDuration(c.text)
		if err != nil {
			t.Errorf("parsing %q: %v", c.text, err)
			continue
		}
		if d.Minutes() != c.min {
			t.Errorf("parsing %q: want %g minutes, got %g", c.text, c.min, d.Minutes())
		}
	}
}

func TestParseDurationErrors(t *testing.T) {
	bad := []string{
		"",
		"3",
		"h",
		"m",
		":",
		"3h75",
		"3h60",
		"3h123",
		"3h23m",
		"3hh",
		"h3h",
		"1.5h30",
		"1.5m",
		"m30",
		"3x23",
		"3 h",
		"-3h",
		"3h-5",
		"3:h",
	}
	ctx := calct.NewContext()
	for _, text := range bad {
		d, err := ctx.ParseDuration(text)
		if err == nil {
			t.Errorf("parsing %q gave %#v", text, d)
			continue
		}
		var nerr *calct.NumberError
		if !errors.As(err, &nerr) {
			t.Errorf("parsing %q: error %#v is not a *NumberError", text, err)
			continue
		}
		if nerr.Text != text || !nerr.Duration {
			t.Errorf("parsing %q: wrong error %+v", text, nerr)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	ctx := calct.NewContext()
	alt := calct.NewContext()
	if err := alt.SetSeparator("'"); err != nil {
		t.Fatal(err)
	}
	for h := 0; h <= 30; h++ {
		for m := 0; m < 60; m++ {
			d := calct.NewDuration(float64(h), float64(m))
			for _, c := range []*calct.Context{ctx, alt} {
				s := c.FormatDuration(d)
				got, err := c.ParseDuration(s)
				if err != nil {
					t.Fatalf("parsing %q: %v", s, err)
				}
				if !got.Equal(d) {
					t.Errorf("%q parsed as %#v, want %#v", s, got, d)
				}
			}
		}
	}
}
