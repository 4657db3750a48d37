package calct

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSeparator is the hour/minute separator a new Context formats with.
const DefaultSeparator = "h"

// DefaultHourSeparators and DefaultMinuteSeparators are always accepted when
// parsing durations, whatever the context's separator. "3h23" and "3:23" are
// both three hours and 23 minutes, and "45m" is 45 minutes.
const (
	DefaultHourSeparators   = "h:"
	DefaultMinuteSeparators = "m"
)

const (
	digits    = "0123456789"
	signs     = "+-"
	exponents = "eE"
	floatSeps = "." + exponents
	// floatChars are the runes that make up a number literal other than signs.
	floatChars = digits + floatSeps
)

// reservedSeps are runes which can never be a custom separator because the
// lexer gives them another meaning.
const reservedSeps = digits + Operators + OpenBracket + CloseBracket + floatSeps + DefaultMinuteSeparators

// Separator returns the separator ctx uses to format durations.
func (ctx *Context) Separator() string {
	return ctx.sep
}

// SetSeparator changes the separator used to format durations. The new
// separator is also accepted when parsing, in addition to the defaults. It
// must be a single character which means nothing else in an expression;
// otherwise the result is a *SeparatorError and the separator is unchanged.
func (ctx *Context) SetSeparator(sep string) error {
	if utf8.RuneCountInString(sep) != 1 {
		return &SeparatorError{Sep: sep}
	}
	r, _ := utf8.DecodeRuneInString(sep)
	if r == utf8.RuneError || unicode.IsSpace(r) || strings.ContainsRune(reservedSeps, r) {
		return &SeparatorError{Sep: sep, Reserved: true}
	}
	ctx.log.Debug("separator changed", "from", ctx.sep, "to", sep)
	ctx.sep = sep
	ctx.matchers = nil
	return nil
}

// ResetSeparator restores DefaultSeparator.
func (ctx *Context) ResetSeparator() {
	ctx.sep = DefaultSeparator
	ctx.matchers = nil
}

// HourSeparators returns the separators accepted between hours and minutes.
func (ctx *Context) HourSeparators() string {
	if strings.Contains(DefaultHourSeparators, ctx.sep) {
		return DefaultHourSeparators
	}
	return DefaultHourSeparators + ctx.sep
}

// MinuteSeparators returns the separators accepted after a bare number of
// minutes.
func (ctx *Context) MinuteSeparators() string {
	return DefaultMinuteSeparators
}

// Separators returns every rune which marks a token as a duration.
func (ctx *Context) Separators() string {
	return ctx.HourSeparators() + ctx.MinuteSeparators()
}

func (ctx *Context) isSep(r rune) bool {
	return strings.ContainsRune(ctx.Separators(), r)
}

// matcher is one accepted duration notation.
type matcher struct {
	re *regexp.Regexp
	// h and m are the submatch indices of the hours and minutes, or 0 if the
	// notation has no such part.
	h, m int
}

// durationMatchers builds the notations accepted with the current separators.
func (ctx *Context) durationMatchers() []matcher {
	if ctx.matchers != nil {
		return ctx.matchers
	}
	const (
		hours   = `(\d+)`
		dhours  = `(\d+(?:\.\d+)?)`
		minutes = `([0-5]?\d)`
	)
	var v []matcher
	for _, r := range ctx.HourSeparators() {
		q := regexp.QuoteMeta(string(r))
		v = append(v,
			matcher{re: regexp.MustCompile(`^` + hours + q + minutes + `$`), h: 1, m: 2},
			matcher{re: regexp.MustCompile(`^` + dhours + q + `$`), h: 1},
			matcher{re: regexp.MustCompile(`^` + q + minutes + `$`), m: 1},
		)
	}
	for _, r := range ctx.MinuteSeparators() {
		q := regexp.QuoteMeta(string(r))
		v = append(v, matcher{re: regexp.MustCompile(`^` + hours + q + `$`), m: 1})
	}
	ctx.matchers = v
	return v
}

// ParseDuration parses a duration literal such as 3h23, 3h, h23, 45m, or the
// same using any other accepted separator. The whole text must match one
// notation. If none match, the result is a *NumberError.
func (ctx *Context) ParseDuration(text string) (Duration, error) {
	for _, m := range ctx.durationMatchers() {
		sub := m.re.FindStringSubmatch(text)
		if sub == nil {
			continue
		}
		var h, min float64
		if m.h > 0 {
			h, _ = strconv.ParseFloat(sub[m.h], 64)
		}
		if m.m > 0 {
			min, _ = strconv.ParseFloat(sub[m.m], 64)
		}
		return NewDuration(h, min), nil
	}
	return Duration{}, &NumberError{Text: text, Duration: true}
}

// FormatDuration formats d with ctx's separator.
func (ctx *Context) FormatDuration(d Duration) string {
	return d.Text(ctx.sep)
}
