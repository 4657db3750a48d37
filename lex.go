package calct

import (
	"strconv"
	"strings"
	"unicode"
)

// Lex splits an expression into tokens. Operators and brackets are tokens of
// their own. Runs of digits, decimal points, exponents, and separators
// accepted by ctx form number or duration tokens; whitespace ends them and is
// otherwise ignored. Lex does not decide whether a run is a number or a
// duration: that happens when the token is evaluated.
//
// A sign immediately following an exponent marker continues the number, so
// "1e-5" is one token. Any other operator or bracket after an exponent marker,
// and any rune outside the accepted sets, is a *LexError.
func (ctx *Context) Lex(src string) ([]string, error) {
	ctx.log.Debug("lex", "src", src)
	var (
		tokens []string
		buf    strings.Builder
		last   rune
		col    int
	)
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}
	for _, r := range src {
		col++
		switch {
		case strings.ContainsRune(Operators+OpenBracket+CloseBracket, r):
			if strings.ContainsRune(exponents, last) {
				if !strings.ContainsRune(signs, r) {
					return nil, &LexError{Text: string(r), Kind: "exponent", Col: col}
				}
				buf.WriteRune(r)
				break
			}
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		case strings.ContainsRune(floatChars, r), ctx.isSep(r):
			buf.WriteRune(r)
		default:
			return nil, &LexError{Text: string(r), Col: col, Seps: ctx.Separators()}
		}
		ctx.log.Debug("lex step", "rune", string(r), "buf", buf.String(), "tokens", tokens)
		last = r
	}
	flush()
	return tokens, nil
}

// LexError indicates a rune that cannot appear in an expression. It implements
// InputError.
type LexError struct {
	// Text is the offending rune.
	Text string
	// Kind is "exponent" if the rune follows an exponent marker, or the empty
	// string if the rune is invalid anywhere.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
	// Seps is the set of duration separators that were accepted.
	Seps string
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "exponent" {
		return "invalid exponent at " + pos + ": `" + err.Text + "` follows an exponent marker `" + exponents + "` but is not a sign `" + signs + "`"
	}
	return "invalid character at " + pos + ": `" + err.Text + "` is not a digit `" + digits +
		"`, an operator or parenthesis `" + Operators + OpenBracket + CloseBracket +
		"`, whitespace, a digit separator or exponent `" + floatSeps +
		"`, or a time separator `" + err.Seps + "`"
}

func (err *LexError) Pos() int {
	return err.Col
}
