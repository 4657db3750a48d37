package calct

import "strconv"

// BracketError is an error indicating an unmatched bracket in the input. It
// implements InputError.
type BracketError struct {
	// Tok is the 1-based index of the unmatched bracket among the tokens.
	Tok int
	// Left is the opening bracket, or the empty string for a close bracket
	// with no open bracket.
	Left string
	// Right is the closing bracket, or the empty string for an open bracket
	// that is never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Tok, "unmatched closing parenthesis "+err.Right)
	}
	return errpos(err.Tok, "unmatched opening parenthesis "+err.Left)
}

func (err *BracketError) Pos() int {
	return err.Tok
}

// NumberError is an error indicating an operand that is neither a valid
// number nor a valid duration.
type NumberError struct {
	// Text is the operand token.
	Text string
	// Duration is whether the token was parsed as a duration because it
	// contains a separator.
	Duration bool
}

func (err *NumberError) Error() string {
	if err.Duration {
		return "`" + err.Text + "` is not a valid duration"
	}
	return "`" + err.Text + "` is not a valid number"
}

// OperandError is an error indicating an operator applied to kinds of values
// it does not support, e.g. adding a number to a duration.
type OperandError struct {
	// Op is the operator.
	Op string
	// Left and Right name the kinds of the operands, "number" or "duration".
	Left, Right string
}

func (err *OperandError) Error() string {
	return "unsupported operand types for " + err.Op + ": " + err.Left + " and " + err.Right
}

// DomainError is an error returned when an operator is applied to values
// outside its domain, i.e. division by zero.
type DomainError struct {
	// Op is the operator.
	Op string
	// X and Y are the formatted operands.
	X, Y string
}

func (err *DomainError) Error() string {
	return "cannot compute " + err.X + " " + err.Op + " " + err.Y + ": division by zero"
}

// ArityError is an error indicating an operator in a postfix sequence with
// fewer than two operands before it.
type ArityError struct {
	// Op is the operator.
	Op string
	// Pos is the 1-based index of the operator in the postfix sequence.
	Pos int
	// Have is the number of operands that were available.
	Have int
}

func (err *ArityError) Error() string {
	return errpos(err.Pos, "operator "+err.Op+" needs two operands, have "+strconv.Itoa(err.Have))
}

// StackError is an error indicating a postfix sequence which leaves more than
// one value, e.g. two numbers with no operator between them.
type StackError struct {
	// Len is the number of values left.
	Len int
}

func (err *StackError) Error() string {
	return "invalid expression: " + strconv.Itoa(err.Len) + " values left without operators"
}

// EmptyExpressionError is an error indicating an expression with no values.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

// SeparatorError is an error indicating an invalid hour/minute separator.
type SeparatorError struct {
	// Sep is the rejected separator.
	Sep string
	// Reserved is whether Sep is a single character that already has a
	// meaning in expressions. If false, Sep is not a single character.
	Reserved bool
}

func (err *SeparatorError) Error() string {
	if !err.Reserved {
		return "separator must be a single character, not " + strconv.Quote(err.Sep)
	}
	return "separator " + strconv.Quote(err.Sep) + " would break the parser: it can't be whitespace or one of `" + reservedSeps + "`"
}

// errpos is a shortcut to create an error message with a token position.
func errpos(pos int, msg string) string {
	return "token " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Errors locating invalid
// input implement InputError.
type InputError interface {
	error
	// Pos returns the position of the error: the rune column for lexing
	// errors, or the token index for parsing errors.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
)
