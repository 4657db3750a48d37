package calct

// Operators contains the binary operators, each a single byte.
const Operators = "+-*/@"

// OpenBracket and CloseBracket group subexpressions.
const (
	OpenBracket  = "("
	CloseBracket = ")"
)

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// apply computes the operator's result.
	apply func(l, r Value) (Value, error)
}

// outranks reports whether p, on top of the operator stack, must be output
// before next is pushed.
func (p operator) outranks(next operator) bool {
	if p.prec != next.prec {
		return p.prec > next.prec
	}
	return !next.right
}

// binop gets the operator for a token. The second result is false if the
// token is not an operator.
func binop(text string) (operator, bool) {
	switch text {
	case "+":
		return operator{2, false, add}, true
	case "-":
		return operator{2, false, sub}, true
	case "*":
		return operator{3, false, mul}, true
	case "/":
		return operator{3, false, div}, true
	case "@":
		return operator{4, true, to}, true
	default:
		return operator{}, false
	}
}

func add(l, r Value) (Value, error) {
	switch x := l.(type) {
	case Number:
		if y, ok := r.(Number); ok {
			return x + y, nil
		}
	case Duration:
		if y, ok := r.(Duration); ok {
			return x.Add(y), nil
		}
	}
	return nil, operandError("+", l, r)
}

func sub(l, r Value) (Value, error) {
	switch x := l.(type) {
	case Number:
		if y, ok := r.(Number); ok {
			return x - y, nil
		}
	case Duration:
		if y, ok := r.(Duration); ok {
			return x.Sub(y), nil
		}
	}
	return nil, operandError("-", l, r)
}

func mul(l, r Value) (Value, error) {
	switch x := l.(type) {
	case Number:
		switch y := r.(type) {
		case Number:
			return x * y, nil
		case Duration:
			return y.Mul(float64(x)), nil
		}
	case Duration:
		if y, ok := r.(Number); ok {
			return x.Mul(float64(y)), nil
		}
	}
	return nil, operandError("*", l, r)
}

func div(l, r Value) (Value, error) {
	y, ok := r.(Number)
	if !ok {
		return nil, operandError("/", l, r)
	}
	switch x := l.(type) {
	case Number:
		if y == 0 {
			return nil, &DomainError{Op: "/", X: x.String(), Y: y.String()}
		}
		return x / y, nil
	case Duration:
		d, err := x.Div(float64(y))
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, operandError("/", l, r)
}

// to is the @ operator: the time from l to r.
func to(l, r Value) (Value, error) {
	x, ok := l.(Duration)
	if !ok {
		return nil, operandError("@", l, r)
	}
	y, ok := r.(Duration)
	if !ok {
		return nil, operandError("@", l, r)
	}
	return y.Sub(x), nil
}

func operandError(op string, l, r Value) error {
	return &OperandError{Op: op, Left: l.sort(), Right: r.sort()}
}
