package calct

// Parse reorders tokens from infix to postfix order using the shunting-yard
// algorithm. Tokens which are neither operators nor brackets pass through
// untouched, in order; they are not checked to be numbers or durations.
//
// Operators bind by precedence: @ most tightly, then * and /, then + and -.
// All are left-associative except @, so "a - b - c" is "(a - b) - c" but
// "a @ b @ c" is "a @ (b @ c)". Unmatched brackets give a *BracketError.
func Parse(tokens []string) ([]string, error) {
	type pending struct {
		text string
		pos  int
	}
	out := make([]string, 0, len(tokens))
	var ops []pending
	for i, t := range tokens {
		switch t {
		case OpenBracket:
			ops = append(ops, pending{t, i + 1})
		case CloseBracket:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Tok: i + 1, Right: t}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.text == OpenBracket {
					break
				}
				out = append(out, top.text)
			}
		default:
			op, ok := binop(t)
			if !ok {
				out = append(out, t)
				continue
			}
			for len(ops) > 0 {
				top, ok := binop(ops[len(ops)-1].text)
				if !ok || !top.outranks(op) {
					break
				}
				out = append(out, ops[len(ops)-1].text)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, pending{t, i + 1})
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.text == OpenBracket {
			return nil, &BracketError{Tok: top.pos, Left: top.text}
		}
		out = append(out, top.text)
	}
	return out, nil
}
