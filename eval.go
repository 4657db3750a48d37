package calct

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It holds the hour/minute
// separator used to lex, parse durations, and format results. It is not safe
// to use a Context concurrently.
type Context struct {
	sep      string
	matchers []matcher
	log      *slog.Logger
	stack    []Value
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type logopt struct {
	l *slog.Logger
}

func (logopt) ctxOption() {}

// Logger sets the logger that receives debug traces of lexing and evaluation.
// By default, nothing is logged.
func Logger(l *slog.Logger) ContextOption {
	return logopt{l}
}

// NewContext creates a new evaluation context using DefaultSeparator.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{
		sep: DefaultSeparator,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context with the same separator and logger and
// applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		sep: ctx.sep,
		log: ctx.log,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case logopt:
			if opt.l != nil {
				n.log = opt.l
			}
		default:
			panic("calct: unknown option type")
		}
	}
	return &n
}

// Eval lexes, parses, and evaluates an expression.
func (ctx *Context) Eval(src string) (Value, error) {
	tokens, err := ctx.Lex(src)
	if err != nil {
		return nil, err
	}
	postfix, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	ctx.log.Debug("parsed", "tokens", tokens, "postfix", postfix)
	return ctx.Evaluate(postfix)
}

// Evaluate computes the value of a postfix token sequence, as produced by
// Parse. Each operator applies to the two values before it, the earlier one
// being its left operand. Operands containing one of ctx's separators are
// durations; others must be integers or floating-point numbers.
//
// The sequence must reduce to exactly one value. An operator without two
// operands is an *ArityError, leftover values are a *StackError, and an empty
// sequence is an *EmptyExpressionError.
func (ctx *Context) Evaluate(postfix []string) (Value, error) {
	ctx.stack = ctx.stack[:0]
	for i, t := range postfix {
		if op, ok := binop(t); ok {
			if len(ctx.stack) < 2 {
				return nil, &ArityError{Op: t, Pos: i + 1, Have: len(ctx.stack)}
			}
			r := ctx.pop()
			l := ctx.pop()
			v, err := op.apply(l, r)
			if err != nil {
				return nil, err
			}
			ctx.log.Debug("apply", "op", t, "left", l, "right", r, "result", v)
			ctx.push(v)
			continue
		}
		v, err := ctx.operand(t)
		if err != nil {
			return nil, err
		}
		ctx.log.Debug("operand", "token", t, "sort", v.sort(), "value", v)
		ctx.push(v)
	}
	switch len(ctx.stack) {
	case 0:
		return nil, &EmptyExpressionError{}
	case 1:
		return ctx.pop(), nil
	default:
		n := len(ctx.stack)
		ctx.stack = ctx.stack[:0]
		return nil, &StackError{Len: n}
	}
}

// Format formats a value, using ctx's separator for durations.
func (ctx *Context) Format(v Value) string {
	if d, ok := v.(Duration); ok {
		return ctx.FormatDuration(d)
	}
	return v.String()
}

func (ctx *Context) push(v Value) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() Value {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// operand classifies and converts a non-operator token.
func (ctx *Context) operand(t string) (Value, error) {
	if strings.ContainsFunc(t, ctx.isSep) {
		d, err := ctx.ParseDuration(t)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return Number(n), nil
	}
	f, err := strconv.ParseFloat(t, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// f is already ±Inf or 0 as appropriate.
	default:
		return nil, &NumberError{Text: t}
	}
	return Number(f), nil
}

// EvalString is a shortcut to evaluate an expression with a new default
// context.
func EvalString(src string, opts ...ContextOption) (Value, error) {
	return NewContext(opts...).Eval(src)
}
