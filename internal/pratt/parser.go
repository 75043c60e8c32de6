package pratt

import (
	"fmt"
	"log/slog"

	"github.com/roach88/pratt/internal/op"
)

// Parser combines tokens into a single output value by precedence climbing.
//
// A Parser keeps no state between parses. It is safe for concurrent use if
// its Grammar is, provided each goroutine parses its own Cursor.
type Parser[T, O any] struct {
	grammar Grammar[T, O]
	unary   UnaryReducer[T, O]
	binary  BinaryReducer[T, O]
	ternary TernaryReducer[T, O]

	separators SeparatorMode
	maxDepth   int
	logger     *slog.Logger
}

// New creates a parser driven by g.
func New[T, O any](g Grammar[T, O], opts ...Option) *Parser[T, O] {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser[T, O]{
		grammar:    g,
		separators: cfg.separators,
		maxDepth:   cfg.maxDepth,
		logger:     cfg.logger,
	}
	p.unary, _ = any(g).(UnaryReducer[T, O])
	p.binary, _ = any(g).(BinaryReducer[T, O])
	p.ternary, _ = any(g).(TernaryReducer[T, O])
	return p
}

// Parse parses the whole stream into one value.
// Tokens left over after the expression fail with TRAILING_INPUT.
func (p *Parser[T, O]) Parse(c *Cursor[T]) (O, error) {
	var zero O
	node, err := p.parseUntil(c, op.MinPrecedence, 0)
	if err != nil {
		return zero, err
	}
	if tok, ok := c.Peek(); ok {
		return zero, newError(ErrCodeTrailingInput, c.Consumed(), describe(tok),
			"unexpected token after complete expression")
	}
	return node, nil
}

// ParseSlice parses a whole token slice.
func (p *Parser[T, O]) ParseSlice(toks []T) (O, error) {
	return p.Parse(NewSliceCursor(toks))
}

// ParseUntil parses one sub-expression whose operators all bind tighter than
// floor and leaves the cursor on the first token that does not.
func (p *Parser[T, O]) ParseUntil(c *Cursor[T], floor op.Precedence) (O, error) {
	return p.parseUntil(c, floor, 0)
}

func (p *Parser[T, O]) parseUntil(c *Cursor[T], floor op.Precedence, depth int) (O, error) {
	var zero O

	pos := c.Consumed()
	if p.maxDepth > 0 && depth > p.maxDepth {
		return zero, newError(ErrCodeDepthExceeded, pos, "",
			"expression nests deeper than %d levels", p.maxDepth)
	}

	tok, ok := c.Next()
	if !ok {
		return zero, newError(ErrCodeEmptyInput, pos, "", "expected an expression, found end of input")
	}
	desc, err := p.grammar.Query(tok)
	if err != nil {
		return zero, err
	}

	ceiling := desc.NBP()
	node, err := p.nud(c, tok, desc, pos, depth)
	if err != nil {
		return zero, err
	}

	for {
		next, ok := c.Peek()
		if !ok {
			return node, nil
		}
		nextDesc, err := p.grammar.Query(next)
		if err != nil {
			return zero, err
		}
		lbp := nextDesc.LBP()
		if floor >= lbp || lbp >= ceiling {
			return node, nil
		}

		pos = c.Consumed()
		c.Next()
		ceiling = nextDesc.NBP()
		node, err = p.led(c, next, nextDesc, node, pos, depth)
		if err != nil {
			return zero, err
		}
	}
}

// nud applies the null-denotation of a token that starts an expression.
func (p *Parser[T, O]) nud(c *Cursor[T], tok T, desc op.Op, pos, depth int) (O, error) {
	var zero O
	p.logger.Debug("nud", "token", describe(tok), "op", desc.String(), "pos", pos)

	switch desc.Position() {
	case op.Nilfix:
		if desc.Arity == op.Nullary {
			return p.grammar.Nullary(tok)
		}

	case op.Prefix:
		switch desc.Arity {
		case op.Unary:
			// -a
			operand, err := p.parseUntil(c, desc.RBP(), depth+1)
			if err != nil {
				return zero, err
			}
			return p.reduceUnary(tok, pos, operand)

		case op.Ternary:
			// if a then b else c
			first, err := p.parseUntil(c, op.MinPrecedence, depth+1)
			if err != nil {
				return zero, err
			}
			if err := p.eatInterfix(c, desc, 0); err != nil {
				return zero, err
			}
			second, err := p.parseUntil(c, op.MinPrecedence, depth+1)
			if err != nil {
				return zero, err
			}
			if err := p.eatInterfix(c, desc, 1); err != nil {
				return zero, err
			}
			third, err := p.parseUntil(c, desc.RBP(), depth+1)
			if err != nil {
				return zero, err
			}
			return p.reduceTernary(tok, pos, first, second, third)
		}

	case op.Circumfix:
		if desc.Arity == op.Unary {
			// ‖a‖
			inner, err := p.parseUntil(c, desc.RBP(), depth+1)
			if err != nil {
				return zero, err
			}
			if err := p.eatInterfix(c, desc, 0); err != nil {
				return zero, err
			}
			return p.reduceUnary(tok, pos, inner)
		}
	}

	return zero, newError(ErrCodeInvalidPosition, pos, describe(tok),
		"expected nilfix nullary, prefix unary, prefix ternary or circumfix unary operator, found %s %s",
		desc.Affix, desc.Arity)
}

// led applies the left-denotation of a token that continues lhs.
func (p *Parser[T, O]) led(c *Cursor[T], tok T, desc op.Op, lhs O, pos, depth int) (O, error) {
	var zero O
	p.logger.Debug("led", "token", describe(tok), "op", desc.String(), "pos", pos)

	switch desc.Position() {
	case op.Postfix:
		switch desc.Arity {
		case op.Unary:
			// a!
			return p.reduceUnary(tok, pos, lhs)

		case op.Ternary:
			// a [ i ] = v
			mid, err := p.parseUntil(c, op.MinPrecedence, depth+1)
			if err != nil {
				return zero, err
			}
			if err := p.eatInterfix(c, desc, 0); err != nil {
				return zero, err
			}
			rhs, err := p.parseUntil(c, desc.RBP(), depth+1)
			if err != nil {
				return zero, err
			}
			return p.reduceTernary(tok, pos, lhs, mid, rhs)
		}

	case op.Infix:
		switch desc.Arity {
		case op.Binary:
			// a + b
			rhs, err := p.parseUntil(c, desc.RBP(), depth+1)
			if err != nil {
				return zero, err
			}
			return p.reduceBinary(tok, pos, lhs, rhs)

		case op.Ternary:
			// a ? b : c
			mid, err := p.parseUntil(c, op.MinPrecedence, depth+1)
			if err != nil {
				return zero, err
			}
			if err := p.eatInterfix(c, desc, 0); err != nil {
				return zero, err
			}
			rhs, err := p.parseUntil(c, desc.RBP(), depth+1)
			if err != nil {
				return zero, err
			}
			return p.reduceTernary(tok, pos, lhs, mid, rhs)
		}
	}

	return zero, newError(ErrCodeInvalidPosition, pos, describe(tok),
		"expected postfix unary, postfix ternary, infix binary or infix ternary operator, found %s %s",
		desc.Affix, desc.Arity)
}

// eatInterfix consumes the separator expected at boundary slot of desc when
// the next token is an interfix or circumfix token of that name.
func (p *Parser[T, O]) eatInterfix(c *Cursor[T], desc op.Op, slot int) error {
	want := desc.FollowAt(slot)
	if want == "" {
		return nil
	}

	next, ok := c.Peek()
	found := ""
	if ok {
		nextDesc, err := p.grammar.Query(next)
		if err != nil {
			return err
		}
		switch nextDesc.Position() {
		case op.Interfix, op.Circumfix:
			if nextDesc.Name == want {
				c.Next()
				p.logger.Debug("separator", "name", want, "of", desc.Name)
				return nil
			}
		}
		found = describe(next)
	}

	if p.separators == SeparatorStrict {
		if !ok {
			return newError(ErrCodeMissingSeparator, c.Consumed(), "",
				"expected %q to continue %q, found end of input", want, desc.Name)
		}
		return newError(ErrCodeMissingSeparator, c.Consumed(), found,
			"expected %q to continue %q", want, desc.Name)
	}
	p.logger.Debug("separator missing", "name", want, "of", desc.Name, "found", found)
	return nil
}

func (p *Parser[T, O]) reduceUnary(tok T, pos int, operand O) (O, error) {
	if p.unary == nil {
		var zero O
		return zero, missingReducer(tok, pos, op.Unary)
	}
	return p.unary.Unary(tok, operand)
}

func (p *Parser[T, O]) reduceBinary(tok T, pos int, lhs, rhs O) (O, error) {
	if p.binary == nil {
		var zero O
		return zero, missingReducer(tok, pos, op.Binary)
	}
	return p.binary.Binary(tok, lhs, rhs)
}

func (p *Parser[T, O]) reduceTernary(tok T, pos int, first, second, third O) (O, error) {
	if p.ternary == nil {
		var zero O
		return zero, missingReducer(tok, pos, op.Ternary)
	}
	return p.ternary.Ternary(tok, first, second, third)
}

func missingReducer[T any](tok T, pos int, arity op.Arity) *Error {
	return newError(ErrCodeMissingReducer, pos, describe(tok),
		"grammar does not implement %s reductions", arity)
}

func describe[T any](tok T) string {
	return fmt.Sprint(tok)
}
