package pratt

// Stream is a forward-only source of tokens.
// Next returns false once the stream is exhausted and keeps returning false.
type Stream[T any] interface {
	Next() (T, bool)
}

// SliceStream streams the elements of a slice in order.
type SliceStream[T any] struct {
	items []T
	idx   int
}

// NewSliceStream creates a stream over items. The slice is not copied.
func NewSliceStream[T any](items []T) *SliceStream[T] {
	return &SliceStream[T]{items: items}
}

// Next returns the next element.
func (s *SliceStream[T]) Next() (T, bool) {
	if s.idx >= len(s.items) {
		var zero T
		return zero, false
	}
	item := s.items[s.idx]
	s.idx++
	return item, true
}

// Cursor adds one token of lookahead to a Stream.
//
// A single Cursor is shared by every recursive call of one parse. It only
// moves forward and is never rewound.
type Cursor[T any] struct {
	src      Stream[T]
	head     T
	full     bool
	done     bool
	consumed int
}

// NewCursor wraps src.
func NewCursor[T any](src Stream[T]) *Cursor[T] {
	return &Cursor[T]{src: src}
}

// NewSliceCursor is shorthand for NewCursor(NewSliceStream(items)).
func NewSliceCursor[T any](items []T) *Cursor[T] {
	return NewCursor[T](NewSliceStream(items))
}

// Peek returns the next token without consuming it.
func (c *Cursor[T]) Peek() (T, bool) {
	c.fill()
	return c.head, c.full
}

// Next consumes and returns the next token.
func (c *Cursor[T]) Next() (T, bool) {
	c.fill()
	if !c.full {
		var zero T
		return zero, false
	}
	tok := c.head
	var zero T
	c.head = zero
	c.full = false
	c.consumed++
	return tok, true
}

// Done reports whether the stream is exhausted. It does not consume a token.
func (c *Cursor[T]) Done() bool {
	c.fill()
	return !c.full
}

// Consumed returns the number of tokens consumed so far, which is also the
// index of the next token.
func (c *Cursor[T]) Consumed() int {
	return c.consumed
}

func (c *Cursor[T]) fill() {
	if c.full || c.done {
		return
	}
	tok, ok := c.src.Next()
	if !ok {
		c.done = true
		return
	}
	c.head = tok
	c.full = true
}
