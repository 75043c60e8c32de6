package pratt

import "log/slog"

// SeparatorMode selects how follow tokens of mixfix constructs are matched.
type SeparatorMode uint8

const (
	// SeparatorLenient consumes an expected separator when it is present and
	// silently continues when it is missing or different.
	SeparatorLenient SeparatorMode = iota

	// SeparatorStrict fails with MISSING_SEPARATOR when an expected separator
	// is missing or different.
	SeparatorStrict
)

func (m SeparatorMode) String() string {
	if m == SeparatorStrict {
		return "strict"
	}
	return "lenient"
}

// ParseSeparatorMode converts "lenient" or "strict" to a SeparatorMode.
// The empty string selects SeparatorLenient.
func ParseSeparatorMode(s string) (SeparatorMode, bool) {
	switch s {
	case "", "lenient":
		return SeparatorLenient, true
	case "strict":
		return SeparatorStrict, true
	}
	return SeparatorLenient, false
}

// Option configures a Parser.
type Option func(*config)

type config struct {
	separators SeparatorMode
	maxDepth   int
	logger     *slog.Logger
}

// WithSeparatorMode sets how follow tokens are matched. Default is lenient.
func WithSeparatorMode(m SeparatorMode) Option {
	return func(c *config) {
		c.separators = m
	}
}

// WithMaxDepth limits how deeply sub-expressions may nest. Zero, the
// default, means no limit.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxDepth = n
	}
}

// WithLogger sets the logger used for dispatch tracing at debug level.
// Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
