package gofocus

import (
	"fmt"

	"go.uber.org/zap"
)

// Rule defaults for a standard game.
const (
	DefaultBoardSize       = 6
	DefaultPattern         = 2
	DefaultMaxStackHeight  = 5
	DefaultWinningCaptures = 6
)

// Config holds the rule settings of a game.
type Config struct {
	// BoardSize is the width and height of the board.
	BoardSize int
	// Pattern is how many squares of one color are laid down in a row before
	// switching colors.
	Pattern int
	// MaxStackHeight is the tallest a stack may be after a placement.
	MaxStackHeight int
	// WinningCaptures is the number of captured pieces that wins the game.
	WinningCaptures int

	logger  *zap.SugaredLogger
	metrics *Metrics
}

// DefaultConfig returns the settings of the official board.
func DefaultConfig() Config {
	return Config{
		BoardSize:       DefaultBoardSize,
		Pattern:         DefaultPattern,
		MaxStackHeight:  DefaultMaxStackHeight,
		WinningCaptures: DefaultWinningCaptures,
	}
}

// Validate checks that the settings describe a playable game.
func (c Config) Validate() error {
	if c.BoardSize < 1 {
		return fmt.Errorf("%d is not a valid board size", c.BoardSize)
	}

	if c.Pattern < 1 {
		return fmt.Errorf("%d is not a valid layout pattern", c.Pattern)
	}

	if c.MaxStackHeight < 1 {
		return fmt.Errorf("max stack height must be positive, got %d", c.MaxStackHeight)
	}

	if c.WinningCaptures < 1 {
		return fmt.Errorf("winning captures must be positive, got %d", c.WinningCaptures)
	}

	return nil
}

// Option changes the Config a game is created with.
type Option func(*Config)

// WithConfig replaces the rule settings wholesale. Logger and metrics set by
// other options are kept.
func WithConfig(rules Config) Option {
	return func(c *Config) {
		rules.logger = c.logger
		rules.metrics = c.metrics
		*c = rules
	}
}

// WithBoardSize sets the board width and height.
func WithBoardSize(n int) Option {
	return func(c *Config) { c.BoardSize = n }
}

// WithPattern sets the run length of the starting layout.
func WithPattern(n int) Option {
	return func(c *Config) { c.Pattern = n }
}

// WithMaxStackHeight sets the stack height limit.
func WithMaxStackHeight(n int) Option {
	return func(c *Config) { c.MaxStackHeight = n }
}

// WithWinningCaptures sets the capture count needed to win.
func WithWinningCaptures(n int) Option {
	return func(c *Config) { c.WinningCaptures = n }
}

// WithLogger sets the logger the game reports actions to.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Config) { c.logger = l }
}

// WithMetrics records every action of the game in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) { c.metrics = m }
}
