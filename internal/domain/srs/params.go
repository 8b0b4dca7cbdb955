// Package srs implements the SM-2 spaced-repetition scheduling algorithm
// as a pure function over a card's ReviewSchedule. All state is passed in
// and returned; the package performs no I/O, reads no clock, and holds
// nothing between calls.
package srs

// Quality rating bounds. A review's quality is the user's self-assessed
// recall: 0 means no recall at all, 5 means perfect recall.
const (
	MinQuality = 0
	MaxQuality = 5

	// PassThreshold is the lowest quality that counts as a successful
	// recall. Anything below it resets the card to the relearning state.
	PassThreshold = 3
)

// Params defines the configurable constants of the SM-2 algorithm.
type Params struct {
	// MinEaseFactor is the floor applied after every ease adjustment.
	MinEaseFactor float64

	// InitialEaseFactor is the ease assigned to brand-new cards.
	InitialEaseFactor float64

	// FirstInterval is the interval in days after the first successful
	// review of a new or relearning card.
	FirstInterval int

	// SecondInterval is the interval in days after the second
	// consecutive successful review, before exponential growth begins.
	SecondInterval int
}

// NewDefaultParams returns the standard SM-2 constants: ease floored at
// 1.3, new cards at 2.5, and the 1-day / 6-day graduation ramp.
func NewDefaultParams() Params {
	return Params{
		MinEaseFactor:     1.3,
		InitialEaseFactor: 2.5,
		FirstInterval:     1,
		SecondInterval:    6,
	}
}
