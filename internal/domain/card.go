package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Scheduling defaults for newly created cards.
const (
	// DefaultEaseFactor is the ease factor assigned to new cards.
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the floor the ease factor can never drop below.
	MinEaseFactor = 1.3

	// DefaultInterval is the initial review interval in days.
	DefaultInterval = 1
)

// Card-specific validation errors.
var (
	ErrCardIDEmpty     = errors.New("card ID cannot be empty")
	ErrCardDeckIDEmpty = errors.New("card deck ID cannot be empty")
	ErrCardFrontEmpty  = errors.New("card front text cannot be empty")
	ErrCardBackEmpty   = errors.New("card back text cannot be empty")
)

// Schedule validation errors.
var (
	ErrInvalidRepetitions = errors.New("repetitions must be greater than or equal to 0")
	ErrInvalidInterval    = errors.New("interval must be greater than or equal to 1")
	ErrInvalidEaseFactor  = errors.New("ease factor must be greater than or equal to 1.3")
)

// ReviewSchedule is the scheduling state of a single card. It is a plain
// value: the scheduler consumes one and returns a new one, never mutating
// in place, so concurrent reviews of different cards share nothing.
type ReviewSchedule struct {
	Repetitions  int       `json:"repetitions"`    // Consecutive successful reviews since the last reset
	EaseFactor   float64   `json:"ease_factor"`    // Interval growth multiplier, floored at 1.3
	Interval     int       `json:"interval"`       // Days until the next scheduled review
	NextReviewAt time.Time `json:"next_review_at"` // The card is due when this is at or before now
}

// NewReviewSchedule returns the scheduling state for a freshly created
// card: immediately due, default ease, one-day interval.
func NewReviewSchedule(now time.Time) ReviewSchedule {
	return ReviewSchedule{
		Repetitions:  0,
		EaseFactor:   DefaultEaseFactor,
		Interval:     DefaultInterval,
		NextReviewAt: now,
	}
}

// Validate checks the schedule invariants.
func (s ReviewSchedule) Validate() error {
	if s.Repetitions < 0 {
		return ErrInvalidRepetitions
	}

	if s.Interval < 1 {
		return ErrInvalidInterval
	}

	if s.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	return nil
}

// IsNew reports whether the card is in the new/relearning state,
// i.e. it has no successful reviews since its last reset.
func (s ReviewSchedule) IsNew() bool {
	return s.Repetitions == 0
}

// Card is a front/back text pair plus its review scheduling state.
type Card struct {
	ID        uuid.UUID      `json:"id"`
	DeckID    uuid.UUID      `json:"deck_id"`
	Front     string         `json:"front"`
	Back      string         `json:"back"`
	Schedule  ReviewSchedule `json:"schedule"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewCard creates a new Card in the given deck with default scheduling
// state (immediately due). Returns an error if validation fails.
func NewCard(deckID uuid.UUID, front, back string) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:        uuid.New(),
		DeckID:    deckID,
		Front:     front,
		Back:      back,
		Schedule:  NewReviewSchedule(now),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data, including its schedule.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.DeckID == uuid.Nil {
		return ErrCardDeckIDEmpty
	}

	if c.Front == "" {
		return ErrCardFrontEmpty
	}

	if c.Back == "" {
		return ErrCardBackEmpty
	}

	return c.Schedule.Validate()
}

// UpdateText replaces the card's front and back text and bumps the
// updated timestamp. The scheduling state is untouched: editing a card
// does not change when it is next due.
func (c *Card) UpdateText(front, back string) error {
	origFront, origBack := c.Front, c.Back
	c.Front = front
	c.Back = back

	if err := c.Validate(); err != nil {
		c.Front = origFront
		c.Back = origBack
		return err
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}
