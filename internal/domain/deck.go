package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Deck-specific validation errors.
var (
	ErrDeckIDEmpty      = errors.New("deck ID cannot be empty")
	ErrDeckOwnerIDEmpty = errors.New("deck owner ID cannot be empty")
	ErrDeckNameEmpty    = errors.New("deck name cannot be empty")
	ErrDeckNameTooLong  = errors.New("deck name cannot exceed 100 characters")
)

// Deck is a named collection of cards belonging to one user.
type Deck struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewDeck creates a new Deck owned by the given user.
// Returns an error if validation fails.
func NewDeck(ownerID uuid.UUID, name, description string) (*Deck, error) {
	now := time.Now().UTC()
	deck := &Deck{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDeckIDEmpty
	}

	if d.OwnerID == uuid.Nil {
		return ErrDeckOwnerIDEmpty
	}

	if d.Name == "" {
		return ErrDeckNameEmpty
	}

	if len(d.Name) > 100 {
		return ErrDeckNameTooLong
	}

	return nil
}

// Rename updates the deck's name and description and bumps the
// updated timestamp. Returns an error if the new values are invalid.
func (d *Deck) Rename(name, description string) error {
	origName, origDesc := d.Name, d.Description
	d.Name = name
	d.Description = description

	if err := d.Validate(); err != nil {
		d.Name = origName
		d.Description = origDesc
		return err
	}

	d.UpdatedAt = time.Now().UTC()
	return nil
}
