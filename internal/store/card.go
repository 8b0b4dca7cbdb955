package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/peanuts/anki-api/internal/domain"
)

// CardStore defines the interface for card data persistence, including
// the due-set selection query that feeds study sessions.
type CardStore interface {
	// Create saves a new card to the store.
	// Returns ErrDeckNotFound if the card's deck does not exist.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListByDeck retrieves all cards in the given deck, ordered by
	// creation time. Returns ErrDeckNotFound if the deck does not exist.
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)

	// ListDue retrieves every card in the deck whose next review time is
	// at or before now, ordered by next review time ascending (most
	// overdue first) with card ID as a stable tie-break.
	//
	// Returns ErrDeckNotFound if the deck does not exist, and an empty
	// slice (not an error) if the deck has no due cards.
	ListDue(ctx context.Context, deckID uuid.UUID, now time.Time) ([]*domain.Card, error)

	// Update persists changes to an existing card, both its text and its
	// scheduling state. Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Card) error

	// Delete removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CardStore that runs its operations on the given
	// transaction. Use with store.RunInTransaction so a review's
	// read-modify-write of a card's schedule is atomic.
	WithTx(tx *sql.Tx) CardStore
}
