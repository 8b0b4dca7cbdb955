// Package study implements study sessions: selecting the due set of a
// deck and applying reviews through the SRS scheduler, persisting the
// result atomically.
package study

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/peanuts/anki-api/internal/domain"
)

// Common error types for the study service.
var (
	// ErrDeckNotFound indicates that the deck does not exist.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrDeckNotOwned indicates that the user does not own the deck.
	ErrDeckNotOwned = errors.New("unauthorized access: deck not owned by user")

	// ErrCardNotFound indicates that the card does not exist.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardNotOwned indicates that the user does not own the card.
	ErrCardNotOwned = errors.New("unauthorized access: card not owned by user")

	// ErrInvalidQuality indicates a quality rating outside [0, 5].
	// A review rejected with this error leaves the card untouched.
	ErrInvalidQuality = domain.ErrInvalidQuality
)

// Session is the result of starting a study session: the deck's due
// cards, most overdue first, partitioned into new and review counts.
type Session struct {
	DeckID uuid.UUID      `json:"deck_id"`
	Cards  []*domain.Card `json:"cards"`
	Total  int            `json:"total"`
	New    int            `json:"new"`
	Review int            `json:"review"`
}

// NewSession builds a Session from a due set, counting cards that have
// never been successfully reviewed as "new" and the rest as "review".
// Total is always New + Review.
func NewSession(deckID uuid.UUID, cards []*domain.Card) *Session {
	session := &Session{
		DeckID: deckID,
		Cards:  cards,
		Total:  len(cards),
	}
	for _, card := range cards {
		if card.Schedule.IsNew() {
			session.New++
		} else {
			session.Review++
		}
	}
	return session
}

// StudyService provides study session operations over a user's decks.
type StudyService interface {
	// StartSession returns the due set of the given deck at the given
	// moment, with new/review counts for the session-start summary.
	//
	// Returns ErrDeckNotFound if the deck does not exist and
	// ErrDeckNotOwned if it belongs to another user. A deck with no due
	// cards yields an empty session, not an error.
	StartSession(ctx context.Context, userID, deckID uuid.UUID) (*Session, error)

	// SubmitReview applies a quality rating to a card and persists the
	// resulting schedule. The read-modify-write of the card's scheduling
	// state runs in a single transaction.
	//
	// Returns ErrInvalidQuality for a rating outside [0, 5] (nothing is
	// persisted), ErrCardNotFound if the card does not exist, and
	// ErrCardNotOwned if the card's deck belongs to another user.
	SubmitReview(ctx context.Context, userID, cardID uuid.UUID, quality int) (*domain.Card, error)
}
