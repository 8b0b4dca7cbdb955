package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/peanuts/anki-api/internal/domain"
	"github.com/peanuts/anki-api/internal/service/study"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// DeckRequest defines the payload for deck create/update endpoints.
type DeckRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// DeckResponse represents the response data for a deck.
type DeckResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CardRequest defines the payload for card create/update endpoints.
type CardRequest struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back"  validate:"required"`
}

// CardResponse represents the response data for a card, including its
// scheduling state.
type CardResponse struct {
	ID           uuid.UUID `json:"id"`
	DeckID       uuid.UUID `json:"deck_id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Repetitions  int       `json:"repetitions"`
	EaseFactor   float64   `json:"ease_factor"`
	Interval     int       `json:"interval"`
	NextReviewAt time.Time `json:"next_review_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReviewRequest defines the payload for submitting a card review.
// Quality is a pointer so that an absent field is distinguishable from
// a legitimate rating of 0.
type ReviewRequest struct {
	Quality *int `json:"quality" validate:"required"`
}

// ReviewResponse represents the result of a review: the card with its
// updated scheduling state.
type ReviewResponse struct {
	Card         CardResponse `json:"card"`
	Interval     int          `json:"interval"`
	NextReviewAt time.Time    `json:"next_review_at"`
}

// SessionResponse represents a started study session: the due set and
// its new/review partition.
type SessionResponse struct {
	DeckID uuid.UUID      `json:"deck_id"`
	Cards  []CardResponse `json:"cards"`
	Total  int            `json:"total"`
	New    int            `json:"new"`
	Review int            `json:"review"`
}

// deckToResponse converts a domain deck to its response representation.
func deckToResponse(deck *domain.Deck) DeckResponse {
	return DeckResponse{
		ID:          deck.ID,
		Name:        deck.Name,
		Description: deck.Description,
		CreatedAt:   deck.CreatedAt,
		UpdatedAt:   deck.UpdatedAt,
	}
}

// cardToResponse converts a domain card to its response representation.
func cardToResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:           card.ID,
		DeckID:       card.DeckID,
		Front:        card.Front,
		Back:         card.Back,
		Repetitions:  card.Schedule.Repetitions,
		EaseFactor:   card.Schedule.EaseFactor,
		Interval:     card.Schedule.Interval,
		NextReviewAt: card.Schedule.NextReviewAt,
		CreatedAt:    card.CreatedAt,
		UpdatedAt:    card.UpdatedAt,
	}
}

// sessionToResponse converts a study session to its response representation.
func sessionToResponse(session *study.Session) SessionResponse {
	cards := make([]CardResponse, 0, len(session.Cards))
	for _, card := range session.Cards {
		cards = append(cards, cardToResponse(card))
	}
	return SessionResponse{
		DeckID: session.DeckID,
		Cards:  cards,
		Total:  session.Total,
		New:    session.New,
		Review: session.Review,
	}
}
