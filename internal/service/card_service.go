package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/peanuts/anki-api/internal/domain"
	"github.com/peanuts/anki-api/internal/platform/logger"
	"github.com/peanuts/anki-api/internal/store"
)

// CardService orchestrates card CRUD with ownership enforcement via the
// card's deck. Review scheduling is the study service's concern; editing
// a card here never changes its schedule.
type CardService struct {
	cardStore store.CardStore
	deckStore store.DeckStore
	logger    *slog.Logger
}

// NewCardService creates a new CardService.
func NewCardService(
	cardStore store.CardStore,
	deckStore store.DeckStore,
	logger *slog.Logger,
) *CardService {
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if deckStore == nil {
		panic("deckStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CardService{
		cardStore: cardStore,
		deckStore: deckStore,
		logger:    logger.With(slog.String("component", "card_service")),
	}
}

// ListCards returns all cards in a deck, enforcing deck ownership.
func (s *CardService) ListCards(
	ctx context.Context,
	userID, deckID uuid.UUID,
) ([]*domain.Card, error) {
	if err := s.checkDeckOwned(ctx, userID, deckID); err != nil {
		return nil, err
	}

	cards, err := s.cardStore.ListByDeck(ctx, deckID)
	if err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// GetCard returns a single card, enforcing ownership through its deck.
func (s *CardService) GetCard(
	ctx context.Context,
	userID, cardID uuid.UUID,
) (*domain.Card, error) {
	return s.ownedCard(ctx, userID, cardID)
}

// CreateCard creates a new card in the given deck with default
// scheduling state (immediately due).
func (s *CardService) CreateCard(
	ctx context.Context,
	userID, deckID uuid.UUID,
	front, back string,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.checkDeckOwned(ctx, userID, deckID); err != nil {
		return nil, err
	}

	card, err := domain.NewCard(deckID, front, back)
	if err != nil {
		return nil, err
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	log.Info("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", deckID.String()))
	return card, nil
}

// UpdateCard replaces a card's front/back text, enforcing ownership.
// The card's scheduling state is preserved.
func (s *CardService) UpdateCard(
	ctx context.Context,
	userID, cardID uuid.UUID,
	front, back string,
) (*domain.Card, error) {
	card, err := s.ownedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	if err := card.UpdateText(front, back); err != nil {
		return nil, err
	}

	if err := s.cardStore.Update(ctx, card); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	return card, nil
}

// DeleteCard removes a card, enforcing ownership through its deck.
func (s *CardService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedCard(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.cardStore.Delete(ctx, cardID); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}

	log.Info("card deleted", slog.String("card_id", cardID.String()))
	return nil
}

// checkDeckOwned verifies the deck exists and belongs to the user.
func (s *CardService) checkDeckOwned(ctx context.Context, userID, deckID uuid.UUID) error {
	deck, err := s.deckStore.GetByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get deck: %w", err)
	}

	if deck.OwnerID != userID {
		return ErrNotOwned
	}

	return nil
}

// ownedCard loads a card and verifies the user owns its deck.
func (s *CardService) ownedCard(
	ctx context.Context,
	userID, cardID uuid.UUID,
) (*domain.Card, error) {
	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	if err := s.checkDeckOwned(ctx, userID, card.DeckID); err != nil {
		// A missing deck for an existing card is an integrity problem,
		// but from the caller's view the card is simply not theirs.
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotOwned
		}
		return nil, err
	}

	return card, nil
}
