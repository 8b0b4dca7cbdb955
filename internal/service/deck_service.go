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

// DeckService orchestrates deck CRUD with ownership enforcement.
type DeckService struct {
	deckStore store.DeckStore
	logger    *slog.Logger
}

// NewDeckService creates a new DeckService.
func NewDeckService(deckStore store.DeckStore, logger *slog.Logger) *DeckService {
	if deckStore == nil {
		panic("deckStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DeckService{
		deckStore: deckStore,
		logger:    logger.With(slog.String("component", "deck_service")),
	}
}

// ListDecks returns all decks owned by the user.
func (s *DeckService) ListDecks(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	decks, err := s.deckStore.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// GetDeck returns a single deck, enforcing ownership.
func (s *DeckService) GetDeck(
	ctx context.Context,
	userID, deckID uuid.UUID,
) (*domain.Deck, error) {
	return s.ownedDeck(ctx, userID, deckID)
}

// CreateDeck creates a new deck for the user.
func (s *DeckService) CreateDeck(
	ctx context.Context,
	userID uuid.UUID,
	name, description string,
) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := domain.NewDeck(userID, name, description)
	if err != nil {
		return nil, err
	}

	if err := s.deckStore.Create(ctx, deck); err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}

	log.Info("deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.String("owner_id", userID.String()))
	return deck, nil
}

// UpdateDeck renames a deck, enforcing ownership.
func (s *DeckService) UpdateDeck(
	ctx context.Context,
	userID, deckID uuid.UUID,
	name, description string,
) (*domain.Deck, error) {
	deck, err := s.ownedDeck(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	if err := deck.Rename(name, description); err != nil {
		return nil, err
	}

	if err := s.deckStore.Update(ctx, deck); err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}

	return deck, nil
}

// DeleteDeck removes a deck and its cards, enforcing ownership.
func (s *DeckService) DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return err
	}

	if err := s.deckStore.Delete(ctx, deckID); err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	log.Info("deck deleted", slog.String("deck_id", deckID.String()))
	return nil
}

// ownedDeck loads a deck and verifies the user owns it.
func (s *DeckService) ownedDeck(
	ctx context.Context,
	userID, deckID uuid.UUID,
) (*domain.Deck, error) {
	deck, err := s.deckStore.GetByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	if deck.OwnerID != userID {
		return nil, ErrNotOwned
	}

	return deck, nil
}
