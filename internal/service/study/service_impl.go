package study

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/peanuts/anki-api/internal/domain"
	"github.com/peanuts/anki-api/internal/domain/srs"
	"github.com/peanuts/anki-api/internal/platform/logger"
	"github.com/peanuts/anki-api/internal/store"
)

// Verify interface compliance at compile time
var _ StudyService = (*studyServiceImpl)(nil)

// studyServiceImpl implements the StudyService interface.
type studyServiceImpl struct {
	deckStore  store.DeckStore
	cardStore  store.CardStore
	srsService srs.Service
	logger     *slog.Logger
	timeFunc   func() time.Time // Injectable for testing

	// runTx executes fn within a transaction. The default wraps
	// store.RunInTransaction; tests substitute a pass-through.
	runTx func(ctx context.Context, fn store.TxFn) error
}

// NewStudyService creates a new StudyService implementation. The db is
// used to open the transaction that makes a review's read-modify-write
// atomic; the stores are re-bound to that transaction via WithTx.
func NewStudyService(
	db *sql.DB,
	deckStore store.DeckStore,
	cardStore store.CardStore,
	srsService srs.Service,
	logger *slog.Logger,
) StudyService {
	if db == nil {
		panic("db cannot be nil")
	}
	if deckStore == nil {
		panic("deckStore cannot be nil")
	}
	if cardStore == nil {
		panic("cardStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &studyServiceImpl{
		deckStore:  deckStore,
		cardStore:  cardStore,
		srsService: srsService,
		logger:     logger.With(slog.String("component", "study_service")),
		timeFunc:   time.Now,
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
	}
}

// StartSession implements StudyService.StartSession.
func (s *studyServiceImpl) StartSession(
	ctx context.Context,
	userID, deckID uuid.UUID,
) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.timeFunc().UTC()

	log.Debug("starting study session",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()))

	deck, err := s.deckStore.GetByID(ctx, deckID)
	if err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	if deck.OwnerID != userID {
		log.Warn("user does not own deck",
			slog.String("user_id", userID.String()),
			slog.String("deck_id", deckID.String()),
			slog.String("owner_id", deck.OwnerID.String()))
		return nil, ErrDeckNotOwned
	}

	cards, err := s.cardStore.ListDue(ctx, deckID, now)
	if err != nil {
		if errors.Is(err, store.ErrDeckNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to list due cards: %w", err)
	}

	session := NewSession(deckID, cards)

	log.Info("study session started",
		slog.String("deck_id", deckID.String()),
		slog.Int("total", session.Total),
		slog.Int("new", session.New),
		slog.Int("review", session.Review))

	return session, nil
}

// SubmitReview implements StudyService.SubmitReview.
// The quality rating is validated before the transaction opens, so a
// rejected review cannot touch persisted state.
func (s *studyServiceImpl) SubmitReview(
	ctx context.Context,
	userID, cardID uuid.UUID,
	quality int,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.timeFunc().UTC()

	log.Debug("processing review",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Int("quality", quality))

	if quality < srs.MinQuality || quality > srs.MaxQuality {
		log.Warn("invalid quality rating",
			slog.String("card_id", cardID.String()),
			slog.Int("quality", quality))
		return nil, ErrInvalidQuality
	}

	var updated *domain.Card
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		cardStore := s.cardStore.WithTx(tx)
		deckStore := s.deckStore.WithTx(tx)

		card, err := cardStore.GetByID(ctx, cardID)
		if err != nil {
			if errors.Is(err, store.ErrCardNotFound) {
				return ErrCardNotFound
			}
			return fmt.Errorf("failed to get card: %w", err)
		}

		deck, err := deckStore.GetByID(ctx, card.DeckID)
		if err != nil {
			return fmt.Errorf("failed to get deck for ownership check: %w", err)
		}
		if deck.OwnerID != userID {
			log.Warn("user does not own card",
				slog.String("user_id", userID.String()),
				slog.String("card_id", cardID.String()),
				slog.String("owner_id", deck.OwnerID.String()))
			return ErrCardNotOwned
		}

		newSchedule, err := s.srsService.ApplyReview(card.Schedule, quality, now)
		if err != nil {
			return err
		}

		card.Schedule = newSchedule
		card.UpdatedAt = now

		if err := cardStore.Update(ctx, card); err != nil {
			return fmt.Errorf("failed to save reviewed card: %w", err)
		}

		updated = card
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrCardNotFound) ||
			errors.Is(err, ErrCardNotOwned) ||
			errors.Is(err, ErrInvalidQuality) {
			return nil, err
		}

		log.Error("failed to submit review",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	log.Info("review applied",
		slog.String("card_id", cardID.String()),
		slog.Int("quality", quality),
		slog.Int("repetitions", updated.Schedule.Repetitions),
		slog.Int("interval", updated.Schedule.Interval),
		slog.Float64("ease_factor", updated.Schedule.EaseFactor),
		slog.Time("next_review_at", updated.Schedule.NextReviewAt))

	return updated, nil
}
