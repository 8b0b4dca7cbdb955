package study

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peanuts/anki-api/internal/domain"
	"github.com/peanuts/anki-api/internal/domain/srs"
	"github.com/peanuts/anki-api/internal/store"
)

// mockDeckStore is a hand-written DeckStore fake backed by a map.
type mockDeckStore struct {
	decks map[uuid.UUID]*domain.Deck
}

func newMockDeckStore(decks ...*domain.Deck) *mockDeckStore {
	m := &mockDeckStore{decks: make(map[uuid.UUID]*domain.Deck)}
	for _, d := range decks {
		m.decks[d.ID] = d
	}
	return m
}

func (m *mockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	m.decks[deck.ID] = deck
	return nil
}

func (m *mockDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	deck, ok := m.decks[id]
	if !ok {
		return nil, store.ErrDeckNotFound
	}
	return deck, nil
}

func (m *mockDeckStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Deck, error) {
	var out []*domain.Deck
	for _, d := range m.decks {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDeckStore) Update(ctx context.Context, deck *domain.Deck) error {
	if _, ok := m.decks[deck.ID]; !ok {
		return store.ErrDeckNotFound
	}
	m.decks[deck.ID] = deck
	return nil
}

func (m *mockDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.decks[id]; !ok {
		return store.ErrDeckNotFound
	}
	delete(m.decks, id)
	return nil
}

func (m *mockDeckStore) WithTx(tx *sql.Tx) store.DeckStore { return m }

// mockCardStore is a hand-written CardStore fake backed by a map. It
// records Update calls so tests can assert what was (not) persisted.
type mockCardStore struct {
	cards       map[uuid.UUID]*domain.Card
	updateCalls int
}

func newMockCardStore(cards ...*domain.Card) *mockCardStore {
	m := &mockCardStore{cards: make(map[uuid.UUID]*domain.Card)}
	for _, c := range cards {
		m.cards[c.ID] = c
	}
	return m
}

func (m *mockCardStore) Create(ctx context.Context, card *domain.Card) error {
	m.cards[card.ID] = card
	return nil
}

func (m *mockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	card, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	copied := *card
	return &copied, nil
}

func (m *mockCardStore) ListByDeck(
	ctx context.Context,
	deckID uuid.UUID,
) ([]*domain.Card, error) {
	var out []*domain.Card
	for _, c := range m.cards {
		if c.DeckID == deckID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListDue mirrors the store contract: most overdue first, card ID as a
// stable tie-break.
func (m *mockCardStore) ListDue(
	ctx context.Context,
	deckID uuid.UUID,
	now time.Time,
) ([]*domain.Card, error) {
	out := []*domain.Card{}
	for _, c := range m.cards {
		if c.DeckID == deckID && !c.Schedule.NextReviewAt.After(now) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Schedule.NextReviewAt.Equal(out[j].Schedule.NextReviewAt) {
			return out[i].Schedule.NextReviewAt.Before(out[j].Schedule.NextReviewAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *mockCardStore) Update(ctx context.Context, card *domain.Card) error {
	if _, ok := m.cards[card.ID]; !ok {
		return store.ErrCardNotFound
	}
	copied := *card
	m.cards[card.ID] = &copied
	m.updateCalls++
	return nil
}

func (m *mockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(m.cards, id)
	return nil
}

func (m *mockCardStore) WithTx(tx *sql.Tx) store.CardStore { return m }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService builds a study service around mock stores with the
// transaction seam replaced by a pass-through.
func newTestService(
	deckStore *mockDeckStore,
	cardStore *mockCardStore,
	now time.Time,
) *studyServiceImpl {
	return &studyServiceImpl{
		deckStore:  deckStore,
		cardStore:  cardStore,
		srsService: srs.NewDefaultService(),
		logger:     testLogger(),
		timeFunc:   func() time.Time { return now },
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return fn(ctx, nil)
		},
	}
}

func testDeck(t *testing.T, ownerID uuid.UUID) *domain.Deck {
	t.Helper()
	deck, err := domain.NewDeck(ownerID, "Test Deck", "")
	require.NoError(t, err)
	return deck
}

func testCard(t *testing.T, deckID uuid.UUID, schedule domain.ReviewSchedule) *domain.Card {
	t.Helper()
	card, err := domain.NewCard(deckID, "front", "back")
	require.NoError(t, err)
	card.Schedule = schedule
	return card
}

func TestStartSessionCounts(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	deck := testDeck(t, ownerID)

	newCard := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 0, EaseFactor: 2.5, Interval: 1, NextReviewAt: now.AddDate(0, 0, -1),
	})
	reviewCard := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 3, EaseFactor: 2.2, Interval: 14, NextReviewAt: now,
	})
	futureCard := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 1, EaseFactor: 2.5, Interval: 6, NextReviewAt: now.AddDate(0, 0, 6),
	})

	service := newTestService(
		newMockDeckStore(deck),
		newMockCardStore(newCard, reviewCard, futureCard),
		now,
	)

	session, err := service.StartSession(context.Background(), ownerID, deck.ID)
	require.NoError(t, err)

	assert.Equal(t, deck.ID, session.DeckID)
	assert.Equal(t, 2, session.Total, "only due cards belong to the session")
	assert.Equal(t, 1, session.New)
	assert.Equal(t, 1, session.Review)
	assert.Equal(t, session.Total, session.New+session.Review)
	require.Len(t, session.Cards, 2)
	assert.Equal(t, newCard.ID, session.Cards[0].ID, "most overdue card comes first")
	assert.Equal(t, reviewCard.ID, session.Cards[1].ID)
}

func TestStartSessionOrdering(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	deck := testDeck(t, ownerID)

	// Two cards share a due date so the ID tie-break decides their order.
	tied := now.AddDate(0, 0, -2)
	tiedA := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 1, EaseFactor: 2.5, Interval: 6, NextReviewAt: tied,
	})
	tiedB := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 2, EaseFactor: 2.3, Interval: 15, NextReviewAt: tied,
	})
	mostOverdue := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 0, EaseFactor: 2.5, Interval: 1, NextReviewAt: now.AddDate(0, 0, -10),
	})
	dueNow := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 5, EaseFactor: 2.0, Interval: 30, NextReviewAt: now,
	})

	service := newTestService(
		newMockDeckStore(deck),
		newMockCardStore(tiedA, tiedB, mostOverdue, dueNow),
		now,
	)

	session, err := service.StartSession(context.Background(), ownerID, deck.ID)
	require.NoError(t, err)
	require.Len(t, session.Cards, 4)

	assert.Equal(t, mostOverdue.ID, session.Cards[0].ID)
	assert.Equal(t, dueNow.ID, session.Cards[3].ID, "least overdue card comes last")

	first, second := tiedA, tiedB
	if second.ID.String() < first.ID.String() {
		first, second = second, first
	}
	assert.Equal(t, first.ID, session.Cards[1].ID, "equal due dates break ties by card ID")
	assert.Equal(t, second.ID, session.Cards[2].ID)
}

func TestStartSessionEmptyDeck(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	ownerID := uuid.New()
	deck := testDeck(t, ownerID)

	service := newTestService(newMockDeckStore(deck), newMockCardStore(), now)

	session, err := service.StartSession(context.Background(), ownerID, deck.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, session.Total)
	assert.Equal(t, 0, session.New)
	assert.Equal(t, 0, session.Review)
	assert.NotNil(t, session.Cards, "cards must be an empty slice, not nil")
	assert.Empty(t, session.Cards)
}

func TestStartSessionDeckNotFound(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	service := newTestService(newMockDeckStore(), newMockCardStore(), now)

	_, err := service.StartSession(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrDeckNotFound)
}

func TestStartSessionDeckNotOwned(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	deck := testDeck(t, uuid.New())
	service := newTestService(newMockDeckStore(deck), newMockCardStore(), now)

	_, err := service.StartSession(context.Background(), uuid.New(), deck.ID)
	assert.ErrorIs(t, err, ErrDeckNotOwned)
}

func TestSubmitReviewAppliesSchedule(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	deck := testDeck(t, ownerID)
	card := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 1, EaseFactor: 2.5, Interval: 1, NextReviewAt: now,
	})

	cardStore := newMockCardStore(card)
	service := newTestService(newMockDeckStore(deck), cardStore, now)

	updated, err := service.SubmitReview(context.Background(), ownerID, card.ID, 4)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Schedule.Repetitions)
	assert.Equal(t, 6, updated.Schedule.Interval)
	assert.InDelta(t, 2.5, updated.Schedule.EaseFactor, 1e-9)
	assert.Equal(t, now.AddDate(0, 0, 6), updated.Schedule.NextReviewAt)
	assert.Equal(t, now, updated.UpdatedAt)

	stored, err := cardStore.GetByID(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Schedule, stored.Schedule, "new schedule must be persisted")
}

func TestSubmitReviewFailureResetsCard(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	deck := testDeck(t, ownerID)
	card := testCard(t, deck.ID, domain.ReviewSchedule{
		Repetitions: 4, EaseFactor: 2.2, Interval: 30, NextReviewAt: now,
	})

	service := newTestService(newMockDeckStore(deck), newMockCardStore(card), now)

	updated, err := service.SubmitReview(context.Background(), ownerID, card.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, updated.Schedule.Repetitions)
	assert.Equal(t, 1, updated.Schedule.Interval)
	assert.InDelta(t, 1.88, updated.Schedule.EaseFactor, 1e-9,
		"failure must still lower the ease factor")
	assert.Equal(t, now.AddDate(0, 0, 1), updated.Schedule.NextReviewAt)
}

func TestSubmitReviewInvalidQualityPersistsNothing(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	ownerID := uuid.New()
	deck := testDeck(t, ownerID)
	original := domain.ReviewSchedule{
		Repetitions: 2, EaseFactor: 2.3, Interval: 10, NextReviewAt: now,
	}
	card := testCard(t, deck.ID, original)

	cardStore := newMockCardStore(card)
	service := newTestService(newMockDeckStore(deck), cardStore, now)

	for _, quality := range []int{-1, 6} {
		_, err := service.SubmitReview(context.Background(), ownerID, card.ID, quality)
		assert.ErrorIs(t, err, ErrInvalidQuality, "quality %d", quality)
	}

	assert.Zero(t, cardStore.updateCalls, "rejected reviews must not write")
	stored, err := cardStore.GetByID(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Equal(t, original, stored.Schedule, "schedule must be untouched")
}

func TestSubmitReviewCardNotFound(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	ownerID := uuid.New()
	deck := testDeck(t, ownerID)
	service := newTestService(newMockDeckStore(deck), newMockCardStore(), now)

	_, err := service.SubmitReview(context.Background(), ownerID, uuid.New(), 4)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestSubmitReviewCardNotOwned(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	deck := testDeck(t, uuid.New())
	card := testCard(t, deck.ID, domain.NewReviewSchedule(now))

	cardStore := newMockCardStore(card)
	service := newTestService(newMockDeckStore(deck), cardStore, now)

	_, err := service.SubmitReview(context.Background(), uuid.New(), card.ID, 4)
	assert.ErrorIs(t, err, ErrCardNotOwned)
	assert.Zero(t, cardStore.updateCalls)
}

func TestNewSessionPartition(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	deckID := uuid.New()

	cards := []*domain.Card{
		testCard(t, deckID, domain.ReviewSchedule{
			Repetitions: 0, EaseFactor: 2.5, Interval: 1, NextReviewAt: now,
		}),
		testCard(t, deckID, domain.ReviewSchedule{
			Repetitions: 0, EaseFactor: 2.5, Interval: 1, NextReviewAt: now,
		}),
		testCard(t, deckID, domain.ReviewSchedule{
			Repetitions: 5, EaseFactor: 2.0, Interval: 60, NextReviewAt: now,
		}),
	}

	session := NewSession(deckID, cards)
	assert.Equal(t, 3, session.Total)
	assert.Equal(t, 2, session.New)
	assert.Equal(t, 1, session.Review)
	assert.Equal(t, session.Total, session.New+session.Review)
}
