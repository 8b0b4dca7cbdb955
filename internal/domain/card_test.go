package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Parallel()
	deckID := uuid.New()

	card, err := NewCard(deckID, "What is the capital of France?", "Paris")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, card.ID)
	assert.Equal(t, deckID, card.DeckID)
	assert.Equal(t, "What is the capital of France?", card.Front)
	assert.Equal(t, "Paris", card.Back)

	// A new card starts immediately due with default scheduling state.
	assert.Equal(t, 0, card.Schedule.Repetitions)
	assert.Equal(t, DefaultEaseFactor, card.Schedule.EaseFactor)
	assert.Equal(t, DefaultInterval, card.Schedule.Interval)
	assert.True(t, card.Schedule.IsNew())
	assert.False(t, card.Schedule.NextReviewAt.After(time.Now().UTC()))
}

func TestNewCardValidation(t *testing.T) {
	t.Parallel()
	deckID := uuid.New()

	testCases := []struct {
		name    string
		deckID  uuid.UUID
		front   string
		back    string
		wantErr error
	}{
		{
			name:    "empty deck ID",
			deckID:  uuid.Nil,
			front:   "front",
			back:    "back",
			wantErr: ErrCardDeckIDEmpty,
		},
		{
			name:    "empty front",
			deckID:  deckID,
			front:   "",
			back:    "back",
			wantErr: ErrCardFrontEmpty,
		},
		{
			name:    "empty back",
			deckID:  deckID,
			front:   "front",
			back:    "",
			wantErr: ErrCardBackEmpty,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := NewCard(tc.deckID, tc.front, tc.back)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, card)
		})
	}
}

func TestReviewScheduleValidate(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	testCases := []struct {
		name     string
		schedule ReviewSchedule
		wantErr  error
	}{
		{
			name:     "fresh schedule is valid",
			schedule: NewReviewSchedule(now),
			wantErr:  nil,
		},
		{
			name:     "negative repetitions",
			schedule: ReviewSchedule{Repetitions: -1, EaseFactor: 2.5, Interval: 1},
			wantErr:  ErrInvalidRepetitions,
		},
		{
			name:     "zero interval",
			schedule: ReviewSchedule{Repetitions: 0, EaseFactor: 2.5, Interval: 0},
			wantErr:  ErrInvalidInterval,
		},
		{
			name:     "ease factor below floor",
			schedule: ReviewSchedule{Repetitions: 0, EaseFactor: 1.2, Interval: 1},
			wantErr:  ErrInvalidEaseFactor,
		},
		{
			name:     "ease factor exactly at floor",
			schedule: ReviewSchedule{Repetitions: 0, EaseFactor: MinEaseFactor, Interval: 1},
			wantErr:  nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.schedule.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestReviewScheduleIsNew(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	assert.True(t, NewReviewSchedule(now).IsNew())
	assert.False(t, ReviewSchedule{Repetitions: 1, EaseFactor: 2.5, Interval: 1}.IsNew())
	assert.False(t, ReviewSchedule{Repetitions: 7, EaseFactor: 2.1, Interval: 30}.IsNew())
}

func TestCardUpdateText(t *testing.T) {
	t.Parallel()
	card, err := NewCard(uuid.New(), "old front", "old back")
	require.NoError(t, err)

	// Advance the schedule so we can verify editing leaves it alone.
	card.Schedule = ReviewSchedule{
		Repetitions:  3,
		EaseFactor:   2.2,
		Interval:     14,
		NextReviewAt: time.Now().UTC().AddDate(0, 0, 14),
	}
	before := card.Schedule

	require.NoError(t, card.UpdateText("new front", "new back"))
	assert.Equal(t, "new front", card.Front)
	assert.Equal(t, "new back", card.Back)
	assert.Equal(t, before, card.Schedule, "editing must not touch scheduling state")
}

func TestCardUpdateTextRollsBackOnInvalid(t *testing.T) {
	t.Parallel()
	card, err := NewCard(uuid.New(), "front", "back")
	require.NoError(t, err)

	err = card.UpdateText("", "new back")
	assert.ErrorIs(t, err, ErrCardFrontEmpty)
	assert.Equal(t, "front", card.Front, "front must be restored after failed update")
	assert.Equal(t, "back", card.Back, "back must be restored after failed update")
}
