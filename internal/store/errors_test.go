package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorsWrapGenericSentinels(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrDeckNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrCardNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)

	assert.NotErrorIs(t, ErrDeckNotFound, ErrDuplicate)
	assert.NotErrorIs(t, ErrEmailExists, ErrNotFound)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrCardNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("loading card: %w", ErrCardNotFound)))
	assert.False(t, IsNotFoundError(ErrInvalidEntity))
	assert.False(t, IsNotFoundError(errors.New("other")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("creating user: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrNotFound))
}

func TestStoreErrorFormatting(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection reset")
	err := NewStoreError("card", "update", "failed to save schedule", inner)

	assert.Equal(t,
		"update operation on card failed: failed to save schedule: connection reset",
		err.Error())
	assert.ErrorIs(t, err, inner)

	bare := NewStoreError("deck", "delete", "no rows affected", nil)
	assert.Equal(t, "delete operation on deck failed: no rows affected", bare.Error())
}

func TestStoreErrorSupportsErrorsAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", NewStoreError("user", "create", "boom", ErrDuplicate))

	var storeErr *StoreError
	assert.ErrorAs(t, wrapped, &storeErr)
	assert.Equal(t, "user", storeErr.Entity)
	assert.ErrorIs(t, wrapped, ErrDuplicate)
}
