package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/peanuts/anki-api/internal/store"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		wantIs   error
		passthru bool
	}{
		{
			name: "nil error",
			err:  nil,
		},
		{
			name:   "no rows maps to not found",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "wrapped no rows maps to not found",
			err:    fmt.Errorf("scanning card: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique violation maps to duplicate",
			err:    pgError("23505", "users_email_key"),
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation maps to invalid entity",
			err:    pgError("23503", "cards_deck_id_fkey"),
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "check violation maps to invalid entity",
			err:    pgError("23514", "cards_ease_factor_check"),
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not null violation maps to invalid entity",
			err:    pgError("23502", ""),
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:     "unrecognized pg error passes through",
			err:      pgError("57014", ""), // query_canceled
			passthru: true,
		},
		{
			name:     "plain error passes through",
			err:      errors.New("dial tcp: connection refused"),
			passthru: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tc.err)

			switch {
			case tc.err == nil:
				assert.NoError(t, got)
			case tc.passthru:
				assert.Equal(t, tc.err, got)
			default:
				assert.ErrorIs(t, got, tc.wantIs)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(pgError("23505", "users_email_key")))
	assert.True(t, IsUniqueViolation(
		fmt.Errorf("insert: %w", pgError("23505", "users_email_key"))))
	assert.False(t, IsUniqueViolation(pgError("23503", "")))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForeignKeyViolation(pgError("23503", "cards_deck_id_fkey")))
	assert.False(t, IsForeignKeyViolation(pgError("23505", "")))
	assert.False(t, IsForeignKeyViolation(nil))
}
