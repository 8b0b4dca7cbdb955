package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("test@example.com", "securepassword123")
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "securepassword123", user.Password)
	assert.Empty(t, user.HashedPassword)
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "empty email",
			email:    "",
			password: "securepassword123",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "securepassword123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email missing domain dot",
			email:    "user@localhost",
			password: "securepassword123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			email:    "test@example.com",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long for bcrypt",
			email:    "test@example.com",
			password: strings.Repeat("p", 73),
			wantErr:  ErrPasswordTooLong,
		},
		{
			name:     "empty password",
			email:    "test@example.com",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tc.email, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, user)
		})
	}
}

func TestUserValidateWithHashOnly(t *testing.T) {
	t.Parallel()

	// Users loaded from storage have no plaintext password, only the hash.
	user, err := NewUser("test@example.com", "securepassword123")
	require.NoError(t, err)

	user.Password = ""
	user.HashedPassword = "$2a$10$fakehashforvalidationonly"
	assert.NoError(t, user.Validate())
}
