package auth

import (
	"strings"
	"testing"

	"agenda/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher()

	encoded, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := hasher.Check("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2Hasher_WrongPassword(t *testing.T) {
	hasher := NewArgon2Hasher()

	encoded, err := hasher.Hash("secret123")
	require.NoError(t, err)

	ok, err := hasher.Check("secret124", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_SaltsDiffer(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	// A fresh salt per hash means identical passwords never collide.
	assert.NotEqual(t, first, second)
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plain text", "not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{"missing salt", "$argon2id$v=19$m=65536,t=1,p=4$$a2V5"},
		{"bad base64 salt", "$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5"},
		{"truncated", "$argon2id$v=19$m=65536,t=1,p=4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hasher.Check("secret123", tc.encoded)
			require.ErrorIs(t, err, service.ErrMalformedHash)
		})
	}
}
