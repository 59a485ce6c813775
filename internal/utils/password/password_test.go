// File: internal/utils/password/password_test.go
package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Password1", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	match, err := Verify("Password1", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("Password1", nil)
	require.NoError(t, err)

	match, err := Verify("Password2", hash)
	assert.ErrorIs(t, err, ErrMismatchedPassword)
	assert.False(t, match)
}

func TestHash_SaltsDiffer(t *testing.T) {
	first, err := Hash("Password1", nil)
	require.NoError(t, err)
	second, err := Hash("Password1", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify_MalformedHash(t *testing.T) {
	_, err := Verify("Password1", "not-a-phc-string")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestVerify_BcryptHashRejected(t *testing.T) {
	// Хеши других алгоритмов не должны проходить как argon2id
	_, err := Verify("Password1", "$2a$10$N9qo8uLOickgx2ZMRZoMye1J1FZyCbHgUkqgJ5y0pG5eJ1rW1p3eW")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestHash_CustomParams(t *testing.T) {
	params := &Params{Memory: 16 * 1024, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32}

	hash, err := Hash("Password1", params)
	require.NoError(t, err)

	match, err := Verify("Password1", hash)
	require.NoError(t, err)
	assert.True(t, match)
}
