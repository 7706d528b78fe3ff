package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveUserIDIsDeterministic(t *testing.T) {
	a := DeriveUserID("opaque-token-abc")
	b := DeriveUserID("opaque-token-abc")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "user_"))

	assert.NotEqual(t, a, DeriveUserID("opaque-token-xyz"))
}

func TestDeriveUserIDNeverNegative(t *testing.T) {
	// Long tokens overflow int32; the id must still be non-negative.
	long := strings.Repeat("zzzzzzzz", 64)
	id := DeriveUserID(long)
	assert.NotContains(t, id, "-")
	assert.Regexp(t, `^user_\d+$`, id)
}

func TestDeriveUserIDEmptyToken(t *testing.T) {
	assert.Equal(t, "user_0", DeriveUserID(""))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", BearerToken("Bearer abc123"))
	assert.Equal(t, "", BearerToken(""))
	assert.Equal(t, "", BearerToken("Basic abc123"))
	assert.Equal(t, "", BearerToken("abc123"))
}

func TestHashTokenIsStableHex(t *testing.T) {
	first := HashToken("secret")
	assert.Len(t, first, 64)
	assert.Equal(t, first, HashToken("secret"))
	assert.NotEqual(t, first, HashToken("other"))
}
