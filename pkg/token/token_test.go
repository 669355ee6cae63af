package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Generate("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	sid, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sid)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Generate("session-123")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Generate("session-123")
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Parse(input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestParseRejectsEmptySessionID(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Generate("")
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
