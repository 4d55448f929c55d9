package oauth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateState_Length(t *testing.T) {
	state, err := GenerateState()
	require.NoError(t, err)

	raw, err := hex.DecodeString(state)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestGenerateState_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		state, err := GenerateState()
		require.NoError(t, err)
		assert.False(t, seen[state], "duplicate state generated")
		seen[state] = true
	}
}
