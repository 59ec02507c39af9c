package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID("ev")

	assert.True(t, strings.HasPrefix(id, "ev_"))
	assert.True(t, IsValidULID(id))
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("ev")
		require.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
	}
}

func TestIsValidULID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{"valid generated ID", NewID("lc"), true},
		{"empty string", "", false},
		{"no separator", "ev01G0EZ1XTM37C5X11SQTDNCTM1", false},
		{"empty prefix", "_01G0EZ1XTM37C5X11SQTDNCTM1", false},
		{"uppercase prefix", "EV_01G0EZ1XTM37C5X11SQTDNCTM1", false},
		{"ulid too short", "ev_01G0EZ1XTM", false},
		{"invalid ulid characters", "ev_01G0EZ1XTM37C5X11SQTDNCTIL", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidULID(tt.id))
		})
	}
}

func TestNewSecretKey(t *testing.T) {
	key, err := NewSecretKey("lc")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "lc_"))
	// 32 bytes of entropy base64-encoded
	assert.Greater(t, len(key), 40)

	other, err := NewSecretKey("lc")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
