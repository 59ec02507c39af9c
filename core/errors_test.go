package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"sentinel", ErrNotFound, true},
		{"wrapped sentinel", fmt.Errorf("failed to get issue: %w", ErrNotFound), true},
		{"upstream entity not found", errors.New("graphql: Entity not found - Could not find referenced Issue"), true},
		{"mixed case", errors.New("Not Found"), true},
		{"unrelated error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestOwnershipError(t *testing.T) {
	err := &OwnershipError{EntityType: "issue", EntityID: "issue-123"}

	assert.Contains(t, err.Error(), "issue issue-123")
	assert.Contains(t, err.Error(), "force=true")

	assert.True(t, IsOwnershipError(err))
	assert.True(t, IsOwnershipError(fmt.Errorf("failed to update issue: %w", err)))
	assert.False(t, IsOwnershipError(errors.New("permission denied")))
	assert.False(t, IsOwnershipError(nil))
}
