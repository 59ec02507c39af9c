package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupService_CheckAndMark(t *testing.T) {
	service, err := NewDedupService(time.Minute)
	require.NoError(t, err)
	defer service.Close()

	assert.True(t, service.CheckAndMark("wh-1:100:Comment:create:c1"))
	assert.False(t, service.CheckAndMark("wh-1:100:Comment:create:c1"))

	// Different delivery is independent
	assert.True(t, service.CheckAndMark("wh-1:101:Comment:create:c1"))
}

func TestDedupService_EmptyIDAlwaysNew(t *testing.T) {
	service, err := NewDedupService(time.Minute)
	require.NoError(t, err)
	defer service.Close()

	assert.True(t, service.CheckAndMark(""))
	assert.True(t, service.CheckAndMark(""))
}

func TestDedupService_TTLExpiry(t *testing.T) {
	service, err := NewDedupService(50 * time.Millisecond)
	require.NoError(t, err)
	defer service.Close()

	assert.True(t, service.CheckAndMark("wh-2:200:Issue:update:i1"))
	assert.False(t, service.CheckAndMark("wh-2:200:Issue:update:i1"))

	time.Sleep(100 * time.Millisecond)
	assert.True(t, service.CheckAndMark("wh-2:200:Issue:update:i1"))
}

func TestNewDedupService_DefaultTTL(t *testing.T) {
	service, err := NewDedupService(0)
	require.NoError(t, err)
	defer service.Close()

	assert.Equal(t, DefaultTTL, service.ttl)
}
