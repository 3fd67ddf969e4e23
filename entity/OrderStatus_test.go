package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, name := range []string{"Pending", "pending", "PENDING", " pending "} {
		got, ok := ParseOrderStatus(name)
		assert.True(t, ok, name)
		assert.Equal(t, StatusPending, got)
	}

	_, ok := ParseOrderStatus("Delivered")
	assert.False(t, ok)
	_, ok = ParseOrderStatus("")
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	got, ok := ParseRole("superadmin")
	assert.True(t, ok)
	assert.Equal(t, RoleSuperAdmin, got)

	_, ok = ParseRole("owner")
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusReady, false}, // no skipping states
		{StatusConfirmed, StatusPreparing, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusCancelled, false}, // too late to cancel
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusReady.Terminal())
}
