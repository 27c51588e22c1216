package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSetContextValues(t *testing.T) {
	ctx := context.Background()
	ctx = WithUserID(ctx, "user1")
	ctx = WithUsername(ctx, "alice")
	ctx = WithRole(ctx, "Admin")
	ctx = WithRequestID(ctx, "req1")

	userID, err := GetUserIDFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "user1", userID)

	username, err := GetUsernameFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)

	role, err := GetRoleFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Admin", role)

	reqID, err := GetRequestIDFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "req1", reqID)

	assert.True(t, HasUserID(ctx))
	assert.True(t, HasRole(ctx))
}

func TestGetContextValues_Missing(t *testing.T) {
	ctx := context.Background()

	_, err := GetUserIDFromContext(ctx)
	assert.Error(t, err)

	_, err = GetRoleFromContext(ctx)
	assert.Error(t, err)

	assert.False(t, HasUserID(ctx))
	assert.False(t, HasRole(ctx))
}

func TestOrDefaultHelpers(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "anonymous", GetUserIDOrDefault(ctx, "anonymous"))
	assert.Equal(t, "Guest", GetUsernameOrDefault(ctx, "Guest"))
	assert.Equal(t, "User", GetRoleOrDefault(ctx, "User"))

	ctx = WithUsername(ctx, "alice")
	assert.Equal(t, "alice", GetUsernameOrDefault(ctx, "Guest"))
}
