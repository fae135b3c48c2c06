package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "coursedesk_backend/internals/features/users/auth/model"
	helpersAuth "coursedesk_backend/internals/helpers/auth"
	"coursedesk_backend/internals/testutil"
)

func TestCleanupPurgesExpiredRows(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, testutil.UserOpts{})
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, helpersAuth.Add(ctx, db, "old-token", "s", now.Add(-time.Hour)))
	require.NoError(t, helpersAuth.Add(ctx, db, "live-token", "s", now.Add(time.Hour)))

	revokedAt := now.Add(-time.Minute)
	require.NoError(t, db.Create(&[]authModel.RefreshTokenModel{
		{UserID: u.ID, Token: "a", ExpiresAt: now.Add(-time.Hour)},
		{UserID: u.ID, Token: "b", ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt},
		{UserID: u.ID, Token: "c", ExpiresAt: now.Add(time.Hour)},
	}).Error)

	Cleanup(ctx, db, now)

	var blacklist []authModel.TokenBlacklist
	require.NoError(t, db.Find(&blacklist).Error)
	require.Len(t, blacklist, 1)
	assert.Equal(t, helpersAuth.HMACHex("live-token", "s"), blacklist[0].Token)

	var tokens []authModel.RefreshTokenModel
	require.NoError(t, db.Find(&tokens).Error)
	require.Len(t, tokens, 1)
	assert.Equal(t, "c", tokens[0].Token)

	blocked, err := helpersAuth.IsBlacklisted(ctx, db, "live-token", "s")
	require.NoError(t, err)
	assert.True(t, blocked)
}
