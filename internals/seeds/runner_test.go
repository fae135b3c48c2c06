package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statusModel "coursedesk_backend/internals/features/contacts/statuses/model"
	userModel "coursedesk_backend/internals/features/users/user/model"
	"coursedesk_backend/internals/testutil"
)

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)

	require.NoError(t, RunAllSeeds(db, "data_seed.json"))
	require.NoError(t, RunAllSeeds(db, "data_seed.json"))

	var users []userModel.UserModel
	require.NoError(t, db.Order("user_name").Find(&users).Error)
	require.Len(t, users, 2)
	assert.True(t, users[0].IsAdmin)
	assert.Equal(t, "counsellor", users[1].UserName)
	assert.True(t, users[1].HasPermission("Contact"))
	assert.False(t, users[1].HasPermission("Users"))

	var statuses []statusModel.StatusModel
	require.NoError(t, db.Find(&statuses).Error)
	assert.Len(t, statuses, len(statusModel.SystemStatuses)+4)
	system := 0
	for _, s := range statuses {
		if s.StatusIsSystem {
			system++
		}
	}
	assert.Equal(t, len(statusModel.SystemStatuses), system)
}

func TestSeedRejectsUnknownRole(t *testing.T) {
	db := testutil.NewDB(t)
	err := Seed(db, Data{Users: []UserSeed{{
		UserName: "x", Email: "x@y.z", Password: "secret1",
		Roles: []userModel.UserRole{{Name: "Nope"}},
	}}})
	assert.Error(t, err)
}
