package admin

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_UnmarshalMixedTypes(t *testing.T) {
	body := `[
		{"clerk_id": "u1", "is_active": 1},
		{"clerk_id": "u2", "is_active": true},
		{"clerk_id": "u3", "is_active": 0, "name": 12345, "email": null},
		{"clerk_id": "u4", "is_active": "yes", "role": ["admin"], "id": true},
		{"clerk_id": "u5", "is_active": "", "username": false},
		42,
		null
	]`

	var users []User
	require.NoError(t, json.Unmarshal([]byte(body), &users))
	require.Len(t, users, 7)

	assert.True(t, users[0].IsActive)
	assert.True(t, users[1].IsActive)
	assert.False(t, users[2].IsActive)
	assert.Equal(t, "12345", users[2].Name)
	assert.Empty(t, users[2].Email)
	assert.True(t, users[3].IsActive)
	assert.Empty(t, users[3].Role)
	assert.Equal(t, FlexibleID(""), users[3].ID)
	assert.False(t, users[4].IsActive)
	assert.Equal(t, "false", users[4].Username)
	assert.Equal(t, User{}, users[5])
	assert.Equal(t, User{}, users[6])
}

func TestUser_UnmarshalFallsBackToEmptyIdentity(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"name": {"first": "A"}, "email": 3}`), &u))

	assert.Empty(t, u.Name)
	assert.Equal(t, "3", u.Email)
	assert.Equal(t, "3", DisplayName(u))
}
