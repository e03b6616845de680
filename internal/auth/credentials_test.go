package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func demoCredentials() []Credential {
	return []Credential{
		{Username: "admin", Password: "admin123", Role: RoleAdmin},
		{Username: "user", Password: "user123", Role: RoleUser},
	}
}

func TestLookup(t *testing.T) {
	store := NewCredentialStore(demoCredentials())

	c, ok := store.Lookup("admin")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, c.Role)

	_, ok = store.Lookup("nobody")
	assert.False(t, ok)
}

func TestAuthenticate_Success(t *testing.T) {
	store := NewCredentialStore(demoCredentials())

	c, err := store.Authenticate("user", "user123")
	assert.NoError(t, err)
	assert.Equal(t, "user", c.Username)
	assert.Equal(t, RoleUser, c.Role)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	store := NewCredentialStore(demoCredentials())

	_, err := store.Authenticate("user", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	store := NewCredentialStore(demoCredentials())

	_, err := store.Authenticate("nobody", "user123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIdentity_CanModify(t *testing.T) {
	admin := &Identity{Username: "admin", Role: RoleAdmin}
	user := &Identity{Username: "user", Role: RoleUser}

	assert.True(t, admin.CanModify("someone-else"))
	assert.True(t, user.CanModify("user"))
	assert.False(t, user.CanModify("someone-else"))
}
