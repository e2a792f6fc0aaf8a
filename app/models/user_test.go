package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	user, err := CreateUser("ana", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, ROLE_USER, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserRejectsShortCredentials(t *testing.T) {
	_, err := CreateUser("ab", "s3cret-pass")
	assert.Error(t, err)

	_, err = CreateUser("ana", "short")
	assert.Error(t, err)
}

func TestSetPassword(t *testing.T) {
	user := &User{Username: "ana", Role: ROLE_USER}
	require.NoError(t, user.SetPassword("s3cret-pass"))
	assert.True(t, user.CheckPassword("s3cret-pass"))

	require.NoError(t, user.SetPassword("another-pass"))
	assert.False(t, user.CheckPassword("s3cret-pass"))
	assert.True(t, user.CheckPassword("another-pass"))
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", "not-a-hash"))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: ROLE_ADMIN}).IsAdmin())
	assert.False(t, (&User{Role: ROLE_USER}).IsAdmin())
}
