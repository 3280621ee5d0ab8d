package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/utils"
)

func hashFor(t *testing.T, plain string) string {
	t.Helper()
	h, err := utils.HashPassword(plain, 4) // bcrypt.MinCost keeps tests fast
	require.NoError(t, err)
	return h
}

func testOwner(t *testing.T) OwnerCredential {
	return OwnerCredential{Username: "admin", PasswordHash: hashFor(t, "admin")}
}

func TestAuthenticateOwner(t *testing.T) {
	owner := testOwner(t)

	// The owner credential works regardless of the customer collection.
	for _, customers := range [][]model.Customer{
		nil,
		{{ID: "c1", Username: "admin", PasswordHash: hashFor(t, "other"), Name: "Impostor"}},
	} {
		session, err := Authenticate(owner, customers, "admin", "admin")
		require.NoError(t, err)
		assert.Equal(t, model.RoleOwner, session.Role)
		assert.Equal(t, "admin", session.Username)
	}
}

func TestAuthenticateCustomer(t *testing.T) {
	owner := testOwner(t)
	customers := []model.Customer{
		{ID: "c1", Username: "alice", PasswordHash: hashFor(t, "secret"), Name: "Alice"},
		{ID: "c2", Username: "bob", PasswordHash: hashFor(t, "hunter2"), Name: "Bob"},
	}

	session, err := Authenticate(owner, customers, "bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, session.Role)
	assert.Equal(t, "bob", session.Username)
}

func TestAuthenticateFailures(t *testing.T) {
	owner := testOwner(t)
	customers := []model.Customer{
		{ID: "c1", Username: "alice", PasswordHash: hashFor(t, "secret"), Name: "Alice"},
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"unknown username", "nobody", "secret"},
		{"wrong password", "alice", "wrong"},
		{"username is case-sensitive", "Alice", "secret"},
		{"wrong owner password", "admin", "nope"},
		{"empty credentials", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Authenticate(owner, customers, tc.username, tc.password)
			// One generic error for every failure, no user-existence leak.
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
