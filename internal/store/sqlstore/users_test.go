package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunukumikhil-byte/being-connected1/internal/store"
)

func TestCreateUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user, err := testStore.CreateUser("Alice", "A1", "p1")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "A1", user.ApplicationNumber)

	// Duplicate application number fails without creating a record.
	_, err = testStore.CreateUser("Someone Else", "A1", "other")
	assert.ErrorIs(t, err, store.ErrDuplicateApplicationNumber)

	users, err := testStore.ListOtherUsers(0)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGetUserByCredentials(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	created, err := testStore.CreateUser("Alice", "A1", "p1")
	require.NoError(t, err)

	user, err := testStore.GetUserByCredentials("A1", "p1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "Alice", user.Name)

	// Matching is exact equality on both fields.
	_, err = testStore.GetUserByCredentials("A1", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	_, err = testStore.GetUserByCredentials("nope", "p1")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestGetUserByID(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	created, err := testStore.CreateUser("Alice", "A1", "p1")
	require.NoError(t, err)

	user, err := testStore.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = testStore.GetUserByID(999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListOtherUsers(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	alice, _ := testStore.CreateUser("Alice", "A1", "p1")
	bob, _ := testStore.CreateUser("Bob", "B1", "p2")
	carol, _ := testStore.CreateUser("Carol", "C1", "p3")

	users, err := testStore.ListOtherUsers(bob.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Insertion order, caller excluded.
	assert.Equal(t, alice.ID, users[0].ID)
	assert.Equal(t, carol.ID, users[1].ID)
	for _, u := range users {
		assert.NotEqual(t, bob.ID, u.ID)
	}
}
