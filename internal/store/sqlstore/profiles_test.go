package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunukumikhil-byte/being-connected1/internal/store"
)

func TestGetProfileMissing(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user, _ := testStore.CreateUser("Alice", "A1", "p1")

	_, err := testStore.GetProfile(user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveProfileCreatesThenReplaces(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user, _ := testStore.CreateUser("Alice", "A1", "p1")

	first, err := testStore.SaveProfile(user.ID, store.ProfileFields{
		About:       "I like Go",
		LinkedIn:    "https://linkedin.com/in/alice",
		SkillsTeach: "go,sql",
		SkillsLearn: "rust",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := testStore.SaveProfile(user.ID, store.ProfileFields{
		About:       "I like Rust now",
		GitHub:      "https://github.com/alice",
		SkillsTeach: "rust",
	})
	require.NoError(t, err)

	// Still exactly one profile row for the user.
	assert.Equal(t, first.ID, second.ID)

	got, err := testStore.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "I like Rust now", got.About)
	assert.Equal(t, "https://github.com/alice", got.GitHub)
	assert.Equal(t, "rust", got.SkillsTeach)

	// The second save fully overrides the first, cleared fields included.
	assert.Equal(t, "", got.LinkedIn)
	assert.Equal(t, "", got.SkillsLearn)
}
