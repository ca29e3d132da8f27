package session

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAccounts(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/state")

	// Missing record reads as an empty collection
	accounts, err := store.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)

	want := []Account{
		{Email: "a@b.com", Password: "secret1"},
		{Email: "c@d.com", Password: "secret2"},
	}
	require.NoError(t, store.SaveAccounts(want))

	got, err := store.LoadAccounts()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// The persisted layout is a fixed contract: a JSON array of
// {email,password} objects under netflix_users, and {email} under
// netflix_current_user.
func TestStoreLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/state")

	require.NoError(t, store.SaveAccounts([]Account{{Email: "a@b.com", Password: "secret1"}}))
	require.NoError(t, store.SaveSession(Session{Email: "a@b.com"}))

	users, err := afero.ReadFile(fs, "/state/netflix_users")
	require.NoError(t, err)
	var rawUsers []map[string]string
	require.NoError(t, json.Unmarshal(users, &rawUsers))
	assert.Equal(t, []map[string]string{{"email": "a@b.com", "password": "secret1"}}, rawUsers)

	current, err := afero.ReadFile(fs, "/state/netflix_current_user")
	require.NoError(t, err)
	var rawSession map[string]string
	require.NoError(t, json.Unmarshal(current, &rawSession))
	assert.Equal(t, map[string]string{"email": "a@b.com"}, rawSession)
}

func TestStoreSession(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/state")

	_, ok, err := store.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveSession(Session{Email: "a@b.com"}))

	sess, ok, err := store.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", sess.Email)

	// Clearing twice is fine
	require.NoError(t, store.ClearSession())
	require.NoError(t, store.ClearSession())

	_, ok, err = store.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreCorruptRecords(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/state")

	require.NoError(t, afero.WriteFile(fs, "/state/netflix_users", []byte("{not json"), 0o600))
	_, err := store.LoadAccounts()
	require.Error(t, err)
	assert.IsType(t, &StorageError{}, err)

	require.NoError(t, afero.WriteFile(fs, "/state/netflix_current_user", []byte("{not json"), 0o600))
	_, _, err = store.LoadSession()
	require.Error(t, err)
	assert.IsType(t, &StorageError{}, err)
}
