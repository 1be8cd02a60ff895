package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStoreSavesAndLoadsProfiles(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })

	store, err := NewStore("bbolt", filepath.Join(t.TempDir(), "nested", "profiles.db"))
	require.NoError(t, err)
	defer store.Close()

	_, found, err := store.Profile("prod")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SaveProfile(Profile{
		Name:         " Prod ",
		ClientID:     "id-1",
		ClientSecret: "secret-1",
		RedirectURI:  "https://app.example/cb",
	}))
	require.NoError(t, store.SaveProfile(Profile{Name: "dev", ClientID: "id-2"}))

	p, found, err := store.Profile("PROD")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, Profile{
		Name:         "prod",
		ClientID:     "id-1",
		ClientSecret: "secret-1",
		RedirectURI:  "https://app.example/cb",
		UpdatedAt:    now,
	}, p)

	all, err := store.Profiles()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "dev", all[0].Name)
	assert.Equal(t, "prod", all[1].Name)

	require.NoError(t, store.DeleteProfile("prod"))
	_, found, err = store.Profile("prod")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, store.DeleteProfile("prod"))
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.db")

	store, err := NewStore("bbolt", path)
	require.NoError(t, err)
	require.NoError(t, store.SaveProfile(Profile{Name: "ci", ClientID: "id"}))
	require.NoError(t, store.Close())

	store, err = NewStore("bbolt", path)
	require.NoError(t, err)
	defer store.Close()

	p, found, err := store.Profile("ci")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "id", p.ClientID)
}

func TestBoltStoreRejectsEmptyNames(t *testing.T) {
	store, err := NewStore("bbolt", filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	defer store.Close()

	assert.ErrorIs(t, store.SaveProfile(Profile{Name: "  "}), ErrEmptyName)
	_, _, err = store.Profile("")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.ErrorIs(t, store.DeleteProfile(""), ErrEmptyName)
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "")
	require.NoError(t, err)

	assert.ErrorIs(t, store.SaveProfile(Profile{Name: "x"}), ErrStoreDisabled)
	_, found, err := store.Profile("x")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewStoreValidatesConfig(t *testing.T) {
	_, err := NewStore("bbolt", " ")
	assert.Error(t, err)
	_, err = NewStore("redis", "x")
	assert.Error(t, err)
}
