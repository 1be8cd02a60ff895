package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Package storage keeps named credential profiles for the CLI. It never holds
// access or refresh tokens.

// Profile is a saved set of Authlink client credentials.
type Profile struct {
	Name         string    `json:"name"`
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	RedirectURI  string    `json:"redirect_uri"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Store persists profiles by name.
type Store interface {
	Close() error
	SaveProfile(p Profile) error
	Profile(name string) (Profile, bool, error)
	Profiles() ([]Profile, error)
	DeleteProfile(name string) error
}

var (
	// ErrEmptyName is returned for blank profile names.
	ErrEmptyName = errors.New("profile name is required")
	// ErrStoreDisabled is returned when writing to the no-op store.
	ErrStoreDisabled = errors.New("profile store is disabled")
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

// NormalizeName trims and lower-cases a profile name.
func NormalizeName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

type noopStore struct{}

func (noopStore) Close() error                          { return nil }
func (noopStore) SaveProfile(Profile) error             { return ErrStoreDisabled }
func (noopStore) Profile(string) (Profile, bool, error) { return Profile{}, false, nil }
func (noopStore) Profiles() ([]Profile, error)          { return nil, nil }
func (noopStore) DeleteProfile(string) error            { return nil }
