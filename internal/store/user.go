package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timelyhq/timely/internal/session"
)

const userFile = "user.json"

func (st *Store) userPath() string {
	return filepath.Join(st.dir, userFile)
}

// SaveUser atomically writes the whole profile.
func (st *Store) SaveUser(u *session.User) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return err
	}

	tmp := st.userPath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write user profile: %w", err)
	}
	return os.Rename(tmp, st.userPath())
}

// LoadUser reads the whole profile. Returns os.ErrNotExist if no profile
// has been saved yet.
func (st *Store) LoadUser() (*session.User, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := os.ReadFile(st.userPath())
	if err != nil {
		return nil, err
	}

	var u session.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to parse user profile: %w", err)
	}
	return &u, nil
}

// GetOrCreateUser returns the saved profile, creating a default one on
// first run.
func (st *Store) GetOrCreateUser() (*session.User, error) {
	u, err := st.LoadUser()
	if err == nil {
		return u, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	created := session.NewUser("User", "")
	if err := st.SaveUser(&created); err != nil {
		return nil, err
	}
	return &created, nil
}
