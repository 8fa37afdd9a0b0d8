package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/timelyhq/timely/internal/session"
)

const sessionsFile = "sessions.csv"

// Store persists completed sessions to an append-only record log and the
// user profile to user.json, all under one data directory. No in-memory
// cache is kept; every load re-reads from disk.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates the data directory if needed and returns a store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store is rooted at.
func (st *Store) Dir() string {
	return st.dir
}

func (st *Store) sessionsPath() string {
	return filepath.Join(st.dir, sessionsFile)
}

// Append writes one session record to the log, creating it with a header
// line if absent. The record is written in a single call so a failed write
// cannot leave a partial line in front of later appends.
func (st *Store) Append(s *session.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	path := st.sessionsPath()

	line := s.Record() + "\n"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		line = session.Header + "\n" + line
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open session log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append session %s: %w", s.ID, err)
	}
	return nil
}

// LoadAll reads every record from the log in file order. Malformed lines
// are dropped; a missing log is an empty history, not an error.
func (st *Store) LoadAll() ([]*session.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := os.ReadFile(st.sessionsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session log: %w", err)
	}

	var sessions []*session.Session
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" || (i == 0 && line == session.Header) {
			continue
		}
		s, err := session.ParseRecord(line)
		if err != nil {
			// keep the rest of the history readable
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// LoadForDate returns the sessions whose Date falls on the same calendar
// day as date.
func (st *Store) LoadForDate(date time.Time) ([]*session.Session, error) {
	all, err := st.LoadAll()
	if err != nil {
		return nil, err
	}
	day := session.DayOf(date)
	var matched []*session.Session
	for _, s := range all {
		if session.DayOf(s.Date).Equal(day) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (st *Store) LoadToday() ([]*session.Session, error) {
	return st.LoadForDate(time.Now())
}

// ExportCSV writes the given sessions as a fresh file in the record
// format. Relative names resolve under the data directory. Returns the
// destination path.
func (st *Store) ExportCSV(sessions []*session.Session, name string) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(st.dir, name)
	}

	var b strings.Builder
	b.WriteString(session.Header + "\n")
	for _, s := range sessions {
		b.WriteString(s.Record() + "\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to export %d sessions to %s: %w", len(sessions), path, err)
	}
	return path, nil
}
