// Package storage owns the on-disk lifecycle of report files: archiving the
// prior version, writing the new one, verifying the write, and rolling back
// to the most recent archive when verification fails.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/balkashynov/taskreport/internal/report"
)

// Result describes how a save ended.
type Result struct {
	State        SaveState
	ArchivedAs   string // archival name given to the prior report, if any
	RestoredFrom string // archival name renamed back during rollback, if any
}

// Store is an explicit handle to one report directory. All filenames it
// produces live directly inside that directory.
type Store struct {
	dir string
	now func() time.Time
	out io.Writer

	// writeFile is swapped in tests to simulate failing or torn writes.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// New creates the report directory if it does not exist and returns a
// handle to it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &Store{
		dir:       dir,
		now:       time.Now,
		out:       os.Stdout,
		writeFile: os.WriteFile,
	}, nil
}

// Dir returns the directory this store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Save makes text the current report for username.
//
// An existing current report is archived first under a name carrying the
// timestamp found in its own header. The new text is then written and read
// back; if the read-back does not match (or the file is missing), the most
// recent archival report is restored as the current one. A write error is
// logged, not returned: the verify/rollback path decides the outcome.
func (s *Store) Save(username, text string) (Result, error) {
	username = SanitizeUsername(username)
	res := Result{State: StateNoPriorReport}
	current := filepath.Join(s.dir, currentName(username))

	prior, err := os.ReadFile(current)
	if err != nil && !os.IsNotExist(err) {
		// The prior report exists but cannot be read; overwriting it here
		// would lose the last known good version without an archive.
		return res, fmt.Errorf("failed to read prior report: %w", err)
	}
	if err == nil {
		res.State = StatePriorReportAccessible
		archived, err := s.archive(current, username, prior)
		if err != nil {
			return res, err
		}
		res.ArchivedAs = archived
		res.State = StateArchived
	}

	if err := s.writeFile(current, []byte(text), 0644); err != nil {
		fmt.Fprintf(s.out, "Error writing report file %s: %v\n", current, err)
	} else {
		res.State = StateWritten
	}

	switch verify(current, text) {
	case verifyOK:
		res.State = StateVerified
		return res, nil
	case verifyMismatch:
		if err := os.Remove(current); err != nil {
			res.State = StateFailed
			return res, fmt.Errorf("failed to remove corrupt report: %w", err)
		}
	case verifyAbsent:
		// The write never landed; nothing to clean up.
	}

	last, ok := s.lastArchive(username)
	if !ok {
		res.State = StateFailed
		return res, nil
	}
	if err := os.Rename(filepath.Join(s.dir, last), current); err != nil {
		res.State = StateFailed
		return res, fmt.Errorf("failed to restore archived report: %w", err)
	}
	res.RestoredFrom = last
	res.State = StateRolledBack
	return res, nil
}

// archive renames the current report to its archival name, stamped with the
// generation timestamp found in its content. Content without a recognizable
// timestamp is stamped with the current time so it survives under a
// well-formed name.
func (s *Store) archive(current, username string, content []byte) (string, error) {
	stamp, ok := report.ExtractTimestamp(string(content))
	if !ok {
		stamp = s.now().Format(StampLayout)
	}
	archived := archiveName(username, stamp)
	if err := os.Rename(current, filepath.Join(s.dir, archived)); err != nil {
		return "", fmt.Errorf("failed to archive prior report: %w", err)
	}
	return archived, nil
}

// lastArchive scans the directory for archival reports belonging to
// username and returns the one whose embedded timestamp is nearest to now.
func (s *Store) lastArchive(username string) (string, bool) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", false
	}

	prefix := "old_" + username + "_"
	now := s.now()

	var best string
	var bestDiff time.Duration
	found := false
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".txt") {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".txt")
		t, err := time.ParseInLocation(StampLayout, stamp, time.Local)
		if err != nil {
			continue
		}
		diff := now.Sub(t)
		if !found || diff < bestDiff {
			best = name
			bestDiff = diff
			found = true
		}
	}
	return best, found
}

type verifyResult int

const (
	verifyAbsent verifyResult = iota
	verifyOK
	verifyMismatch
)

// verify re-reads the just-written file and compares it byte for byte
// against the text held in memory.
func verify(path string, want string) verifyResult {
	got, err := os.ReadFile(path)
	if err != nil {
		return verifyAbsent
	}
	if bytes.Equal(got, []byte(want)) {
		return verifyOK
	}
	return verifyMismatch
}
