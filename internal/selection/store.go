package selection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"squad-maker-service/internal/logging"
)

// DefaultFileName is the file the selection is persisted under.
const DefaultFileName = "selected-players.json"

// Store persists the set of selected player ids.
type Store interface {
	Load() []string
	Save(ids []string) error
}

// FSStore keeps the selection as a JSON array of ids on disk.
type FSStore struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFSStore constructs a store writing to path. A directory path gets DefaultFileName appended.
func NewFSStore(path string, logger *slog.Logger) *FSStore {
	if path == "" {
		path = DefaultFileName
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}
	return &FSStore{path: path, logger: logger}
}

// Path exposes the backing file (primarily for testing).
func (s *FSStore) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Load returns the persisted ids. A missing or unreadable file yields an empty selection.
func (s *FSStore) Load() []string {
	if s == nil {
		return []string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Warn(s.logger, "selection read failed", "path", s.path, "error", err)
		}
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		logging.Warn(s.logger, "selection file corrupt, ignoring", "path", s.path, "error", err)
		return []string{}
	}
	return dedupe(ids)
}

// Save atomically replaces the persisted selection.
func (s *FSStore) Save(ids []string) error {
	if s == nil {
		return fmt.Errorf("selection store not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(dedupe(ids), "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
