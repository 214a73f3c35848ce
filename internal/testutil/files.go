package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"squad-maker-service/internal/domain/players"
)

// WriteRosterFile writes roster as JSON into a temp dir and returns the file path.
func WriteRosterFile(t *testing.T, roster []players.Player) string {
	t.Helper()
	data, err := json.Marshal(roster)
	if err != nil {
		t.Fatalf("failed to encode roster: %v", err)
	}
	path := filepath.Join(t.TempDir(), "players.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write roster %s: %v", path, err)
	}
	return path
}
