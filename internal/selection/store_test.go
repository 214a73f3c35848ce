package selection

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"squad-maker-service/internal/testutil"
)

func TestFSStoreSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := NewFSStore(filepath.Join(dir, "nested", DefaultFileName), nil)

	if err := s.Save([]string{"3", "1", "3", "", "7"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := s.Load()
	want := []string{"3", "1", "7"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file cleaned up, got %v", err)
	}
}

func TestFSStoreSaveOverwrites(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), DefaultFileName), nil)
	if err := s.Save([]string{"1", "2"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Save([]string{"2"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Save([]string{"2"}); err != nil {
		t.Fatalf("unchanged save failed: %v", err)
	}
	if got := s.Load(); len(got) != 1 || got[0] != "2" {
		t.Fatalf("expected [2], got %v", got)
	}
}

func TestFSStoreSaveEmptyWritesArray(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), DefaultFileName), nil)
	if err := s.Save(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("expected file, got %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", data)
	}
}

func TestFSStoreLoadMissingFile(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), "absent.json"), nil)
	got := s.Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestFSStoreLoadCorruptFileLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	logger, buf := testutil.NewBufferLogger()
	s := NewFSStore(path, logger)

	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
	if !strings.Contains(buf.String(), "selection file corrupt") {
		t.Fatalf("expected corrupt warning, got %s", buf.String())
	}
}

func TestNewFSStoreDirectoryPath(t *testing.T) {
	dir := t.TempDir()
	s := NewFSStore(dir, nil)
	if s.Path() != filepath.Join(dir, DefaultFileName) {
		t.Fatalf("expected default file name appended, got %s", s.Path())
	}
	if NewFSStore("", nil).Path() != DefaultFileName {
		t.Fatalf("expected default file name for empty path")
	}
}

func TestNilFSStore(t *testing.T) {
	var s *FSStore
	if err := s.Save([]string{"1"}); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("expected empty selection for nil store")
	}
	if s.Path() != "" {
		t.Fatalf("expected empty path for nil store")
	}
}
