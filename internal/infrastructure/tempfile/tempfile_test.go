package tempfile

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestManager_Allocate(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	path, err := m.Allocate(".mp4")
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("Expected file in %s, got %s", dir, path)
	}
	if !strings.HasSuffix(path, ".mp4") {
		t.Errorf("Expected .mp4 extension, got %s", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "ytdl-") {
		t.Errorf("Expected ytdl- prefix, got %s", filepath.Base(path))
	}

	// The file must exist after allocation
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Allocated file does not exist: %v", err)
	}
}

func TestManager_Allocate_UniqueUnderConcurrency(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	const workers = 16

	var (
		mu    sync.Mutex
		paths = make(map[string]struct{}, workers)
		wg    sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path, err := m.Allocate(".bin")
			if err != nil {
				t.Errorf("Allocate failed: %v", err)
				return
			}
			mu.Lock()
			paths[path] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(paths) != workers {
		t.Errorf("Expected %d unique paths, got %d", workers, len(paths))
	}
}

func TestManager_Release_Idempotent(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	path, err := m.Allocate(".bin")
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if err := m.Release(path); err != nil {
		t.Errorf("First Release failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected file to be removed")
	}

	// Releasing an already-absent file is not an error
	if err := m.Release(path); err != nil {
		t.Errorf("Second Release failed: %v", err)
	}

	// Empty path is a no-op
	if err := m.Release(""); err != nil {
		t.Errorf("Release of empty path failed: %v", err)
	}
}

func TestNewManager_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tmp")

	m, err := NewManager(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if m.Dir() != dir {
		t.Errorf("Expected dir %s, got %s", dir, m.Dir())
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected directory to be created: %v", err)
	}
}
