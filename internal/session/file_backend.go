package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/medichat/medichat-client/internal/domain"
)

// FileBackend persists the session as a JSON file, the terminal analog of
// browser local storage. Layout:
//
//	~/.medichat/
//	  └── session.json
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// NewFileBackend creates a file-based session backend. If baseDir is empty,
// uses ~/.medichat.
func NewFileBackend(baseDir string) (*FileBackend, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".medichat")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	return &FileBackend{path: filepath.Join(baseDir, "session.json")}, nil
}

// Save writes the session, replacing any previous one
func (b *FileBackend) Save(s domain.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	// Write-then-rename so a crash never leaves a truncated file
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

// Load reads the persisted session. The second return value is false when
// no session has been saved.
func (b *FileBackend) Load() (domain.Session, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("read session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return s, s.Token != "", nil
}

// Clear removes the persisted session
func (b *FileBackend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend
func (b *FileBackend) Close() error {
	return nil
}
