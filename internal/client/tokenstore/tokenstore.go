// Package tokenstore persists the bearer credential between console runs.
package tokenstore

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/config"
	"seva-console/internal/pkg/errs"
	"seva-console/internal/pkg/jwt"
)

var ErrNoStorage = errs.New("no persistent storage available")

// Backend is the raw persistence medium. Load returns "" when nothing is stored.
type Backend interface {
	Load() (string, error)
	Save(token string) error
	Remove() error
}

type Store struct {
	mu      sync.RWMutex
	backend Backend
	clock   clock.Clock
	logger  *slog.Logger
}

func New(backend Backend, clk clock.Clock, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		backend: backend,
		clock:   clk,
		logger:  logger,
	}
}

// NewFromConfig uses a file under the user config dir, or memory when no
// directory can be resolved.
func NewFromConfig(cfg config.SessionConfig, clk clock.Clock, logger *slog.Logger) *Store {
	path := cfg.TokenFile
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			if logger != nil {
				logger.Warn("token store falls back to memory", "error", err.Error())
			}
			return New(NewMemoryBackend(), clk, logger)
		}
		path = filepath.Join(dir, "seva-console", "token")
	}
	return New(NewFileBackend(path), clk, logger)
}

// Get never fails: unreadable storage reads as "no token".
func (s *Store) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, err := s.backend.Load()
	if err != nil {
		s.logger.Debug("token load failed", "error", err.Error())
		return "", false
	}
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errs.Wrap(s.backend.Save(token), "save token")
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errs.Wrap(s.backend.Remove(), "remove token")
}

func (s *Store) IsExpired(token string) bool {
	return jwt.IsExpired(token, s.clock.Now())
}

// Valid returns the stored token only when it is present and unexpired.
func (s *Store) Valid() (string, bool) {
	token, ok := s.Get()
	if !ok || s.IsExpired(token) {
		return "", false
	}
	return token, true
}

type MemoryBackend struct {
	mu    sync.Mutex
	token string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryBackend) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryBackend) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) Path() string {
	return f.path
}

func (f *FileBackend) Load() (string, error) {
	if f.path == "" {
		return "", ErrNoStorage
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errs.Wrapf(err, "read %s", f.path)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save replaces the file atomically via rename so readers never see a partial token.
func (f *FileBackend) Save(token string) error {
	if f.path == "" {
		return ErrNoStorage
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errs.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return errs.Wrap(err, "create temp token file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(token); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errs.Wrap(err, "write temp token file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errs.Wrap(err, "chmod temp token file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errs.Wrap(err, "close temp token file")
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return errs.Wrapf(err, "replace %s", f.path)
	}
	return nil
}

func (f *FileBackend) Remove() error {
	if f.path == "" {
		return ErrNoStorage
	}
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errs.Wrapf(err, "remove %s", f.path)
	}
	return nil
}
