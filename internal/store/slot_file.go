// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const (
	lockTimeout       = 3 * time.Second
	lockRetryInterval = 100 * time.Millisecond
)

// fileSlot stores the blob in a single file. Every access takes a file lock
// at path+".lock" so two processes never interleave a write, and writes go
// through a temp file and rename so readers never see a partial blob.
type fileSlot struct {
	path     string
	fileLock *flock.Flock
	logger   *logger.Logger
}

// NewFileSlot returns a file-backed [Slot]. The parent directory is created
// on first Save.
func NewFileSlot(path string, log *logger.Logger) Slot {
	return &fileSlot{
		path:     path,
		fileLock: flock.New(path + ".lock"),
		logger:   log,
	}
}

func (s *fileSlot) Load(ctx context.Context) ([]byte, error) {
	// no directory means nothing was ever written, and no lock file can exist
	if _, err := os.Stat(filepath.Dir(s.path)); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	unlock, err := s.lock(ctx, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "fileSlot.Load").Str("path", s.path).Msg("failed to read slot file")
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return data, nil
}

func (s *fileSlot) Save(ctx context.Context, data []byte) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	unlock, err := s.lock(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		s.logger.Err(err).Str("func", "fileSlot.Save").Str("path", tmpFile).Msg("failed to write temp file")
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		s.logger.Err(err).Str("func", "fileSlot.Save").Str("path", s.path).Msg("failed to replace slot file")
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (s *fileSlot) Clear(ctx context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	unlock, err := s.lock(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove slot file: %w", err)
	}
	return nil
}

// lock takes the shared (read) or exclusive (write) file lock, retrying
// until lockTimeout.
func (s *fileSlot) lock(ctx context.Context, exclusive bool) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = s.fileLock.TryLockContext(ctx, lockRetryInterval)
	} else {
		locked, err = s.fileLock.TryRLockContext(ctx, lockRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, errors.New("could not acquire file lock")
	}

	return func() { _ = s.fileLock.Unlock() }, nil
}

func (s *fileSlot) ensureDir() error {
	dir := filepath.Dir(s.path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}
	return nil
}
