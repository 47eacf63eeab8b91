// SPDX-License-Identifier: MPL-2.0

//go:build linux

package installer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// lockFileName is the well-known lock file name shared by all caisson
// processes. The zero-byte lock file is harmless if orphaned: the kernel
// releases the flock automatically when the fd is closed (including on
// process crash).
const lockFileName = "caisson-install.lock"

// installLock holds a blocking exclusive flock on a well-known file path,
// serializing EnsureInstalled across processes. The engine CLI exposes no
// transaction over its image store, so two concurrent installers racing on
// the same tag could otherwise interleave remove/load.
//
// The lock file lives in $XDG_RUNTIME_DIR (per-user tmpfs, auto-cleaned)
// with a fallback to os.TempDir() when the env var is unset.
type installLock struct {
	file *os.File
}

// acquireInstallLock opens (or creates) the lock file and acquires a
// blocking exclusive flock. The call blocks until the lock is available.
func acquireInstallLock() (*installLock, error) {
	lockPath := lockFilePath()

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file %s: %w", lockPath, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("flock %s: %w", lockPath, err)
	}

	return &installLock{file: f}, nil
}

// Release unlocks the flock and closes the file descriptor. It is safe to
// call multiple times; subsequent calls are no-ops.
func (l *installLock) Release() {
	if l == nil || l.file == nil {
		return
	}
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		slog.Debug("flock unlock failed", "error", err)
	}
	if err := l.file.Close(); err != nil {
		slog.Debug("lock file close failed", "error", err)
	}
	l.file = nil
}

// lockFilePath returns the path for the cross-process lock file.
// Prefers $XDG_RUNTIME_DIR (per-user tmpfs), falls back to os.TempDir().
func lockFilePath() string {
	return lockFilePathWith(os.Getenv)
}

// lockFilePathWith returns the lock file path using the provided getenv
// function. This enables testing without mutating process-global
// environment state.
func lockFilePathWith(getenv func(string) string) string {
	dir := getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, lockFileName)
}
