// SPDX-License-Identifier: MPL-2.0

//go:build linux

package installer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLockFilePathWith(t *testing.T) {
	t.Run("prefers XDG_RUNTIME_DIR", func(t *testing.T) {
		getenv := func(key string) string {
			if key == "XDG_RUNTIME_DIR" {
				return "/run/user/1000"
			}
			return ""
		}
		want := filepath.Join("/run/user/1000", lockFileName)
		if got := lockFilePathWith(getenv); got != want {
			t.Errorf("lockFilePathWith = %q, want %q", got, want)
		}
	})

	t.Run("falls back to temp dir", func(t *testing.T) {
		getenv := func(string) string { return "" }
		want := filepath.Join(os.TempDir(), lockFileName)
		if got := lockFilePathWith(getenv); got != want {
			t.Errorf("lockFilePathWith = %q, want %q", got, want)
		}
	})
}

func TestInstallLockAcquireRelease(t *testing.T) {
	// Point the lock at a private runtime dir so the test does not contend
	// with a real installer on the host.
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	lock, err := acquireInstallLock()
	if err != nil {
		t.Fatalf("acquireInstallLock returned error: %v", err)
	}
	lock.Release()

	// Release must be idempotent.
	lock.Release()

	// After release the lock must be immediately re-acquirable.
	lock2, err := acquireInstallLock()
	if err != nil {
		t.Fatalf("re-acquire after release failed: %v", err)
	}
	defer lock2.Release()
}

func TestInstallLockNilRelease(t *testing.T) {
	var lock *installLock
	lock.Release()
}
