// SPDX-License-Identifier: MPL-2.0

//go:build !linux

package installer

import "sync"

// installMu serializes installs within this process on platforms without a
// usable flock. On macOS/Windows the engine runs inside a VM (podman
// machine/WSL2) whose filesystem a host-side flock does not reach, so an
// in-process mutex is the best available protection there.
var installMu sync.Mutex

// installLock is the non-Linux lock handle.
type installLock struct {
	released bool
}

// acquireInstallLock takes the in-process install mutex.
func acquireInstallLock() (*installLock, error) {
	installMu.Lock()
	return &installLock{}, nil
}

// Release unlocks the install mutex. It is safe to call multiple times.
func (l *installLock) Release() {
	if l == nil || l.released {
		return
	}
	l.released = true
	installMu.Unlock()
}
