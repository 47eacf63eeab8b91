// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadAborted is the sentinel error wrapped by LoadAbortedError.
	ErrLoadAborted = errors.New("image load aborted")

	// ErrPostInstallMismatch is the sentinel error wrapped by PostInstallMismatchError.
	ErrPostInstallMismatch = errors.New("post-install image mismatch")
)

type (
	// LoadAbortedError is returned when the load process stopped consuming
	// the archive before it was fully streamed (closed pipe, killed
	// process). The store state is undefined and is re-checked on the next
	// EnsureInstalled call.
	LoadAbortedError struct {
		Err error
	}

	// PostInstallMismatchError is returned when the load process exited
	// cleanly but the store still does not hold the expected digest under
	// the tag, typically a bundle/engine mismatch.
	PostInstallMismatchError struct {
		Expected string
		Found    string
	}
)

// Error implements the error interface.
func (e *LoadAbortedError) Error() string {
	return fmt.Sprintf("image load aborted mid-stream: %v", e.Err)
}

// Unwrap returns ErrLoadAborted so callers can use errors.Is for programmatic detection.
func (e *LoadAbortedError) Unwrap() error { return ErrLoadAborted }

// Error implements the error interface.
func (e *PostInstallMismatchError) Error() string {
	found := e.Found
	if found == "" {
		found = "none"
	}
	return fmt.Sprintf("image store holds %s after load, expected %s", found, e.Expected)
}

// Unwrap returns ErrPostInstallMismatch so callers can use errors.Is for programmatic detection.
func (e *PostInstallMismatchError) Unwrap() error { return ErrPostInstallMismatch }
