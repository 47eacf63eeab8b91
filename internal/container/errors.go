// SPDX-License-Identifier: MPL-2.0

package container

import (
	"errors"
	"fmt"
)

var (
	// ErrEngineNotAvailable is the sentinel error wrapped by EngineNotAvailableError.
	ErrEngineNotAvailable = errors.New("container engine not available")

	// ErrLoadExit is the sentinel error wrapped by LoadExitError.
	ErrLoadExit = errors.New("image load process failed")
)

type (
	// EngineNotAvailableError is returned when no usable container engine
	// binary can be resolved on the host. This is an environment
	// precondition failure and is never retried.
	EngineNotAvailableError struct {
		Engine string
		Reason string
	}

	// LoadExitError is returned by LoadSession.Wait when the load process
	// exits with a non-zero status.
	LoadExitError struct {
		Engine   string
		ExitCode int
	}
)

// Error implements the error interface.
func (e *EngineNotAvailableError) Error() string {
	return fmt.Sprintf("container engine '%s' is not available: %s", e.Engine, e.Reason)
}

// Unwrap returns ErrEngineNotAvailable so callers can use errors.Is for programmatic detection.
func (e *EngineNotAvailableError) Unwrap() error { return ErrEngineNotAvailable }

// Error implements the error interface.
func (e *LoadExitError) Error() string {
	return fmt.Sprintf("%s load exited with status %d", e.Engine, e.ExitCode)
}

// Unwrap returns ErrLoadExit so callers can use errors.Is for programmatic detection.
func (e *LoadExitError) Unwrap() error { return ErrLoadExit }
