// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"fmt"
	"runtime"

	"caisson/internal/platform"
)

// Engine defines the interface for container image-store operations.
type Engine interface {
	// Name returns the engine name (docker or podman)
	Name() string
	// Available checks if the engine is available on the system
	Available() bool
	// Version returns the engine version
	Version(ctx context.Context) (string, error)

	// ImageExists checks if an image reference resolves in the store
	ImageExists(ctx context.Context, ref string) (bool, error)
	// ImageDigest returns the identifier registered under ref, or "" when absent
	ImageDigest(ctx context.Context, ref string) (string, error)
	// OpenLoad starts the engine's load subcommand with an open stdin pipe
	OpenLoad(ctx context.Context) (*LoadSession, error)
	// RemoveImage removes an image by reference or identifier
	RemoveImage(ctx context.Context, ref string, force bool) error
}

// EngineType identifies the container engine type
type EngineType string

const (
	EngineTypePodman EngineType = "podman"
	EngineTypeDocker EngineType = "docker"
)

// DefaultEngineType returns the platform-appropriate engine preference:
// Podman on Linux (rootless-friendly, matches distro packaging), Docker
// elsewhere (podman on macOS/Windows runs inside a VM the bundle may not
// reach).
func DefaultEngineType() EngineType {
	if runtime.GOOS == platform.Linux {
		return EngineTypePodman
	}
	return EngineTypeDocker
}

// NewEngine creates a new container engine based on preference, falling back
// to the other engine when the preferred one is not available.
func NewEngine(preferredType EngineType) (Engine, error) {
	switch preferredType {
	case EngineTypePodman:
		engine := NewPodmanEngine()
		if engine.Available() {
			return engine, nil
		}
		dockerEngine := NewDockerEngine()
		if dockerEngine.Available() {
			return dockerEngine, nil
		}
		return nil, &EngineNotAvailableError{
			Engine: "podman",
			Reason: "podman is not installed or not accessible, and docker fallback is also not available",
		}

	case EngineTypeDocker:
		engine := NewDockerEngine()
		if engine.Available() {
			return engine, nil
		}
		podmanEngine := NewPodmanEngine()
		if podmanEngine.Available() {
			return podmanEngine, nil
		}
		return nil, &EngineNotAvailableError{
			Engine: "docker",
			Reason: "docker is not installed or not accessible, and podman fallback is also not available",
		}

	default:
		return nil, fmt.Errorf("unknown container engine type: %s", preferredType)
	}
}

// AutoDetectEngine tries the platform-preferred engine first, then the other.
func AutoDetectEngine() (Engine, error) {
	if engine, err := NewEngine(DefaultEngineType()); err == nil {
		return engine, nil
	}

	return nil, &EngineNotAvailableError{
		Engine: "any",
		Reason: "no container engine (podman or docker) is available on this system",
	}
}
