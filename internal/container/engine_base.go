// SPDX-License-Identifier: MPL-2.0

package container

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// BaseCLIEngineOption configures a BaseCLIEngine.
	BaseCLIEngineOption func(*BaseCLIEngine)

	// BaseCLIEngine provides common implementation for CLI-based container
	// engines. Docker and Podman engines embed this struct. Methods that are
	// identical across all CLI engines (ImageDigest, OpenLoad, RemoveImage)
	// are implemented here; engine-specific methods (Available, Version,
	// ImageExists) remain on the concrete types.
	BaseCLIEngine struct {
		name        string // Engine name for error messages (e.g., "docker", "podman")
		binaryPath  string // Resolved at construction via exec.LookPath
		execCommand ExecCommandFunc
	}
)

// WithName sets the engine name used in error messages.
func WithName(name string) BaseCLIEngineOption {
	return func(e *BaseCLIEngine) {
		e.name = name
	}
}

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) BaseCLIEngineOption {
	return func(e *BaseCLIEngine) {
		e.execCommand = fn
	}
}

// NewBaseCLIEngine creates a new base engine with the given binary path.
func NewBaseCLIEngine(binaryPath string, opts ...BaseCLIEngineOption) *BaseCLIEngine {
	e := &BaseCLIEngine{
		binaryPath:  binaryPath,
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the engine name used in error messages.
func (e *BaseCLIEngine) Name() string {
	return e.name
}

// BinaryPath returns the path to the container engine binary.
func (e *BaseCLIEngine) BinaryPath() string {
	return e.binaryPath
}

// --- Image-store operations ---

// ImageDigest returns the image identifier registered under ref.
//
// Generated command: <binary> image list --format {{.ID}} <ref>
//
// An empty result means the image is not installed; that is a normal state,
// not an error. When the store unexpectedly holds several identifiers for
// the reference, the first listed is returned.
func (e *BaseCLIEngine) ImageDigest(ctx context.Context, ref string) (string, error) {
	out, err := e.RunCommandWithOutput(ctx, "image", "list", "--format", "{{.ID}}", ref)
	if err != nil {
		return "", err
	}

	digest, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(digest), nil
}

// OpenLoad starts the engine's load subcommand with its standard input
// connected to a pipe.
//
// Generated command: <binary> load
//
// The caller streams archive bytes through LoadSession.Stdin and then calls
// Wait, which closes the pipe and reports the process exit status.
func (e *BaseCLIEngine) OpenLoad(ctx context.Context) (*LoadSession, error) {
	cmd := e.CreateCommand(ctx, "load")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("open %s load stdin pipe: %w", e.name, err)
	}

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("start %s load: %w", e.name, err)
	}

	return &LoadSession{engine: e.name, cmd: cmd, stdin: stdin}, nil
}

// RemoveImage removes an image by reference or identifier.
//
// Generated command: <binary> rmi [--force] <ref>
func (e *BaseCLIEngine) RemoveImage(ctx context.Context, ref string, force bool) error {
	args := []string{"rmi"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, ref)
	return e.RunCommandStatus(ctx, args...)
}

// --- Command Execution ---

// RunCommandStatus executes a command and returns only the error status.
func (e *BaseCLIEngine) RunCommandStatus(ctx context.Context, args ...string) error {
	cmd := e.CreateCommand(ctx, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s %v failed: %w", e.binaryPath, args, err)
	}
	return nil
}

// RunCommandWithOutput executes a command with stdout captured to a buffer.
func (e *BaseCLIEngine) RunCommandWithOutput(ctx context.Context, args ...string) (string, error) {
	cmd := e.CreateCommand(ctx, args...)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command %s %v failed: %w", e.binaryPath, args, err)
	}

	return out.String(), nil
}

// CreateCommand creates an exec.Cmd for the given arguments.
// This is useful when the caller needs to customize stdin/stdout/stderr.
func (e *BaseCLIEngine) CreateCommand(ctx context.Context, args ...string) *exec.Cmd {
	return e.execCommand(ctx, e.binaryPath, args...)
}
