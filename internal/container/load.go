// SPDX-License-Identifier: MPL-2.0

package container

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// LoadSession represents a running "<engine> load" process whose standard
// input is connected to a pipe. A session is single-use: stream the archive
// bytes into Stdin, then call Wait exactly once.
type LoadSession struct {
	engine string
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	closed bool
}

// Stdin returns the writable end of the load process's input pipe.
// Writes block under OS pipe backpressure when the engine unpacks slower
// than the caller produces; that pacing is intentional and bounds memory.
func (s *LoadSession) Stdin() io.Writer {
	return s.stdin
}

// CloseStdin closes the input pipe, signaling end-of-archive to the load
// process. It is safe to call multiple times.
func (s *LoadSession) CloseStdin() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.stdin.Close()
}

// Wait closes the input pipe if still open and blocks until the load process
// exits. Registering a large image can take tens of seconds; the engine only
// reports success after the store is updated.
//
// A non-zero exit status is returned as a LoadExitError. The session must
// not be reused afterwards.
func (s *LoadSession) Wait() error {
	// Closing stdin is what lets the process observe end-of-stream and exit.
	closeErr := s.CloseStdin()

	if err := s.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &LoadExitError{Engine: s.engine, ExitCode: exitErr.ExitCode()}
		}
		return err
	}

	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return closeErr
	}
	return nil
}
