// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"errors"
	"fmt"
)

var (
	// ErrMetadataUnreadable is the sentinel error wrapped by MetadataError.
	ErrMetadataUnreadable = errors.New("bundle metadata unreadable")

	// ErrArchiveCorrupt is the sentinel error wrapped by CorruptArchiveError.
	ErrArchiveCorrupt = errors.New("archive corrupt")

	// ErrSinkWrite is the sentinel error wrapped by SinkWriteError.
	ErrSinkWrite = errors.New("sink write failed")
)

type (
	// MetadataError is returned when a bundled metadata file cannot be read.
	// A broken bundle is fatal: without the expected image identifier the
	// installer cannot know what it should have installed.
	MetadataError struct {
		Path string
		Err  error
	}

	// CorruptArchiveError is returned when decompression fails partway
	// through the bundled archive (truncated download, disk corruption).
	CorruptArchiveError struct {
		Path string
		Err  error
	}

	// SinkWriteError is returned when the stream destination stops accepting
	// bytes, typically because the consuming process closed its end of the
	// pipe before the archive was fully written.
	SinkWriteError struct {
		Err error
	}
)

// Error implements the error interface.
func (e *MetadataError) Error() string {
	return fmt.Sprintf("read bundle metadata %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrMetadataUnreadable so callers can use errors.Is for programmatic detection.
func (e *MetadataError) Unwrap() error { return ErrMetadataUnreadable }

// Error implements the error interface.
func (e *CorruptArchiveError) Error() string {
	return fmt.Sprintf("decompress archive %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrArchiveCorrupt so callers can use errors.Is for programmatic detection.
func (e *CorruptArchiveError) Unwrap() error { return ErrArchiveCorrupt }

// Error implements the error interface.
func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("write archive chunk to sink: %v", e.Err)
}

// Unwrap returns ErrSinkWrite so callers can use errors.Is for programmatic detection.
func (e *SinkWriteError) Unwrap() error { return ErrSinkWrite }
