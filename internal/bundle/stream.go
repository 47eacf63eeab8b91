// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// DefaultChunkSize is the decompressed chunk size streamed to the sink.
// Image archives run to hundreds of megabytes; chunking keeps peak memory
// at one chunk and lets OS pipe backpressure pace the producer.
const DefaultChunkSize = 10240

// Stream decompresses the gzip archive at path and writes it to sink in
// chunks of at most chunkSize bytes, preserving exact byte order. The
// consumer reconstructs an image manifest from this stream, so reordering,
// duplication, or truncation would corrupt the result.
//
// Streaming stops at the first zero-length read; nothing is written after
// it. A decompression failure aborts the stream with a CorruptArchiveError
// before the offending chunk is written; a sink failure aborts it with a
// SinkWriteError.
func Stream(path string, sink io.Writer, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	f, err := os.Open(path)
	if err != nil {
		return &MetadataError{Path: path, Err: err}
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return &CorruptArchiveError{Path: path, Err: err}
	}
	defer zr.Close()

	buf := make([]byte, chunkSize)
	for {
		// Full chunks until the stream runs out; the final chunk may be
		// short. A truncated gzip stream surfaces as io.ErrUnexpectedEOF
		// (or ErrChecksum at the trailer), never as a clean io.EOF, so a
		// plain EOF here always means the archive ended intact.
		n, err := fillChunk(zr, buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return &CorruptArchiveError{Path: path, Err: err}
		}

		if n > 0 {
			if _, werr := sink.Write(buf[:n]); werr != nil {
				return &SinkWriteError{Err: werr}
			}
		}

		if err != nil {
			return nil
		}
	}
}

// fillChunk reads until buf is full or the reader reports an error. Unlike
// io.ReadFull it leaves io.EOF untouched, which Stream relies on to tell a
// finished archive apart from a truncated one.
func fillChunk(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// StreamTo is a convenience wrapper used by callers that hold a Resources:
// it streams the bundled archive with the given chunk size.
func (r *Resources) StreamTo(sink io.Writer, chunkSize int) error {
	if err := Stream(r.ArchivePath(), sink, chunkSize); err != nil {
		return fmt.Errorf("stream bundled archive: %w", err)
	}
	return nil
}
