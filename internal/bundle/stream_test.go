// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// writeArchive gzips content into a temp file and returns its path.
func writeArchive(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "container.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if _, err := zw.Write(content); err != nil {
		t.Fatalf("write archive: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return path
}

// chunkRecorder is a sink that records every Write call.
type chunkRecorder struct {
	buf    bytes.Buffer
	writes []int
}

func (r *chunkRecorder) Write(p []byte) (int, error) {
	r.writes = append(r.writes, len(p))
	return r.buf.Write(p)
}

// failingSink rejects every write.
type failingSink struct{}

func (failingSink) Write(p []byte) (int, error) {
	return 0, errors.New("pipe closed")
}

// repeat produces deterministic, non-uniform content of length n.
func repeat(n int) []byte {
	content := make([]byte, n)
	for i := range content {
		content[i] = byte(i % 251)
	}
	return content
}

func TestStreamFidelity(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		chunkSize  int
		wantWrites int
	}{
		{name: "partial final chunk", size: 25000, chunkSize: 4096, wantWrites: 7},
		{name: "exact multiple of chunk size", size: 8192, chunkSize: 1024, wantWrites: 8},
		{name: "single short chunk", size: 100, chunkSize: 4096, wantWrites: 1},
		{name: "content equals one chunk", size: 4096, chunkSize: 4096, wantWrites: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := repeat(tt.size)
			path := writeArchive(t, content)

			sink := &chunkRecorder{}
			if err := Stream(path, sink, tt.chunkSize); err != nil {
				t.Fatalf("Stream returned error: %v", err)
			}

			if !bytes.Equal(sink.buf.Bytes(), content) {
				t.Error("streamed bytes do not match decompressed content")
			}
			if len(sink.writes) != tt.wantWrites {
				t.Errorf("expected %d writes, got %d (%v)", tt.wantWrites, len(sink.writes), sink.writes)
			}
			// All but the last write must be full chunks, in order.
			for i, n := range sink.writes[:len(sink.writes)-1] {
				if n != tt.chunkSize {
					t.Errorf("write %d has size %d, want full chunk %d", i, n, tt.chunkSize)
				}
			}
		})
	}
}

func TestStreamEmptyArchive(t *testing.T) {
	path := writeArchive(t, nil)

	sink := &chunkRecorder{}
	if err := Stream(path, sink, 4096); err != nil {
		t.Fatalf("Stream returned error: %v", err)
	}
	if len(sink.writes) != 0 {
		t.Errorf("expected no writes for empty archive, got %d", len(sink.writes))
	}
}

func TestStreamDefaultChunkSize(t *testing.T) {
	content := repeat(DefaultChunkSize + 1)
	path := writeArchive(t, content)

	sink := &chunkRecorder{}
	if err := Stream(path, sink, 0); err != nil {
		t.Fatalf("Stream returned error: %v", err)
	}
	if len(sink.writes) != 2 {
		t.Errorf("expected 2 writes with default chunk size, got %d", len(sink.writes))
	}
	if sink.writes[0] != DefaultChunkSize {
		t.Errorf("first chunk = %d, want %d", sink.writes[0], DefaultChunkSize)
	}
}

func TestStreamTruncatedArchive(t *testing.T) {
	content := repeat(100000)
	path := writeArchive(t, content)

	// Cut the compressed file in half to simulate a truncated bundle.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read archive: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)/2], 0o644); err != nil {
		t.Fatalf("truncate archive: %v", err)
	}

	sink := &chunkRecorder{}
	err = Stream(path, sink, 4096)
	if err == nil {
		t.Fatal("expected error for truncated archive")
	}
	if !errors.Is(err, ErrArchiveCorrupt) {
		t.Errorf("expected ErrArchiveCorrupt, got %v", err)
	}

	// Whatever made it to the sink must be a prefix of the content, with
	// nothing written past the corruption point.
	if got := sink.buf.Bytes(); !bytes.HasPrefix(content, got) {
		t.Error("sink received bytes that are not a prefix of the content")
	}
}

func TestStreamNotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "container.tar.gz")
	if err := os.WriteFile(path, []byte("plain text, not gzip"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	err := Stream(path, &chunkRecorder{}, 4096)
	if !errors.Is(err, ErrArchiveCorrupt) {
		t.Errorf("expected ErrArchiveCorrupt, got %v", err)
	}
}

func TestStreamMissingArchive(t *testing.T) {
	err := Stream(filepath.Join(t.TempDir(), "nope.tar.gz"), &chunkRecorder{}, 4096)
	if !errors.Is(err, ErrMetadataUnreadable) {
		t.Errorf("expected ErrMetadataUnreadable, got %v", err)
	}
}

func TestStreamSinkFailure(t *testing.T) {
	path := writeArchive(t, repeat(5000))

	err := Stream(path, failingSink{}, 1024)
	if !errors.Is(err, ErrSinkWrite) {
		t.Errorf("expected ErrSinkWrite, got %v", err)
	}
}
