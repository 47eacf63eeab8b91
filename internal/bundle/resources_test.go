// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExpectedImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "image-id.txt"), []byte("  abc123def456\n"), 0o644); err != nil {
		t.Fatalf("write image-id.txt: %v", err)
	}

	res := OpenResources(dir)
	expected, err := res.ExpectedImage()
	if err != nil {
		t.Fatalf("ExpectedImage returned error: %v", err)
	}

	if expected.Digest != "abc123def456" {
		t.Errorf("Digest = %q, want %q (whitespace must be trimmed)", expected.Digest, "abc123def456")
	}
	if expected.Tag != ImageTag {
		t.Errorf("Tag = %q, want %q", expected.Tag, ImageTag)
	}
}

func TestExpectedImageMissingMetadata(t *testing.T) {
	res := OpenResources(t.TempDir())

	_, err := res.ExpectedImage()
	if err == nil {
		t.Fatal("expected error for missing image-id.txt")
	}
	if !errors.Is(err, ErrMetadataUnreadable) {
		t.Errorf("expected ErrMetadataUnreadable, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "version.txt"), []byte("0.1.5\n"), 0o644); err != nil {
		t.Fatalf("write version.txt: %v", err)
	}

	if got := OpenResources(dir).Version(); got != "0.1.5" {
		t.Errorf("Version = %q, want %q", got, "0.1.5")
	}
}

func TestVersionFallback(t *testing.T) {
	// Dev builds ship no version.txt; the fallback keeps startup working.
	if got := OpenResources(t.TempDir()).Version(); got != "unknown" {
		t.Errorf("Version = %q, want %q", got, "unknown")
	}
}

func TestArchivePath(t *testing.T) {
	res := OpenResources("/opt/app/share")
	want := filepath.Join("/opt/app/share", "container.tar.gz")
	if got := res.ArchivePath(); got != want {
		t.Errorf("ArchivePath = %q, want %q", got, want)
	}
}

func TestOpenResourcesDefaultDir(t *testing.T) {
	// Empty dir selects the platform default; we only require it to be
	// non-empty and absolute.
	res := OpenResources("")
	if res.Dir() == "" {
		t.Fatal("default resources dir is empty")
	}
	if !filepath.IsAbs(res.Dir()) {
		t.Errorf("default resources dir %q is not absolute", res.Dir())
	}
}
