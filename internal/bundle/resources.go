// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"caisson/internal/platform"
)

const (
	// ImageTag is the stable name under which the bundled image is
	// registered in the engine's store. After reconciliation at most one
	// digest is associated with it.
	ImageTag = "caisson.local/sandbox"

	// Bundled artifact file names.
	imageIDFile = "image-id.txt"
	versionFile = "version.txt"
	archiveFile = "container.tar.gz"
)

// ExpectedImageDescriptor identifies the image the bundle expects to be
// installed. Digest is read once from the bundle and is immutable for the
// process lifetime.
type ExpectedImageDescriptor struct {
	Tag    string
	Digest string
}

// Resources resolves paths to the artifacts installed alongside the binary.
type Resources struct {
	dir string
}

// OpenResources returns a Resources rooted at dir, or at the
// platform-default share directory when dir is empty.
func OpenResources(dir string) *Resources {
	if dir == "" {
		dir = defaultDir()
	}
	return &Resources{dir: dir}
}

// defaultDir returns the platform-appropriate resources directory:
// macOS app bundles keep resources two levels above the binary, Windows
// installs them next to the executable, and Linux uses the system share
// prefix.
func defaultDir() string {
	switch runtime.GOOS {
	case platform.Darwin:
		if exe, err := os.Executable(); err == nil {
			return filepath.Join(filepath.Dir(exe), "..", "Resources", "share")
		}
	case platform.Windows:
		if exe, err := os.Executable(); err == nil {
			return filepath.Join(filepath.Dir(exe), "share")
		}
	}
	return filepath.Join("/usr", "share", "caisson")
}

// Dir returns the resolved resources directory.
func (r *Resources) Dir() string {
	return r.dir
}

// Path returns the path of a named resource inside the bundle.
func (r *Resources) Path(name string) string {
	return filepath.Join(r.dir, name)
}

// ArchivePath returns the path of the compressed container image archive.
func (r *Resources) ArchivePath() string {
	return r.Path(archiveFile)
}

// ExpectedImage reads the bundled image metadata. The returned descriptor
// carries the fixed application tag and the digest the store must hold
// after installation.
func (r *Resources) ExpectedImage() (ExpectedImageDescriptor, error) {
	path := r.Path(imageIDFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return ExpectedImageDescriptor{}, &MetadataError{Path: path, Err: err}
	}

	return ExpectedImageDescriptor{
		Tag:    ImageTag,
		Digest: strings.TrimSpace(string(data)),
	}, nil
}

// Version reads the bundled application version. In dev builds the file is
// absent and "unknown" is returned; nothing downstream needs a real version
// to function.
func (r *Resources) Version() string {
	data, err := os.ReadFile(r.Path(versionFile))
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(data))
}
