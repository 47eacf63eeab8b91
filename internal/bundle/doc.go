// SPDX-License-Identifier: MPL-2.0

// Package bundle locates and reads the artifacts shipped alongside the
// caisson binary: the expected-image metadata (image-id.txt), the
// application version (version.txt), and the gzip-compressed container
// image archive (container.tar.gz).
//
// The archive can be streamed to any sink in bounded-size chunks via
// Stream, which decompresses on the fly so peak memory stays at one chunk
// regardless of archive size.
package bundle
