// SPDX-License-Identifier: MPL-2.0

// Package container provides an abstraction layer for container engines
// (Docker/Podman) driven through their command-line interfaces.
//
// The Engine interface exposes the image-store operations caisson needs:
// querying the digest registered under a tag, loading an image archive
// through the engine's stdin, and removing images by identifier. Concrete
// engines resolve their binary via the OS search path at construction and
// share a BaseCLIEngine that builds arguments and executes commands through
// an injectable ExecCommandFunc, so tests can intercept every invocation.
package container
