// SPDX-License-Identifier: MPL-2.0

// Package installer reconciles the container engine's image store with the
// bundled image: it verifies whether the expected image is already present,
// streams the bundled archive into the engine when it is absent or stale,
// and re-verifies after loading.
//
// The single entry point is Installer.EnsureInstalled. Classification of
// the store state (Matching/Missing/Stale) is a pure function over the
// expected and currently-installed digests; the store is queried fresh on
// every check because it is external mutable state.
package installer
