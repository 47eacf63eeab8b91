// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for caisson.
//
// This package implements the Cobra command hierarchy: the root command,
// the image lifecycle commands (ensure, status), and supporting utilities
// (languages, docs).
package cmd
