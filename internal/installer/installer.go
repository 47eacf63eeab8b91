// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"caisson/internal/bundle"
	"caisson/internal/container"
)

type (
	// Option configures an Installer.
	Option func(*Installer)

	// Installer composes the container engine and the bundle resources to
	// keep exactly one correctly-tagged copy of the bundled image in the
	// engine's store.
	Installer struct {
		engine    container.Engine
		res       *bundle.Resources
		chunkSize int
	}
)

// WithChunkSize overrides the streaming chunk size. Values <= 0 keep the
// default.
func WithChunkSize(n int) Option {
	return func(in *Installer) {
		if n > 0 {
			in.chunkSize = n
		}
	}
}

// New creates an Installer over the given engine and bundle resources.
func New(engine container.Engine, res *bundle.Resources, opts ...Option) *Installer {
	in := &Installer{
		engine:    engine,
		res:       res,
		chunkSize: bundle.DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Verify queries the store and classifies it against the bundled
// expectation without mutating anything. The store is external mutable
// state, so the query is performed fresh on every call.
func (in *Installer) Verify(ctx context.Context) (Classification, bundle.ExpectedImageDescriptor, error) {
	class, expected, _, err := in.check(ctx)
	return class, expected, err
}

// check reads the bundled expectation and performs one fresh store query,
// returning the classification together with the digest the store reported.
func (in *Installer) check(ctx context.Context) (Classification, bundle.ExpectedImageDescriptor, string, error) {
	expected, err := in.res.ExpectedImage()
	if err != nil {
		return Missing, bundle.ExpectedImageDescriptor{}, "", err
	}

	current, err := in.engine.ImageDigest(ctx, expected.Tag)
	if err != nil {
		return Missing, expected, "", fmt.Errorf("query image store for %s: %w", expected.Tag, err)
	}

	return Classify(expected.Digest, current), expected, current, nil
}

// EnsureInstalled makes sure the engine's store holds the bundled image
// under the application tag with the expected digest.
//
// The call is synchronous and performs at most one load. A stale image
// (same tag, different digest) is force-removed best-effort before loading;
// removal failure is logged and tolerated since a successful load reassigns
// the tag regardless. After a load the store is re-verified, so the
// function never reports success on a bundle/engine mismatch.
//
// A cross-process advisory lock serializes concurrent installers on the
// same store. The lock is best-effort: when it cannot be acquired the
// install proceeds unlocked, which matches the behavior this component
// historically had.
func (in *Installer) EnsureInstalled(ctx context.Context) (Outcome, error) {
	lock, err := acquireInstallLock()
	if err != nil {
		slog.Debug("install lock unavailable, continuing unlocked", "error", err)
	} else {
		defer lock.Release()
	}

	class, expected, current, err := in.check(ctx)
	if err != nil {
		return OutcomeUnknown, err
	}

	switch class {
	case Matching:
		return AlreadyInstalled, nil

	case Stale:
		// Eviction keeps the tag unambiguous. Removal targets exactly the
		// digest the store reported in the query above.
		if rerr := in.engine.RemoveImage(ctx, current, true); rerr != nil {
			slog.Warn("could not delete stale container image, leaving it in place",
				"digest", current, "error", rerr)
		} else {
			slog.Info("deleted stale container image", "digest", current)
		}
	}

	if err := in.install(ctx); err != nil {
		return OutcomeUnknown, err
	}

	// Re-verify: the loaded archive must have produced the expected
	// tag/digest, otherwise the bundle and the engine disagree.
	class, _, current, err = in.check(ctx)
	if err != nil {
		return OutcomeUnknown, err
	}
	if class != Matching {
		return OutcomeUnknown, &PostInstallMismatchError{Expected: expected.Digest, Found: current}
	}

	slog.Info("container image installed", "tag", expected.Tag, "digest", expected.Digest)
	return Installed, nil
}

// install streams the bundled archive into the engine's load process and
// waits for it to register the image.
func (in *Installer) install(ctx context.Context) error {
	slog.Info("installing container image", "engine", in.engine.Name(), "archive", in.res.ArchivePath())

	session, err := in.engine.OpenLoad(ctx)
	if err != nil {
		return fmt.Errorf("start image load: %w", err)
	}

	if err := in.res.StreamTo(session.Stdin(), in.chunkSize); err != nil {
		// Reap the load process before reporting; its exit status is
		// secondary to the streaming failure.
		_ = session.Wait()

		if errors.Is(err, bundle.ErrSinkWrite) {
			return &LoadAbortedError{Err: err}
		}
		return err
	}

	return session.Wait()
}
