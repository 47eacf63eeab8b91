// SPDX-License-Identifier: MPL-2.0

package installer

// Outcome is the terminal result of a successful EnsureInstalled call.
// Callers that need to distinguish "nothing to do" from "did work" switch
// on this value; failures are reported as errors instead.
type Outcome int

const (
	// OutcomeUnknown is the zero value, returned alongside errors so a
	// missed error check never reads as success.
	OutcomeUnknown Outcome = iota
	// AlreadyInstalled means the expected image was present and no load was
	// performed.
	AlreadyInstalled
	// Installed means the bundled archive was loaded and the store now
	// holds the expected image.
	Installed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case AlreadyInstalled:
		return "already installed"
	case Installed:
		return "installed"
	default:
		return "unknown"
	}
}
