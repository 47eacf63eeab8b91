// SPDX-License-Identifier: MPL-2.0

package installer

// Classification describes how the engine's image store relates to the
// bundled expectation for the application tag.
type Classification int

const (
	// Matching means the store holds the expected digest under the tag.
	Matching Classification = iota
	// Missing means no image is registered under the tag.
	Missing
	// Stale means the tag resolves to a different digest, which must be
	// evicted so the tag is never ambiguous.
	Stale
)

// String returns a human-readable name for the classification.
func (c Classification) String() string {
	switch c {
	case Matching:
		return "matching"
	case Missing:
		return "missing"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Classify compares the expected digest against the digest currently
// registered under the tag ("" when absent). It is a pure comparison:
// Matching iff the digests are equal, Missing iff no digest is registered,
// Stale otherwise.
func Classify(expected, current string) Classification {
	switch current {
	case expected:
		return Matching
	case "":
		return Missing
	default:
		return Stale
	}
}
