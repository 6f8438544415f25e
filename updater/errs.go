package updater

import "errors"

var (
	// ErrMissingDefaultsVersion means the defaults document carries no
	// extractable version; it defines the only trustworthy baseline, so
	// migration cannot proceed.
	ErrMissingDefaultsVersion = errors.New("defaults document has no version")

	// ErrDowngrade means the user document is newer than the defaults
	// and downgrading is not enabled.
	ErrDowngrade = errors.New("downgrading is not enabled")

	// ErrMergeRule means a user/defaults node pair has mismatched kinds
	// with no configured merge rule for the combination.
	ErrMergeRule = errors.New("no merge rule configured")
)
