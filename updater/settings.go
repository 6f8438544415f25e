package updater

import (
	"github.com/confkit/yamlup/route"
)

// MergeRule decides a Section-vs-Value conflict between a user node and
// its defaults counterpart.
type MergeRule int

const (
	KeepUser MergeRule = iota
	AdoptDefaults
)

func (r MergeRule) String() string {
	switch r {
	case KeepUser:
		return "keepUser"
	case AdoptDefaults:
		return "adoptDefaults"
	}
	return "<unknown rule>"
}

// Conflict names a mismatched node-kind combination, user side first.
type Conflict int

const (
	// SectionAtValue: the user has a section where defaults has a value.
	SectionAtValue Conflict = iota
	// ValueAtSection: the user has a value where defaults has a section.
	ValueAtSection
)

func (c Conflict) String() string {
	switch c {
	case SectionAtValue:
		return "sectionAtValue"
	case ValueAtSection:
		return "valueAtSection"
	}
	return "<unknown conflict>"
}

// Relocation declares one key move. Declaration order is significant:
// moves at one version step may depend on earlier moves.
type Relocation struct {
	From, To route.Route
}

// Settings drives one migration call. The zero value is not usable;
// start from DefaultSettings.
type Settings struct {
	// Versioning extracts and re-stamps version markers. When nil the
	// updater skips all version logic and always merges.
	Versioning Versioning

	// Separator splits string-authored routes. Default '.'.
	Separator byte

	// AllowDowngrade treats a user document newer than the defaults as
	// already up to date instead of failing.
	AllowDowngrade bool

	// RemoveUnused drops user keys absent from the defaults. Ignored
	// nodes always survive.
	RemoveUnused bool

	// Relocations maps a version identifier to the ordered key moves
	// introduced by that version of the schema.
	Relocations map[string][]Relocation

	// Ignored maps a version identifier to routes whose subtrees are
	// preserved verbatim and excluded from the merge.
	Ignored map[string][]route.Route

	// MergeRules decides mismatched node-kind combinations. A missing
	// entry for an encountered combination is a fatal error.
	MergeRules map[Conflict]MergeRule

	// AutoSave invokes Save after an active migration completes.
	AutoSave bool
	Save     func() error
}

// DefaultSettings configures both conflict combinations to adopt the
// defaults' shape, retains unused user keys, and disallows downgrades.
func DefaultSettings() *Settings {
	return &Settings{
		Separator: '.',
		MergeRules: map[Conflict]MergeRule{
			SectionAtValue: AdoptDefaults,
			ValueAtSection: AdoptDefaults,
		},
	}
}

func (s *Settings) separator() byte {
	if s.Separator == 0 {
		return '.'
	}
	return s.Separator
}
