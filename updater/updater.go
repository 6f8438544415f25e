// Package updater reconciles a previously persisted configuration tree
// (the user document) with the newer defaults tree shipped alongside an
// application update. One Update call resolves both versions, replays
// relocations across every intermediate schema version, marks ignored
// blocks, merges the defaults in, and re-stamps the user tree with the
// defaults' version identifier.
package updater

import (
	"fmt"

	"github.com/confkit/yamlup/debug"
	"github.com/confkit/yamlup/ir"
)

// Update migrates user against defaults with the result reflected in
// user. The defaults tree is read-only throughout and may be shared
// across concurrent migrations of different user trees.
//
// Fatal conditions abort the call synchronously; the user tree is
// mutated in place, so an error raised during relocation or merge can
// leave it partially migrated.
func Update(user, defaults *ir.Node, s *Settings) error {
	if s == nil {
		s = DefaultSettings()
	}
	if s.Versioning != nil {
		upToDate, err := runVersionDependent(user, defaults, s)
		if err != nil {
			return err
		}
		if upToDate {
			return nil
		}
	}
	if err := Merge(user, defaults, s); err != nil {
		return err
	}
	if s.Versioning != nil {
		if err := s.Versioning.UpdateVersionID(user, defaults); err != nil {
			return err
		}
	}
	if s.AutoSave && s.Save != nil {
		return s.Save()
	}
	return nil
}

// runVersionDependent resolves both versions, short-circuits the
// downgrade and up-to-date cases, and otherwise applies relocations and
// marks ignored blocks. It reports whether the document is up to date.
func runVersionDependent(user, defaults *ir.Node, s *Settings) (bool, error) {
	versioning := s.Versioning

	def, err := versioning.DefaultsVersion(defaults)
	if err != nil {
		return false, err
	}
	if def == nil {
		return false, ErrMissingDefaultsVersion
	}
	usr, err := versioning.DocumentVersion(user)
	if err != nil {
		return false, err
	}
	if usr == nil {
		// no marker: assume the oldest version the pattern defines so
		// every supplied relocation applies
		usr = versioning.FirstVersion()
	}
	if debug.Version() {
		debug.Logf("versions: user %q defaults %q\n", usr.ID(), def.ID())
	}

	switch c := usr.Compare(def); {
	case c > 0:
		if !s.AllowDowngrade {
			return false, fmt.Errorf("%w (%s > %s)", ErrDowngrade, usr.ID(), def.ID())
		}
		return true, nil
	case c == 0:
		return true, nil
	}

	if err := Relocate(user, usr, def, s.Relocations, versioning.Pattern()); err != nil {
		return false, err
	}
	for _, r := range s.Ignored[def.ID()] {
		if node := user.GetRoute(r); node != nil {
			node.Ignored = true
		}
	}
	return false, nil
}
