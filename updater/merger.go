package updater

import (
	"fmt"

	"github.com/confkit/yamlup/debug"
	"github.com/confkit/yamlup/ir"
	"github.com/confkit/yamlup/route"
)

// Merge merges the defaults tree into the user tree in place. Each user
// section is rebuilt in the defaults' key order; retained user-only
// keys follow in their original relative order. The defaults tree is
// never mutated.
func Merge(user, defaults *ir.Node, s *Settings) error {
	if s == nil {
		s = DefaultSettings()
	}
	if user.Type != ir.SectionType || defaults.Type != ir.SectionType {
		return fmt.Errorf("merge roots must be sections, got %s and %s", user.Type, defaults.Type)
	}
	return mergeSection(user, defaults, nil, s)
}

func mergeSection(user, defaults *ir.Node, at route.Route, s *Settings) error {
	fields := make([]string, 0, len(defaults.Fields))
	values := make([]*ir.Node, 0, len(defaults.Fields))
	inDefaults := make(map[string]bool, len(defaults.Fields))

	for i := range defaults.Fields {
		key := defaults.Fields[i]
		dv := defaults.Values[i]
		inDefaults[key] = true
		uv := user.Get(key)
		if uv == nil {
			if debug.Merge() {
				debug.Logf("merge: introduce default %q\n", at.Append(key).String(s.separator()))
			}
			fields = append(fields, key)
			values = append(values, dv.Clone())
			continue
		}
		if uv.Ignored {
			fields = append(fields, key)
			values = append(values, uv)
			continue
		}
		res, err := resolve(uv, dv, at.Append(key), s)
		if err != nil {
			return err
		}
		fields = append(fields, key)
		values = append(values, res)
	}

	for i := range user.Fields {
		key := user.Fields[i]
		if inDefaults[key] {
			continue
		}
		uv := user.Values[i]
		if !uv.Ignored && s.RemoveUnused {
			if debug.Merge() {
				debug.Logf("merge: drop unused %q\n", at.Append(key).String(s.separator()))
			}
			continue
		}
		fields = append(fields, key)
		values = append(values, uv)
	}

	user.SetChildren(fields, values)
	return nil
}

// resolve decides one paired location. Two sections recurse; two values
// keep the user's customization; mismatched kinds consult the merge
// rule table.
func resolve(uv, dv *ir.Node, at route.Route, s *Settings) (*ir.Node, error) {
	switch {
	case uv.Type == ir.SectionType && dv.Type == ir.SectionType:
		if err := mergeSection(uv, dv, at, s); err != nil {
			return nil, err
		}
		return uv, nil
	case uv.Type.IsValue() && dv.Type.IsValue():
		return uv, nil
	}
	conflict := SectionAtValue
	if uv.Type.IsValue() {
		conflict = ValueAtSection
	}
	rule, ok := s.MergeRules[conflict]
	if !ok {
		return nil, fmt.Errorf("%w for %s at %q", ErrMergeRule, conflict, at.String(s.separator()))
	}
	if debug.Merge() {
		debug.Logf("merge: %s at %q -> %s\n", conflict, at.String(s.separator()), rule)
	}
	if rule == AdoptDefaults {
		return dv.Clone(), nil
	}
	return uv, nil
}
