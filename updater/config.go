package updater

import (
	"fmt"
	"os"

	"github.com/confkit/yamlup/route"
	"github.com/confkit/yamlup/version"

	"github.com/goccy/go-yaml"
)

// SettingsFile is the on-disk shape of migration settings. Routes are
// authored as separator-delimited strings.
type SettingsFile struct {
	Pattern        []PatternPart       `yaml:"pattern"`
	VersionRoute   string              `yaml:"versionRoute"`
	Separator      string              `yaml:"separator,omitempty"`
	AllowDowngrade bool                `yaml:"allowDowngrade,omitempty"`
	RemoveUnused   bool                `yaml:"removeUnused,omitempty"`
	AutoSave       bool                `yaml:"autoSave,omitempty"`
	Relocations    map[string][]Move   `yaml:"relocations,omitempty"`
	Ignored        map[string][]string `yaml:"ignored,omitempty"`
	MergeRules     map[string]string   `yaml:"mergeRules,omitempty"`
}

type PatternPart struct {
	Min     *int   `yaml:"min,omitempty"`
	Max     *int   `yaml:"max,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

type Move struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// ParseSettings decodes a settings file and resolves it into Settings.
func ParseSettings(d []byte) (*Settings, error) {
	sf := &SettingsFile{}
	if err := yaml.Unmarshal(d, sf); err != nil {
		return nil, fmt.Errorf("could not decode settings: %w", err)
	}
	return sf.Settings()
}

// LoadSettingsFile reads and resolves a settings file from path.
func LoadSettingsFile(path string) (*Settings, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	s, err := ParseSettings(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Settings resolves the file form: parses the pattern, splits the
// string-authored routes with the configured separator, and maps the
// merge rule table.
func (sf *SettingsFile) Settings() (*Settings, error) {
	s := DefaultSettings()
	if sf.Separator != "" {
		if len(sf.Separator) != 1 {
			return nil, fmt.Errorf("separator must be a single character, got %q", sf.Separator)
		}
		s.Separator = sf.Separator[0]
	}
	s.AllowDowngrade = sf.AllowDowngrade
	s.RemoveUnused = sf.RemoveUnused
	s.AutoSave = sf.AutoSave
	sep := s.separator()

	if len(sf.Pattern) != 0 {
		parts := make([]version.Part, 0, len(sf.Pattern))
		for i, fp := range sf.Pattern {
			switch {
			case fp.Literal != "" && (fp.Min != nil || fp.Max != nil):
				return nil, fmt.Errorf("pattern part %d: literal and range are exclusive", i)
			case fp.Literal != "":
				parts = append(parts, version.Literal(fp.Literal))
			case fp.Min != nil && fp.Max != nil:
				parts = append(parts, version.Range(*fp.Min, *fp.Max))
			default:
				return nil, fmt.Errorf("pattern part %d: need literal or min/max", i)
			}
		}
		pattern, err := version.NewPattern(parts...)
		if err != nil {
			return nil, err
		}
		if sf.VersionRoute == "" {
			return nil, fmt.Errorf("pattern given but no versionRoute")
		}
		s.Versioning = NewAutomatic(pattern, route.FromString(sf.VersionRoute, sep))
	}

	if len(sf.Relocations) != 0 {
		s.Relocations = make(map[string][]Relocation, len(sf.Relocations))
		for id, moves := range sf.Relocations {
			rs := make([]Relocation, 0, len(moves))
			for _, m := range moves {
				if m.From == "" || m.To == "" {
					return nil, fmt.Errorf("relocation at %q: from and to are required", id)
				}
				rs = append(rs, Relocation{
					From: route.FromString(m.From, sep),
					To:   route.FromString(m.To, sep),
				})
			}
			s.Relocations[id] = rs
		}
	}

	if len(sf.Ignored) != 0 {
		s.Ignored = make(map[string][]route.Route, len(sf.Ignored))
		for id, routes := range sf.Ignored {
			rs := make([]route.Route, 0, len(routes))
			for _, r := range routes {
				rs = append(rs, route.FromString(r, sep))
			}
			s.Ignored[id] = rs
		}
	}

	for name, ruleName := range sf.MergeRules {
		var conflict Conflict
		switch name {
		case "sectionAtValue":
			conflict = SectionAtValue
		case "valueAtSection":
			conflict = ValueAtSection
		default:
			return nil, fmt.Errorf("unrecognized merge conflict %q", name)
		}
		switch ruleName {
		case "keepUser":
			s.MergeRules[conflict] = KeepUser
		case "adoptDefaults":
			s.MergeRules[conflict] = AdoptDefaults
		default:
			return nil, fmt.Errorf("unrecognized merge rule %q", ruleName)
		}
	}
	return s, nil
}
