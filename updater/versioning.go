package updater

import (
	"fmt"

	"github.com/confkit/yamlup/ir"
	"github.com/confkit/yamlup/route"
	"github.com/confkit/yamlup/version"
)

// Versioning is the policy object that extracts document versions and
// writes the new version marker after migration.
type Versioning interface {
	// DocumentVersion returns the user document's version, or nil when
	// the document carries no version marker.
	DocumentVersion(userRoot *ir.Node) (*version.Version, error)
	// DefaultsVersion returns the defaults document's version. A nil
	// result is a fatal configuration error for the updater.
	DefaultsVersion(defaultsRoot *ir.Node) (*version.Version, error)
	// FirstVersion is the oldest version the pattern defines,
	// substituted when the user document has no marker.
	FirstVersion() *version.Version
	// Pattern is the pattern all rule-set version keys parse against.
	Pattern() *version.Pattern
	// UpdateVersionID writes the defaults' version identifier into the
	// user tree, creating the marker node if absent.
	UpdateVersionID(userRoot, defaultsRoot *ir.Node) error
}

// Automatic reads the version marker from both documents at a fixed
// route and re-stamps the user document at the same route.
type Automatic struct {
	pattern *version.Pattern
	route   route.Route
}

var _ Versioning = (*Automatic)(nil)

func NewAutomatic(p *version.Pattern, r route.Route) *Automatic {
	return &Automatic{pattern: p, route: r}
}

func (a *Automatic) DocumentVersion(userRoot *ir.Node) (*version.Version, error) {
	return a.versionAt(userRoot)
}

func (a *Automatic) DefaultsVersion(defaultsRoot *ir.Node) (*version.Version, error) {
	return a.versionAt(defaultsRoot)
}

func (a *Automatic) versionAt(root *ir.Node) (*version.Version, error) {
	node := root.GetRoute(a.route)
	if node == nil || !node.Type.IsValue() {
		return nil, nil
	}
	v, err := a.pattern.Parse(node.Text())
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (a *Automatic) FirstVersion() *version.Version {
	return a.pattern.First()
}

func (a *Automatic) Pattern() *version.Pattern {
	return a.pattern
}

func (a *Automatic) UpdateVersionID(userRoot, defaultsRoot *ir.Node) error {
	def, err := a.DefaultsVersion(defaultsRoot)
	if err != nil {
		return err
	}
	if def == nil {
		return fmt.Errorf("%w: no marker at route %q", ErrMissingDefaultsVersion, a.route.String('.'))
	}
	if node := userRoot.GetRoute(a.route); node != nil && node.Type.IsValue() {
		// keep the marker node's comment intact
		node.SetText(def.ID())
		return nil
	}
	marker := ir.FromString(def.ID())
	marker.ReType()
	userRoot.AttachRoute(a.route, marker)
	return nil
}

// Manual carries caller-supplied versions for both documents and never
// touches the trees; re-stamping is the caller's concern.
type Manual struct {
	pattern    *version.Pattern
	user, defs *version.Version
}

var _ Versioning = (*Manual)(nil)

// NewManual parses the given identifiers under p. An empty userID means
// the user document has no version.
func NewManual(p *version.Pattern, userID, defaultsID string) (*Manual, error) {
	m := &Manual{pattern: p}
	var err error
	if userID != "" {
		m.user, err = p.Parse(userID)
		if err != nil {
			return nil, err
		}
	}
	m.defs, err = p.Parse(defaultsID)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manual) DocumentVersion(*ir.Node) (*version.Version, error) {
	return m.user, nil
}

func (m *Manual) DefaultsVersion(*ir.Node) (*version.Version, error) {
	return m.defs, nil
}

func (m *Manual) FirstVersion() *version.Version {
	return m.pattern.First()
}

func (m *Manual) Pattern() *version.Pattern {
	return m.pattern
}

func (m *Manual) UpdateVersionID(userRoot, defaultsRoot *ir.Node) error {
	return nil
}
