// Package yamlup keeps persisted YAML configuration documents in step
// with the defaults template shipped alongside an application update.
// A Document couples a user tree with its defaults tree and settings;
// Update migrates the user tree across however many schema versions it
// is behind: relocations replay in version order, ignored blocks are
// preserved verbatim, missing defaults are introduced, and the version
// marker is re-stamped.
package yamlup

import (
	"fmt"
	"io"
	"os"

	"github.com/confkit/yamlup/encode"
	"github.com/confkit/yamlup/ir"
	"github.com/confkit/yamlup/parse"
	"github.com/confkit/yamlup/route"
	"github.com/confkit/yamlup/updater"
)

// Document is a loaded user document and the defaults it updates
// against. The user tree is mutated by Update; the defaults tree is
// read-only and may be shared between documents.
type Document struct {
	Root     *ir.Node
	Defaults *ir.Node
	Settings *updater.Settings

	path string
}

// Load parses both documents from raw YAML. A nil settings means
// updater.DefaultSettings.
func Load(user, defaults []byte, s *updater.Settings) (*Document, error) {
	if s == nil {
		s = updater.DefaultSettings()
	}
	root, err := parse.Parse(user)
	if err != nil {
		return nil, fmt.Errorf("user document: %w", err)
	}
	defs, err := parse.Parse(defaults)
	if err != nil {
		return nil, fmt.Errorf("defaults document: %w", err)
	}
	return &Document{Root: root, Defaults: defs, Settings: s}, nil
}

// LoadFile reads both documents from disk. The user path is remembered
// for SaveFile and the auto-save hook.
func LoadFile(userPath, defaultsPath string, s *updater.Settings) (*Document, error) {
	user, err := os.ReadFile(userPath)
	if err != nil {
		return nil, err
	}
	defaults, err := os.ReadFile(defaultsPath)
	if err != nil {
		return nil, err
	}
	doc, err := Load(user, defaults, s)
	if err != nil {
		return nil, err
	}
	doc.path = userPath
	return doc, nil
}

// Update migrates the user tree against the defaults. When auto-save is
// enabled and the document was loaded from a file, a completed
// migration is written back in place.
func (d *Document) Update() error {
	if d.Settings.AutoSave && d.Settings.Save == nil && d.path != "" {
		d.Settings.Save = d.SaveFile
	}
	return updater.Update(d.Root, d.Defaults, d.Settings)
}

// Get returns the node at a separator-delimited route, or nil.
func (d *Document) Get(routeStr string) *ir.Node {
	sep := byte('.')
	if d.Settings != nil && d.Settings.Separator != 0 {
		sep = d.Settings.Separator
	}
	return d.Root.GetRoute(route.FromString(routeStr, sep))
}

func (d *Document) Save(w io.Writer) error {
	return encode.Encode(d.Root, w)
}

func (d *Document) Bytes() ([]byte, error) {
	s, err := encode.String(d.Root)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (d *Document) SaveFile() error {
	if d.path == "" {
		return fmt.Errorf("document was not loaded from a file")
	}
	b, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, b, 0644)
}
