package updater

import (
	"sort"

	"github.com/confkit/yamlup/debug"
	"github.com/confkit/yamlup/ir"
	"github.com/confkit/yamlup/version"
)

// Relocate replays every relocation rule keyed by a version in the
// half-open interval (from, to], in ascending version order, against
// the user tree. Within one version step moves apply in declaration
// order. A move whose source route is absent is a no-op; a move whose
// target route is occupied overwrites it.
func Relocate(user *ir.Node, from, to *version.Version, rules map[string][]Relocation, p *version.Pattern) error {
	type step struct {
		v     *version.Version
		moves []Relocation
	}
	steps := make([]step, 0, len(rules))
	for id, moves := range rules {
		v, err := p.Parse(id)
		if err != nil {
			return err
		}
		if v.Compare(from) <= 0 || v.Compare(to) > 0 {
			continue
		}
		steps = append(steps, step{v: v, moves: moves})
	}
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].v.Compare(steps[j].v) < 0
	})
	sep := byte('.')
	for _, st := range steps {
		for _, move := range st.moves {
			node := user.DetachRoute(move.From)
			if node == nil {
				if debug.Relocate() {
					debug.Logf("relocate %s: no node at %q\n", st.v.ID(), move.From.String(sep))
				}
				continue
			}
			if debug.Relocate() {
				debug.Logf("relocate %s: %q -> %q\n", st.v.ID(), move.From.String(sep), move.To.String(sep))
			}
			user.AttachRoute(move.To, node)
		}
	}
	return nil
}
