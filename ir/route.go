package ir

import (
	"github.com/confkit/yamlup/route"
)

// GetRoute resolves r against y, returning nil when any segment is
// missing or a non-section node sits in the way.
func (y *Node) GetRoute(r route.Route) *Node {
	res := y
	for _, seg := range r {
		if res.Type != SectionType {
			return nil
		}
		res = res.Get(seg)
		if res == nil {
			return nil
		}
	}
	return res
}

// EnsureSection returns the section at r, creating missing intermediate
// sections along the way. A non-section node found at an intermediate
// segment is overwritten with a fresh section.
func (y *Node) EnsureSection(r route.Route) *Node {
	res := y
	for _, seg := range r {
		next := res.Get(seg)
		if next == nil || next.Type != SectionType {
			next = NewSection()
			res.Put(seg, next)
		}
		res = next
	}
	return res
}

// AttachRoute places n at r, creating missing intermediate sections. An
// existing node at r is overwritten.
func (y *Node) AttachRoute(r route.Route, n *Node) {
	parent, last := r.Split()
	at := y.EnsureSection(parent)
	at.Put(last, n)
}

// DetachRoute removes and returns the node at r, or nil when absent.
// Sections emptied by the detach are left in place.
func (y *Node) DetachRoute(r route.Route) *Node {
	parent, last := r.Split()
	at := y.GetRoute(parent)
	if at == nil || at.Type != SectionType {
		return nil
	}
	return at.Remove(last)
}
