package ir

import (
	"testing"

	"github.com/confkit/yamlup/route"
)

func section(kvs ...any) *Node {
	s := NewSection()
	for i := 0; i < len(kvs); i += 2 {
		s.Put(kvs[i].(string), kvs[i+1].(*Node))
	}
	return s
}

func TestGetRoute(t *testing.T) {
	root := section("a", section("b", FromInt(1)), "v", FromString("x"))
	tests := []struct {
		name  string
		route route.Route
		found bool
	}{
		{name: "nested hit", route: route.New("a", "b"), found: true},
		{name: "top level hit", route: route.New("v"), found: true},
		{name: "missing leaf", route: route.New("a", "z"), found: false},
		{name: "through a value", route: route.New("v", "x"), found: false},
		{name: "missing top", route: route.New("q", "b"), found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := root.GetRoute(tt.route)
			if (got != nil) != tt.found {
				t.Errorf("GetRoute(%v) found=%v, want %v", tt.route, got != nil, tt.found)
			}
		})
	}
}

func TestAttachRouteCreatesIntermediates(t *testing.T) {
	root := NewSection()
	root.AttachRoute(route.New("a", "b", "c"), FromInt(7))
	got := root.GetRoute(route.New("a", "b", "c"))
	if got == nil || *got.Int64 != 7 {
		t.Fatalf("attach did not place the node")
	}
	if root.Get("a").Type != SectionType || root.Get("a").Get("b").Type != SectionType {
		t.Errorf("intermediates are not sections")
	}
	// overwrite
	root.AttachRoute(route.New("a", "b", "c"), FromString("new"))
	got = root.GetRoute(route.New("a", "b", "c"))
	if got.Type != StringType || got.String != "new" {
		t.Errorf("attach did not overwrite, got %s", got.Type)
	}
}

func TestAttachRouteThroughValue(t *testing.T) {
	root := section("a", FromString("scalar"))
	root.AttachRoute(route.New("a", "b"), FromInt(1))
	got := root.GetRoute(route.New("a", "b"))
	if got == nil || *got.Int64 != 1 {
		t.Fatalf("attach through a value failed")
	}
	if root.Get("a").Type != SectionType {
		t.Errorf("intermediate value was not replaced with a section")
	}
}

func TestDetachRoute(t *testing.T) {
	root := section("a", section("b", FromInt(1), "c", FromInt(2)))
	got := root.DetachRoute(route.New("a", "b"))
	if got == nil || *got.Int64 != 1 {
		t.Fatalf("detach gave %v", got)
	}
	if root.GetRoute(route.New("a", "b")) != nil {
		t.Errorf("node still attached")
	}
	// emptied sections stay
	root.DetachRoute(route.New("a", "c"))
	if a := root.Get("a"); a == nil || a.Type != SectionType || len(a.Fields) != 0 {
		t.Errorf("emptied section was removed")
	}
	if root.DetachRoute(route.New("x", "y")) != nil {
		t.Errorf("detaching a missing route gave a node")
	}
}
