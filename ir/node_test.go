package ir

import (
	"testing"
)

func TestPutKeepsOrder(t *testing.T) {
	s := NewSection()
	s.Put("b", FromInt(1))
	s.Put("a", FromInt(2))
	s.Put("c", FromInt(3))
	if got := len(s.Fields); got != 3 {
		t.Fatalf("got %d fields", got)
	}
	for i, want := range []string{"b", "a", "c"} {
		if s.Fields[i] != want {
			t.Errorf("field %d = %q, want %q", i, s.Fields[i], want)
		}
	}
	// replace keeps position
	s.Put("a", FromInt(9))
	if s.Fields[1] != "a" || *s.Values[1].Int64 != 9 {
		t.Errorf("replace moved or lost the field")
	}
	if s.Values[1].Parent != s || s.Values[1].ParentIndex != 1 || s.Values[1].ParentField != "a" {
		t.Errorf("replace did not rewire backrefs")
	}
}

func TestRemoveReindexes(t *testing.T) {
	s := NewSection()
	s.Put("a", FromInt(1))
	s.Put("b", FromInt(2))
	s.Put("c", FromInt(3))
	removed := s.Remove("b")
	if removed == nil || *removed.Int64 != 2 {
		t.Fatalf("Remove gave %v", removed)
	}
	if removed.Parent != nil {
		t.Errorf("removed node still has a parent")
	}
	if s.Get("b") != nil {
		t.Errorf("b still present")
	}
	c := s.Get("c")
	if c.ParentIndex != 1 || c.ParentField != "c" {
		t.Errorf("c not reindexed: %d %q", c.ParentIndex, c.ParentField)
	}
	if s.Remove("missing") != nil {
		t.Errorf("removing a missing field gave a node")
	}
}

func TestCloneCarriesMetadata(t *testing.T) {
	s := NewSection()
	inner := FromString("x")
	inner.Comment = []string{"# inner"}
	inner.Ignored = true
	s.Put("k", inner)
	s.Comment = []string{"# outer"}

	c := s.Clone()
	ck := c.Get("k")
	if ck == inner {
		t.Fatalf("clone shares nodes")
	}
	if !ck.Ignored {
		t.Errorf("clone lost Ignored")
	}
	if len(ck.Comment) != 1 || ck.Comment[0] != "# inner" {
		t.Errorf("clone lost comment: %v", ck.Comment)
	}
	if ck.Parent != c {
		t.Errorf("clone child not reparented")
	}
	// mutating the clone leaves the original alone
	ck.String = "y"
	if inner.String != "x" {
		t.Errorf("clone aliases original payload")
	}
}

func TestTextAndSetText(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{name: "string", node: FromString("hi"), want: "hi"},
		{name: "int", node: FromInt(42), want: "42"},
		{name: "float", node: FromFloat(1.5), want: "1.5"},
		{name: "bool", node: FromBool(true), want: "true"},
		{name: "null", node: Null(), want: "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}

	n := FromString("old")
	n.Comment = []string{"# marker"}
	n.SetText("2.3")
	if n.Type != NumberType || n.Text() != "2.3" {
		t.Errorf("SetText gave %s %q", n.Type, n.Text())
	}
	if len(n.Comment) != 1 {
		t.Errorf("SetText dropped the comment")
	}
}

func TestReType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"null", NullType},
		{"true", BoolType},
		{"false", BoolType},
		{"17", NumberType},
		{"1.25", NumberType},
		{"plain", StringType},
		{"1.2.3", StringType},
	}
	for _, tt := range tests {
		n := FromString(tt.in)
		n.ReType()
		if n.Type != tt.want {
			t.Errorf("ReType(%q) = %s, want %s", tt.in, n.Type, tt.want)
		}
	}
}

func TestVisit(t *testing.T) {
	s := NewSection()
	s.Put("a", FromInt(1))
	sub := NewSection()
	sub.Put("b", FromInt(2))
	s.Put("s", sub)

	var pre, post int
	err := s.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 4 || post != 4 {
		t.Errorf("visited pre=%d post=%d, want 4/4", pre, post)
	}
}
