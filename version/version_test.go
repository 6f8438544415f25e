package version

import (
	"errors"
	"testing"
)

func testPattern(t *testing.T) *Pattern {
	t.Helper()
	p, err := NewPattern(Range(1, 100), Literal("."), Range(0, 10))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParse(t *testing.T) {
	p := testPattern(t)
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{name: "simple", id: "1.2", ok: true},
		{name: "maximal digit run", id: "100.10", ok: true},
		{name: "minimum", id: "1.0", ok: true},
		{name: "below range", id: "0.2", ok: false},
		{name: "above range", id: "101.2", ok: false},
		{name: "second part above range", id: "1.11", ok: false},
		{name: "literal mismatch", id: "1-2", ok: false},
		{name: "trailing garbage", id: "1.2.3", ok: false},
		{name: "no digits", id: "a.b", ok: false},
		{name: "empty", id: "", ok: false},
		{name: "missing tail", id: "1.", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := p.Parse(tt.id)
			if tt.ok {
				if err != nil {
					t.Fatalf("Parse(%q) failed: %v", tt.id, err)
				}
				if v.ID() != tt.id {
					t.Errorf("ID() = %q, want %q", v.ID(), tt.id)
				}
				return
			}
			if err == nil {
				t.Fatalf("Parse(%q) succeeded with %q", tt.id, v.ID())
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error %v is not ErrParse", err)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	p := testPattern(t)
	ids := []string{"1.0", "1.1", "1.10", "2.0", "2.3", "99.9", "100.10"}
	vs := make([]*Version, len(ids))
	for i, id := range ids {
		v, err := p.Parse(id)
		if err != nil {
			t.Fatal(err)
		}
		vs[i] = v
	}
	// ids are listed ascending; compare every pair
	for i, a := range vs {
		for j, b := range vs {
			c := a.Compare(b)
			switch {
			case i < j && c >= 0:
				t.Errorf("%s vs %s = %d, want < 0", a, b, c)
			case i == j && c != 0:
				t.Errorf("%s vs %s = %d, want 0", a, b, c)
			case i > j && c <= 0:
				t.Errorf("%s vs %s = %d, want > 0", a, b, c)
			}
			// antisymmetry
			if c != -b.Compare(a) {
				t.Errorf("%s vs %s not antisymmetric", a, b)
			}
		}
	}
	// transitivity over all triples
	for _, a := range vs {
		for _, b := range vs {
			for _, c := range vs {
				if a.Compare(b) <= 0 && b.Compare(c) <= 0 && a.Compare(c) > 0 {
					t.Errorf("not transitive: %s %s %s", a, b, c)
				}
			}
		}
	}
}

func TestCompareLiteralsDoNotOrder(t *testing.T) {
	p, err := NewPattern(Range(0, 9), Literal("-rc"), Range(0, 9))
	if err != nil {
		t.Fatal(err)
	}
	a, err := p.Parse("1-rc2")
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Parse("1-rc2")
	if err != nil {
		t.Fatal(err)
	}
	if a.Compare(b) != 0 || !a.Equal(b) {
		t.Errorf("equal versions compared unequal")
	}
}

func TestCompareAcrossPatternsPanics(t *testing.T) {
	a := testPattern(t).First()
	b := testPattern(t).First()
	defer func() {
		if recover() == nil {
			t.Errorf("comparing versions of different patterns did not panic")
		}
	}()
	a.Compare(b)
}

func TestFirst(t *testing.T) {
	p := testPattern(t)
	first := p.First()
	if first.ID() != "1.0" {
		t.Fatalf("First() = %q, want %q", first.ID(), "1.0")
	}
	for _, id := range []string{"1.0", "1.1", "100.10"} {
		v, err := p.Parse(id)
		if err != nil {
			t.Fatal(err)
		}
		if first.Compare(v) > 0 {
			t.Errorf("First() > %s", id)
		}
	}
}

func TestNewPattern(t *testing.T) {
	if _, err := NewPattern(); err == nil {
		t.Errorf("empty pattern accepted")
	}
	if _, err := NewPattern(Literal(".")); err == nil {
		t.Errorf("pattern without numeric parts accepted")
	}
	if _, err := NewPattern(Range(5, 1)); err == nil {
		t.Errorf("inverted range accepted")
	}
	if _, err := NewPattern(Range(1, 2), Literal("")); err == nil {
		t.Errorf("empty literal accepted")
	}
}
