package route

import (
	"reflect"
	"testing"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  byte
		want Route
	}{
		{
			name: "single segment",
			in:   "a",
			sep:  '.',
			want: Route{"a"},
		},
		{
			name: "nested",
			in:   "a.b.c",
			sep:  '.',
			want: Route{"a", "b", "c"},
		},
		{
			name: "custom separator",
			in:   "a.b/c",
			sep:  '/',
			want: Route{"a.b", "c"},
		},
		{
			name: "empty string is a single empty segment",
			in:   "",
			sep:  '.',
			want: Route{""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.in, tt.sep)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromString(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String(tt.sep) != tt.in {
				t.Errorf("round trip %q gave %q", tt.in, got.String(tt.sep))
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !New("a", "b").Equal(FromString("a.b", '.')) {
		t.Errorf("expected routes equal")
	}
	if New("a", "b").Equal(New("a")) {
		t.Errorf("routes of different length compared equal")
	}
	if New("a", "b").Equal(New("a", "c")) {
		t.Errorf("routes with different segments compared equal")
	}
}

func TestAppend(t *testing.T) {
	base := New("a")
	got := base.Append("b", "c")
	if !got.Equal(New("a", "b", "c")) {
		t.Errorf("Append gave %v", got)
	}
	if !base.Equal(New("a")) {
		t.Errorf("Append modified the receiver: %v", base)
	}
}

func TestSplit(t *testing.T) {
	parent, last := New("a", "b", "c").Split()
	if !parent.Equal(New("a", "b")) || last != "c" {
		t.Errorf("Split gave %v, %q", parent, last)
	}
	parent, last = New("a").Split()
	if len(parent) != 0 || last != "a" {
		t.Errorf("Split of single segment gave %v, %q", parent, last)
	}
}
