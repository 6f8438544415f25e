// Package version implements the version model: a Pattern is an ordered
// sequence of parts, each either a bounded integer range or a fixed
// literal, and a Version is an identifier parsed against a pattern.
// Versions are totally ordered by their numeric parts in declared
// order; literal parts must match to parse but contribute no ordering.
package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

type Part struct {
	numeric  bool
	literal  string
	min, max int
}

// Range returns a numeric part accepting integers in [min,max].
func Range(min, max int) Part {
	return Part{numeric: true, min: min, max: max}
}

// Literal returns a fixed-string part.
func Literal(s string) Part {
	return Part{literal: s}
}

func (p Part) IsNumeric() bool {
	return p.numeric
}

type Pattern struct {
	parts []Part
}

func NewPattern(parts ...Part) (*Pattern, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no parts", ErrPattern)
	}
	numeric := 0
	for i, p := range parts {
		if !p.numeric {
			if p.literal == "" {
				return nil, fmt.Errorf("%w: empty literal at part %d", ErrPattern, i)
			}
			continue
		}
		numeric++
		if p.min < 0 || p.min > p.max {
			return nil, fmt.Errorf("%w: bad range [%d,%d] at part %d", ErrPattern, p.min, p.max, i)
		}
	}
	if numeric == 0 {
		return nil, fmt.Errorf("%w: no numeric parts", ErrPattern)
	}
	return &Pattern{parts: parts}, nil
}

// MustPattern is NewPattern panicking on error.
func MustPattern(parts ...Part) *Pattern {
	p, err := NewPattern(parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse matches id against the pattern part by part. Numeric parts
// consume the maximal digit run at the cursor; literal parts consume an
// exact substring. The identifier must be fully consumed.
func (p *Pattern) Parse(id string) (*Version, error) {
	rest := id
	nums := make([]int, 0, len(p.parts))
	for i, part := range p.parts {
		if !part.numeric {
			if !strings.HasPrefix(rest, part.literal) {
				return nil, fmt.Errorf("%w: %q does not match literal %q at part %d", ErrParse, id, part.literal, i)
			}
			rest = rest[len(part.literal):]
			continue
		}
		j := 0
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j == 0 {
			return nil, fmt.Errorf("%w: %q has no digits at part %d", ErrParse, id, i)
		}
		n, err := strconv.Atoi(rest[:j])
		if err != nil {
			return nil, fmt.Errorf("%w: %q part %d: %v", ErrParse, id, i, err)
		}
		if n < part.min || n > part.max {
			return nil, fmt.Errorf("%w: %q part %d value %d outside [%d,%d]", ErrParse, id, i, n, part.min, part.max)
		}
		nums = append(nums, n)
		rest = rest[j:]
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: %q has trailing %q", ErrParse, id, rest)
	}
	return &Version{pattern: p, nums: nums, id: id}, nil
}

// First returns the oldest version the pattern defines: every numeric
// part at its minimum.
func (p *Pattern) First() *Version {
	nums := make([]int, 0, len(p.parts))
	var b strings.Builder
	for _, part := range p.parts {
		if !part.numeric {
			b.WriteString(part.literal)
			continue
		}
		nums = append(nums, part.min)
		b.WriteString(strconv.Itoa(part.min))
	}
	return &Version{pattern: p, nums: nums, id: b.String()}
}

type Version struct {
	pattern *Pattern
	nums    []int
	id      string
}

func (v *Version) ID() string {
	return v.id
}

func (v *Version) Pattern() *Pattern {
	return v.pattern
}

// Compare orders v against w by numeric parts in declared order.
// Both versions must derive from the same pattern; comparing across
// patterns is a programming error and panics.
func (v *Version) Compare(w *Version) int {
	if v.pattern != w.pattern {
		panic("version: compare across patterns")
	}
	for i := range v.nums {
		if c := cmp.Compare(v.nums[i], w.nums[i]); c != 0 {
			return c
		}
	}
	return 0
}

func (v *Version) Equal(w *Version) bool {
	return v.pattern == w.pattern && v.Compare(w) == 0
}

func (v *Version) String() string {
	return v.id
}
