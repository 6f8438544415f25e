package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one node of a document tree. A SectionType node is an ordered
// mapping from key segment to child node (Fields and Values are parallel
// slices, insertion order significant). Every other type is a value: an
// opaque scalar or array payload.
//
// Comment lines and the Ignored flag ride along with the node. The
// migration engine passes comments through unmodified; Ignored excludes
// the node and its subtree from merge consideration.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []string
	Values []*Node

	Ignored bool
	Comment []string

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Ignored = y.Ignored
	dst.Comment = slices.Clone(y.Comment)
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func NewSection() *Node {
	return &Node{Type: SectionType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(ys []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(ys))
	for i, y := range ys {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// FromMap builds a section with keys in sorted order. Intended for
// tests and other places where insertion order is not meaningful.
func FromMap(yMap map[string]*Node) *Node {
	res := NewSection()
	keys := slices.Sorted(maps.Keys(yMap))
	for _, key := range keys {
		res.Put(key, yMap[key])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != SectionType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i]] = node.Values[i]
	}
	return res
}

// Get returns the child at field, or nil.
func (y *Node) Get(field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// IndexOf returns the position of field, or -1.
func (y *Node) IndexOf(field string) int {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return i
		}
	}
	return -1
}

// Put sets field to v, replacing an existing child in place (keeping its
// position) or appending a new one. v is re-parented to y.
func (y *Node) Put(field string, v *Node) *Node {
	v.Parent = y
	v.ParentField = field
	if i := y.IndexOf(field); i != -1 {
		v.ParentIndex = i
		y.Values[i] = v
		return y
	}
	v.ParentIndex = len(y.Fields)
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

// Remove detaches and returns the child at field, or nil.
func (y *Node) Remove(field string) *Node {
	i := y.IndexOf(field)
	if i == -1 {
		return nil
	}
	res := y.Values[i]
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.reindex(i)
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}

// SetChildren replaces a section's children wholesale, rewiring parent
// backrefs. Fields and values must be parallel.
func (y *Node) SetChildren(fields []string, values []*Node) {
	y.Fields = fields
	y.Values = values
	y.reindex(0)
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].Parent = y
		y.Values[i].ParentIndex = i
		if i < len(y.Fields) {
			y.Values[i].ParentField = y.Fields[i]
		}
	}
}

// Text returns the literal text of a scalar node.
func (y *Node) Text() string {
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		if y.Number != "" {
			return y.Number
		}
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return ""
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NullType:
		return "null"
	}
	return ""
}

// SetText resets the node to the scalar denoted by v, retyping numbers,
// bools and null. Comment and Ignored are kept; children are dropped.
func (y *Node) SetText(v string) {
	y.Fields = nil
	y.Values = nil
	y.Number = ""
	y.Int64 = nil
	y.Float64 = nil
	y.Bool = false
	y.Type = StringType
	y.String = v
	y.ReType()
}

// ReType reinterprets a string node's text as null, bool or number when
// it parses as one. Used when scalars arrive as raw text.
func (y *Node) ReType() {
	if y.Type != StringType {
		return
	}
	v := y.String
	switch v {
	case "null", "~":
		y.Type = NullType
		return
	case "true":
		y.Type = BoolType
		y.Bool = true
		return
	case "false":
		y.Type = BoolType
		y.Bool = false
		return
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		y.Type = NumberType
		y.Number = v
		y.Int64 = &i
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err == nil {
		y.Type = NumberType
		y.Number = v
		y.Float64 = &f
	}
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
