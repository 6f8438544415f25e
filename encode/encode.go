// Package encode writes a document tree back out as YAML, re-emitting
// the comment lines the parser preserved.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/confkit/yamlup/ir"
)

type EncState struct {
	indent   int
	comments bool

	Color func(ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   2,
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch node.Type {
	case ir.SectionType:
		if len(node.Fields) == 0 {
			return writeString(w, "{}\n")
		}
		return encodeSection(node, w, 0, es)
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return writeString(w, "[]\n")
		}
		return encodeArray(node, w, 0, es)
	default:
		if err := encodeComment(node, w, 0, es); err != nil {
			return err
		}
		return writeString(w, es.scalar(node)+"\n")
	}
}

func encodeSection(y *ir.Node, w io.Writer, depth int, es *EncState) error {
	pad := strings.Repeat(" ", depth*es.indent)
	for i := range y.Fields {
		v := y.Values[i]
		if err := encodeComment(v, w, depth, es); err != nil {
			return err
		}
		key := es.field(quote(y.Fields[i]))
		switch {
		case v.Type == ir.SectionType && len(v.Fields) == 0:
			if err := writeString(w, pad+key+": {}\n"); err != nil {
				return err
			}
		case v.Type == ir.SectionType:
			if err := writeString(w, pad+key+":\n"); err != nil {
				return err
			}
			if err := encodeSection(v, w, depth+1, es); err != nil {
				return err
			}
		case v.Type == ir.ArrayType && len(v.Values) == 0:
			if err := writeString(w, pad+key+": []\n"); err != nil {
				return err
			}
		case v.Type == ir.ArrayType:
			if err := writeString(w, pad+key+":\n"); err != nil {
				return err
			}
			if err := encodeArray(v, w, depth+1, es); err != nil {
				return err
			}
		default:
			if err := writeString(w, pad+key+": "+es.scalar(v)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeArray(y *ir.Node, w io.Writer, depth int, es *EncState) error {
	pad := strings.Repeat(" ", depth*es.indent)
	for _, v := range y.Values {
		if err := encodeComment(v, w, depth, es); err != nil {
			return err
		}
		switch {
		case v.Type == ir.SectionType && len(v.Fields) == 0:
			if err := writeString(w, pad+"- {}\n"); err != nil {
				return err
			}
		case v.Type == ir.SectionType:
			if err := writeString(w, pad+"-\n"); err != nil {
				return err
			}
			if err := encodeSection(v, w, depth+1, es); err != nil {
				return err
			}
		case v.Type == ir.ArrayType && len(v.Values) == 0:
			if err := writeString(w, pad+"- []\n"); err != nil {
				return err
			}
		case v.Type == ir.ArrayType:
			if err := writeString(w, pad+"-\n"); err != nil {
				return err
			}
			if err := encodeArray(v, w, depth+1, es); err != nil {
				return err
			}
		default:
			if err := writeString(w, pad+"- "+es.scalar(v)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeComment(y *ir.Node, w io.Writer, depth int, es *EncState) error {
	if !es.comments || len(y.Comment) == 0 {
		return nil
	}
	pad := strings.Repeat(" ", depth*es.indent)
	for _, ln := range y.Comment {
		if es.Color != nil {
			ln = es.Color(CommentColor, ln)
		}
		if err := writeString(w, pad+ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) scalar(y *ir.Node) string {
	var s string
	switch y.Type {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(y.Bool)
	case ir.NumberType:
		s = y.Text()
	case ir.StringType:
		s = quote(y.String)
	}
	if es.Color != nil {
		return es.Color(ValueColor, s)
	}
	return s
}

func (es *EncState) field(s string) string {
	if es.Color != nil {
		return es.Color(FieldColor, s)
	}
	return s
}

// quote double-quotes s when it would not survive as a plain scalar.
func quote(s string) string {
	if s == "" {
		return `""`
	}
	if s != strings.TrimSpace(s) {
		return strconv.Quote(s)
	}
	if strings.ContainsAny(s, ":#{}[]&*?|>'\"%@`,\n") {
		return strconv.Quote(s)
	}
	if strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "!") {
		return strconv.Quote(s)
	}
	// plain text that would re-read as null, bool or number
	probe := &ir.Node{Type: ir.StringType, String: s}
	probe.ReType()
	if probe.Type != ir.StringType {
		return strconv.Quote(s)
	}
	return s
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// String renders node to a string, failing only on writer errors, which
// cannot happen here.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return b.String(), nil
}
