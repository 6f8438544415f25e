// Package parse turns YAML text into the document tree model. It is the
// external-collaborator boundary of the migration engine: tokenizing is
// delegated to goccy/go-yaml's parser, and comments are captured as
// node metadata for the encoder to re-emit.
package parse

import (
	"fmt"
	"os"

	"github.com/confkit/yamlup/ir"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

func Parse(d []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(d, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return ir.NewSection(), nil
	}
	return fromAST(f.Docs[0].Body)
}

func ParseFile(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

func fromAST(n ast.Node) (*ir.Node, error) {
	res, err := convert(n)
	if err != nil {
		return nil, err
	}
	attachComment(res, n)
	return res, nil
}

func convert(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.MappingNode:
		res := ir.NewSection()
		for _, mv := range x.Values {
			if err := convertPair(res, mv); err != nil {
				return nil, err
			}
		}
		return res, nil
	case *ast.MappingValueNode:
		// single-pair mapping surfaces without a MappingNode wrapper
		res := ir.NewSection()
		if err := convertPair(res, x); err != nil {
			return nil, err
		}
		return res, nil
	case *ast.SequenceNode:
		vals := make([]*ir.Node, 0, len(x.Values))
		for _, el := range x.Values {
			v, err := fromAST(el)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		return ir.FromSlice(vals), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.InfinityNode, *ast.NanNode:
		res := ir.FromString(n.GetToken().Value)
		res.ReType()
		return res, nil
	case *ast.TagNode:
		return fromAST(x.Value)
	case *ast.AnchorNode:
		return fromAST(x.Value)
	default:
		return nil, fmt.Errorf("%w: unsupported YAML node %T", ErrParse, n)
	}
}

func convertPair(section *ir.Node, mv *ast.MappingValueNode) error {
	key, err := keyText(mv.Key)
	if err != nil {
		return err
	}
	val, err := fromAST(mv.Value)
	if err != nil {
		return err
	}
	// key-line comments belong to the pair node, not the value
	attachComment(val, mv)
	section.Put(key, val)
	return nil
}

func keyText(k ast.MapKeyNode) (string, error) {
	switch x := k.(type) {
	case *ast.StringNode:
		return x.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode:
		return k.GetToken().Value, nil
	default:
		return "", fmt.Errorf("%w: unsupported key node %T", ErrParse, k)
	}
}

func attachComment(res *ir.Node, n ast.Node) {
	cg := n.GetComment()
	if cg == nil {
		return
	}
	for _, c := range cg.Comments {
		if c == nil || c.Token == nil {
			continue
		}
		res.Comment = append(res.Comment, "#"+c.Token.Value)
	}
}
