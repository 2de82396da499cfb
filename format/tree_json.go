package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/minij/lang/tree"
)

type TreeJSONEncoder struct {
	w io.Writer
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(n tree.Node) error {
	text, err := e.MarshalText(n)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *TreeJSONEncoder) MarshalText(n tree.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(n), "", "  ")
}

type treeJSONNode struct {
	Kind     string          `json:"kind"`
	Errored  bool            `json:"errored,omitempty"`
	Span     *treeJSONSpan   `json:"span,omitempty"`
	Access   string          `json:"access,omitempty"`
	Name     string          `json:"name,omitempty"`
	Super    string          `json:"super,omitempty"`
	Type     string          `json:"type,omitempty"`
	Value    string          `json:"value,omitempty"`
	Tokens   []string        `json:"tokens,omitempty"`
	Children []*treeJSONNode `json:"children,omitempty"`
}

type treeJSONSpan struct {
	Start treeJSONPosition `json:"start"`
	End   treeJSONPosition `json:"end"`
}

type treeJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func nodeToJSON(n tree.Node) *treeJSONNode {
	jn := &treeJSONNode{
		Kind:    tree.KindName(n),
		Errored: n.Errored(),
	}

	span := n.Span()
	if span.Start.Line != 0 || span.End.Line != 0 {
		jn.Span = &treeJSONSpan{
			Start: treeJSONPosition{Line: span.Start.Line, Column: span.Start.Column},
			End:   treeJSONPosition{Line: span.End.Line, Column: span.End.Column},
		}
	}

	switch n := n.(type) {
	case *tree.PackageDecl:
		jn.Name = n.Name
	case *tree.ClassDecl:
		jn.Access = n.Access.String()
		jn.Name = n.Name
		jn.Super = n.Super
	case *tree.MethodDecl:
		jn.Access = n.Access.String()
		jn.Name = n.Name
	case *tree.VarDecl:
		jn.Access = n.Access.String()
		jn.Name = n.Name
	case *tree.Ident:
		jn.Name = n.Name
	case *tree.Literal:
		jn.Type = n.Type.String()
		jn.Value = fmt.Sprint(n.Value)
	case *tree.PrimitiveType:
		jn.Type = n.Kind.String()
	}

	if bad, ok := tree.BadOf(n); ok {
		jn.Tokens = make([]string, len(bad.Tokens))
		for i, tok := range bad.Tokens {
			jn.Tokens[i] = tok.Literal
		}
	}

	for _, child := range tree.Children(n) {
		jn.Children = append(jn.Children, nodeToJSON(child))
	}

	return jn
}
