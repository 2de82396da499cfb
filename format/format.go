package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/minij/lang/tree"
)

type Encoder interface {
	Encode(n tree.Node) error
}

// Names lists the formats accepted by NewEncoder.
var Names = []string{"text", "json", "dump"}

func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewTreeJSONEncoder(w), nil
	case "dump":
		return NewDumpEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, want one of %s", name, strings.Join(Names, ", "))
}

// label describes a node's own fields, without its children.
func label(n tree.Node) string {
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	switch n := n.(type) {
	case *tree.PackageDecl:
		add(n.Name)
	case *tree.ClassDecl:
		add(n.Access.String())
		add(n.Name)
		if n.Super != "" {
			add("extends " + n.Super)
		}
	case *tree.MethodDecl:
		add(n.Access.String())
		add(n.Name)
	case *tree.VarDecl:
		add(n.Access.String())
		add(n.Name)
	case *tree.Ident:
		add(n.Name)
	case *tree.Literal:
		add(fmt.Sprint(n.Value))
	case *tree.PrimitiveType:
		add(n.Kind.String())
	}
	return strings.Join(parts, " ")
}
