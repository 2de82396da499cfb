package tree

import "fmt"

// Children returns the direct children of n in source order. Error
// placeholders have no children.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}

	switch n := n.(type) {
	case *CompilationUnit:
		if n.Package != nil {
			add(n.Package)
		}
		for _, c := range n.Classes {
			add(c)
		}
	case *ClassDecl:
		for _, m := range n.Members {
			add(m)
		}
	case *MethodDecl:
		add(n.Result)
		for _, p := range n.Params {
			add(p)
		}
		add(n.Body)
	case *VarDecl:
		add(n.Type)
		if n.Init != nil {
			add(n.Init)
		}
	case *Block:
		for _, s := range n.Stmts {
			add(s)
		}
	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *ExprStmt:
		add(n.X)
	case *AssignExpr:
		add(n.Target)
		add(n.Value)
	case *PackageDecl, *Ident, *Literal, *PrimitiveType:
	case *BadPackageDecl, *BadClassDecl, *BadMethodDecl, *BadVarDecl, *BadStmt, *BadExpr:
	default:
		panic(fmt.Sprintf("tree.Children: unexpected node type %T", n))
	}
	return out
}

// Inspect traverses the tree rooted at n in depth-first order, calling f for
// each node. If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// BadNodes returns every error placeholder under n, in source order.
func BadNodes(n Node) []Node {
	var bad []Node
	Inspect(n, func(n Node) bool {
		if n.Errored() {
			bad = append(bad, n)
		}
		return true
	})
	return bad
}

// KindName names the node's grammar construct, using the same name for a
// parsed node and its error placeholder.
func KindName(n Node) string {
	switch n.(type) {
	case *CompilationUnit:
		return "CompilationUnit"
	case *PackageDecl, *BadPackageDecl:
		return "PackageDecl"
	case *ClassDecl, *BadClassDecl:
		return "ClassDecl"
	case *MethodDecl, *BadMethodDecl:
		return "MethodDecl"
	case *VarDecl, *BadVarDecl:
		return "VarDecl"
	case *Block:
		return "Block"
	case *IfStmt:
		return "IfStmt"
	case *ExprStmt:
		return "ExprStmt"
	case *BadStmt:
		return "Stmt"
	case *Ident:
		return "Ident"
	case *Literal:
		return "Literal"
	case *AssignExpr:
		return "AssignExpr"
	case *PrimitiveType:
		return "PrimitiveType"
	case *BadExpr:
		return "Expr"
	}
	return "Unknown"
}

// BadOf returns the error span held by a placeholder node.
func BadOf(n Node) (*Bad, bool) {
	switch n := n.(type) {
	case *BadPackageDecl:
		return &n.Bad, true
	case *BadClassDecl:
		return &n.Bad, true
	case *BadMethodDecl:
		return &n.Bad, true
	case *BadVarDecl:
		return &n.Bad, true
	case *BadStmt:
		return &n.Bad, true
	case *BadExpr:
		return &n.Bad, true
	}
	return nil, false
}
