// Package tree declares the syntax tree produced by the minij parser.
//
// Every node kind comes in two shapes: the parsed node carrying its
// grammar-mandated fields, and a Bad* placeholder that carries only the raw
// tokens the parser failed to interpret. Consumers switch on the concrete type
// to tell them apart; a parsed node never has an unset mandatory field.
package tree

import (
	"github.com/dhamidi/minij/lang/scanner"
)

type Node interface {
	Span() scanner.Span
	// Errored reports whether the node was synthesized from input that did
	// not parse.
	Errored() bool
}

// Class is a *ClassDecl or a *BadClassDecl.
type Class interface {
	Node
	classNode()
}

// Member is a *MethodDecl, *VarDecl, *BadMethodDecl or *BadVarDecl.
type Member interface {
	Node
	memberNode()
}

// Stmt is a *Block, *IfStmt, *VarDecl, *ExprStmt, *BadVarDecl or *BadStmt.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an *Ident, *Literal, *AssignExpr, *PrimitiveType or *BadExpr.
type Expr interface {
	Node
	exprNode()
}

// PackageClause is a *PackageDecl or a *BadPackageDecl.
type PackageClause interface {
	Node
	packageNode()
}

type Access int

const (
	AccessNone Access = iota
	AccessPrivate
	AccessProtected
	AccessPublic
)

var accessNames = map[Access]string{
	AccessNone:      "",
	AccessPrivate:   "private",
	AccessProtected: "protected",
	AccessPublic:    "public",
}

func (a Access) String() string {
	return accessNames[a]
}

// AccessOf maps an access modifier token to its level.
func AccessOf(kind scanner.TokenKind) Access {
	switch kind {
	case scanner.TokenPrivate:
		return AccessPrivate
	case scanner.TokenProtected:
		return AccessProtected
	case scanner.TokenPublic:
		return AccessPublic
	}
	return AccessNone
}

type TypeKind int

const (
	TypeInt TypeKind = iota
	TypeBoolean
	TypeVoid
)

var typeKindNames = map[TypeKind]string{
	TypeInt:     "int",
	TypeBoolean: "boolean",
	TypeVoid:    "void",
}

func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// TypeOf maps a primitive type keyword to its TypeKind.
func TypeOf(kind scanner.TokenKind) (TypeKind, bool) {
	switch kind {
	case scanner.TokenInt:
		return TypeInt, true
	case scanner.TokenBoolean:
		return TypeBoolean, true
	case scanner.TokenVoid:
		return TypeVoid, true
	}
	return 0, false
}

// Parsed is embedded by every successfully parsed node.
type Parsed struct {
	Range scanner.Span
}

func (p *Parsed) Span() scanner.Span { return p.Range }
func (p *Parsed) Errored() bool      { return false }

// Bad is embedded by every error placeholder. Tokens is the exact span the
// parser consumed while failing and recovering. It is empty when the failure
// happened at end of input, or when a construct was missing right before a
// token the enclosing production resumes at, as in "x = ;". At marks the
// failure either way.
//
// Tokens may share its backing array with other placeholders and must not be
// modified.
type Bad struct {
	Tokens []scanner.Token
	// At is where the failure was detected.
	At scanner.Position
}

func (b *Bad) Errored() bool { return true }

func (b *Bad) Span() scanner.Span {
	if len(b.Tokens) == 0 {
		return scanner.Span{Start: b.At, End: b.At}
	}
	return scanner.Span{
		Start: b.Tokens[0].Span.Start,
		End:   b.Tokens[len(b.Tokens)-1].Span.End,
	}
}

// Text joins the literals of the skipped tokens with single spaces.
func (b *Bad) Text() string {
	var text string
	for i, tok := range b.Tokens {
		if i > 0 {
			text += " "
		}
		text += tok.Literal
	}
	return text
}

type CompilationUnit struct {
	Parsed
	// Package is nil when the file has no package clause.
	Package PackageClause
	Classes []Class
}

// PackageName returns the declared package, or "" when the clause is
// missing or failed to parse.
func (u *CompilationUnit) PackageName() string {
	if decl, ok := u.Package.(*PackageDecl); ok {
		return decl.Name
	}
	return ""
}

type PackageDecl struct {
	Parsed
	Name string
}

type BadPackageDecl struct{ Bad }

type ClassDecl struct {
	Parsed
	Access Access
	Name   string
	// Super is "" when the class has no extends clause.
	Super   string
	Members []Member
}

type BadClassDecl struct{ Bad }

type MethodDecl struct {
	Parsed
	Access Access
	Result *PrimitiveType
	Name   string
	Params []*VarDecl
	// Body is a *Block, or a *BadStmt when the body failed to parse.
	Body Stmt
}

type BadMethodDecl struct{ Bad }

// VarDecl is a field, a parameter, or a local variable declaration.
type VarDecl struct {
	Parsed
	// Access is always AccessNone for locals and parameters.
	Access Access
	Type   *PrimitiveType
	Name   string
	// Init is nil when there is no initializer.
	Init Expr
}

type BadVarDecl struct{ Bad }

type Block struct {
	Parsed
	Stmts []Stmt
}

type IfStmt struct {
	Parsed
	Cond Expr
	Then Stmt
	// Else is nil when there is no else branch.
	Else Stmt
}

type ExprStmt struct {
	Parsed
	X Expr
}

type BadStmt struct{ Bad }

type Ident struct {
	Parsed
	Name string
}

type Literal struct {
	Parsed
	Type TypeKind
	// Value is an int32 for TypeInt and a bool for TypeBoolean.
	Value any
}

type AssignExpr struct {
	Parsed
	Target *Ident
	Value  Expr
}

type PrimitiveType struct {
	Parsed
	Kind TypeKind
}

type BadExpr struct{ Bad }

func (*PackageDecl) packageNode()    {}
func (*BadPackageDecl) packageNode() {}

func (*ClassDecl) classNode()    {}
func (*BadClassDecl) classNode() {}

func (*MethodDecl) memberNode()    {}
func (*VarDecl) memberNode()       {}
func (*BadMethodDecl) memberNode() {}
func (*BadVarDecl) memberNode()    {}

func (*Block) stmtNode()      {}
func (*IfStmt) stmtNode()     {}
func (*VarDecl) stmtNode()    {}
func (*ExprStmt) stmtNode()   {}
func (*BadVarDecl) stmtNode() {}
func (*BadStmt) stmtNode()    {}

func (*Ident) exprNode()         {}
func (*Literal) exprNode()       {}
func (*AssignExpr) exprNode()    {}
func (*PrimitiveType) exprNode() {}
func (*BadExpr) exprNode()       {}
