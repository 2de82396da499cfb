// Package parser provides an error-tolerant recursive-descent parser for
// minij, a small Java-like language.
//
// # Overview
//
// The parser always produces a tree. When a production fails it does not
// abort: it builds an error placeholder for that production, hands the token
// stream to the recovery engine with the policy of the current grammar level,
// stores every token it skipped in the placeholder, and carries on.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Scanner   │────▶│   Parser    │────▶│    Tree     │
//	│  (tokens)   │     │  (grammar)  │     │ Parsed/Bad* │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	       ▲                   │ on failure
//	       │            ┌─────────────┐
//	       └────────────│  Recovery   │
//	          skip      │  (policy)   │
//	                    └─────────────┘
//
// # Grammar
//
//	CompilationUnit = [ "package" identifier ";" ] { ClassDecl } .
//	ClassDecl       = [ Access ] "class" identifier [ "extends" identifier ] "{" { Member } "}" .
//	Member          = MethodDecl | FieldDecl .
//	MethodDecl      = [ Access ] Type identifier "(" [ Param { "," Param } ] ")" Block .
//	FieldDecl       = [ Access ] Type identifier [ "=" Expression ] ";" .
//	Statement       = Block | IfStmt | LocalVarDecl | Expression ";" .
//	IfStmt          = "if" "(" Expression ")" Statement [ "else" Statement ] .
//	Expression      = identifier [ "=" Expression ] | int_lit | bool_lit .
//
// The full grammar lives in the grammar package.
//
// # Error Recovery
//
//	Production          Policy          Placeholder
//	package clause      top-level       *tree.BadPackageDecl
//	class declaration   top-level       *tree.BadClassDecl
//	class member        class-member    *tree.BadMethodDecl or *tree.BadVarDecl
//	statement           statement       *tree.BadStmt or *tree.BadVarDecl
//	expression          expression      *tree.BadExpr
//
// Failures never cross the production that detected them: an if-statement
// whose else branch is malformed stays a parsed *tree.IfStmt with a
// *tree.BadStmt in its Else field.
//
// Whether a member is a method or a field is decided by a bounded lookahead
// (optional modifier, type, name, then "(" or not). The scanner position is
// restored afterwards, so the lookahead consumes nothing.
//
// Every recovery event is recorded as a Diagnostic.
//
// # Thread Safety
//
// A Parser parses one input once and is not safe for concurrent use.
//
// # Example Usage
//
//	p := parser.New(src, parser.WithFile("A.mj"))
//	unit := p.ParseCompilationUnit()
//	for _, d := range p.Diagnostics() {
//		fmt.Println(d)
//	}
package parser
