package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dhamidi/minij/lang/recovery"
	"github.com/dhamidi/minij/lang/scanner"
	"github.com/dhamidi/minij/lang/tree"
)

// treeOpts compares trees by structure, ignoring source positions.
var treeOpts = cmp.Options{
	cmpopts.IgnoreTypes(scanner.Span{}, scanner.Position{}),
	cmpopts.EquateEmpty(),
}

func parseUnit(t *testing.T, src string) (*tree.CompilationUnit, []Diagnostic) {
	t.Helper()
	p := New([]byte(src), WithFile("test.mj"))
	return p.ParseCompilationUnit(), p.Diagnostics()
}

func intType() *tree.PrimitiveType  { return &tree.PrimitiveType{Kind: tree.TypeInt} }
func voidType() *tree.PrimitiveType { return &tree.PrimitiveType{Kind: tree.TypeVoid} }
func intLit(n int32) *tree.Literal  { return &tree.Literal{Type: tree.TypeInt, Value: n} }
func boolLit(b bool) *tree.Literal  { return &tree.Literal{Type: tree.TypeBoolean, Value: b} }
func ident(name string) *tree.Ident { return &tree.Ident{Name: name} }

func assign(name string, value tree.Expr) *tree.ExprStmt {
	return &tree.ExprStmt{X: &tree.AssignExpr{Target: ident(name), Value: value}}
}

func literals(tokens []scanner.Token) string {
	var parts []string
	for _, tok := range tokens {
		parts = append(parts, tok.Literal)
	}
	return strings.Join(parts, " ")
}

func badText(t *testing.T, n tree.Node) string {
	t.Helper()
	b, ok := tree.BadOf(n)
	if !ok {
		t.Fatalf("%T is not an error placeholder", n)
	}
	return literals(b.Tokens)
}

func TestParseFieldWithoutPackage(t *testing.T) {
	unit, diags := parseUnit(t, "class A { int x = 1; }")

	want := &tree.CompilationUnit{
		Classes: []tree.Class{
			&tree.ClassDecl{
				Name: "A",
				Members: []tree.Member{
					&tree.VarDecl{Type: intType(), Name: "x", Init: intLit(1)},
				},
			},
		},
	}
	if diff := cmp.Diff(want, unit, treeOpts); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	if unit.PackageName() != "" {
		t.Errorf("PackageName() = %q, want empty", unit.PackageName())
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if bad := tree.BadNodes(unit); len(bad) != 0 {
		t.Errorf("unexpected error nodes: %v", bad)
	}
}

func TestParseMissingSemicolon(t *testing.T) {
	unit, diags := parseUnit(t, "class A { int x = 1 }")

	if len(unit.Classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(unit.Classes))
	}
	class, ok := unit.Classes[0].(*tree.ClassDecl)
	if !ok {
		t.Fatalf("class is %T, want *tree.ClassDecl", unit.Classes[0])
	}
	if len(class.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(class.Members))
	}
	if _, ok := class.Members[0].(*tree.BadVarDecl); !ok {
		t.Fatalf("member is %T, want *tree.BadVarDecl", class.Members[0])
	}
	if got := badText(t, class.Members[0]); got != "int x = 1" {
		t.Errorf("error span = %q, want %q", got, "int x = 1")
	}

	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Expected != `";"` || d.Found.Kind != scanner.TokenRBrace {
		t.Errorf("diagnostic expected %s found %v", d.Expected, d.Found)
	}
	if d.Policy != recovery.ClassMember || d.Skipped != 0 || d.Severity != SeverityError {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Pos.Line != 1 || d.Pos.Column != 21 {
		t.Errorf("diagnostic position = %v, want 1:21", d.Pos)
	}
}

func TestParseIfElseStatement(t *testing.T) {
	p := New([]byte("if (true) a = 1; else a = 2;"))
	stmt := p.ParseStatement()

	want := &tree.IfStmt{
		Cond: boolLit(true),
		Then: assign("a", intLit(1)),
		Else: assign("a", intLit(2)),
	}
	if diff := cmp.Diff(want, stmt, treeOpts); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	if len(p.Diagnostics()) != 0 {
		t.Errorf("unexpected diagnostics: %v", p.Diagnostics())
	}
}

func TestParseMalformedParameterList(t *testing.T) {
	unit, diags := parseUnit(t, "class A { void f( { } int y = 2; public void g() {} }")

	class, ok := unit.Classes[0].(*tree.ClassDecl)
	if !ok {
		t.Fatalf("class is %T, want *tree.ClassDecl", unit.Classes[0])
	}
	if len(unit.Classes) != 1 {
		t.Errorf("got %d classes, want 1", len(unit.Classes))
	}

	want := []tree.Member{
		&tree.BadMethodDecl{},
		&tree.VarDecl{Type: intType(), Name: "y", Init: intLit(2)},
		&tree.MethodDecl{
			Access: tree.AccessPublic,
			Result: voidType(),
			Name:   "g",
			Params: []*tree.VarDecl{},
			Body:   &tree.Block{},
		},
	}
	opts := append(treeOpts, cmpopts.IgnoreTypes([]scanner.Token{}))
	if diff := cmp.Diff(want, class.Members, opts); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
	if got := badText(t, class.Members[0]); got != "void f ( { }" {
		t.Errorf("error span = %q, want %q", got, "void f ( { }")
	}
	if len(diags) != 1 || diags[0].Policy != recovery.ClassMember || diags[0].Expected != "parameter type" {
		t.Errorf("diagnostics = %v", diags)
	}
}

func TestParseMalformedParameterListAtClassEnd(t *testing.T) {
	unit, _ := parseUnit(t, "class A { void f( { } }")

	if len(unit.Classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(unit.Classes))
	}
	class, ok := unit.Classes[0].(*tree.ClassDecl)
	if !ok {
		t.Fatalf("class is %T, want *tree.ClassDecl", unit.Classes[0])
	}
	if len(class.Members) != 1 {
		t.Fatalf("got %d members, want 1", len(class.Members))
	}
	if _, ok := class.Members[0].(*tree.BadMethodDecl); !ok {
		t.Errorf("member is %T, want *tree.BadMethodDecl", class.Members[0])
	}
}

func TestParseCompilationUnit(t *testing.T) {
	src := `
package pk;

public class Test extends Base {
	private boolean ready = false;
	protected int count;

	void func(int type, boolean flag) {
		int a = 1;
		if (flag) {
			a = type;
		} else {
			count = a = 2;
		}
	}
}

class Other {}
`
	unit, diags := parseUnit(t, src)

	want := &tree.CompilationUnit{
		Package: &tree.PackageDecl{Name: "pk"},
		Classes: []tree.Class{
			&tree.ClassDecl{
				Access: tree.AccessPublic,
				Name:   "Test",
				Super:  "Base",
				Members: []tree.Member{
					&tree.VarDecl{
						Access: tree.AccessPrivate,
						Type:   &tree.PrimitiveType{Kind: tree.TypeBoolean},
						Name:   "ready",
						Init:   boolLit(false),
					},
					&tree.VarDecl{Access: tree.AccessProtected, Type: intType(), Name: "count"},
					&tree.MethodDecl{
						Result: voidType(),
						Name:   "func",
						Params: []*tree.VarDecl{
							{Type: intType(), Name: "type"},
							{Type: &tree.PrimitiveType{Kind: tree.TypeBoolean}, Name: "flag"},
						},
						Body: &tree.Block{Stmts: []tree.Stmt{
							&tree.VarDecl{Type: intType(), Name: "a", Init: intLit(1)},
							&tree.IfStmt{
								Cond: ident("flag"),
								Then: &tree.Block{Stmts: []tree.Stmt{assign("a", ident("type"))}},
								Else: &tree.Block{Stmts: []tree.Stmt{
									assign("count", &tree.AssignExpr{Target: ident("a"), Value: intLit(2)}),
								}},
							},
						}},
					},
				},
			},
			&tree.ClassDecl{Name: "Other"},
		},
	}
	if diff := cmp.Diff(want, unit, treeOpts); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestParseSpans(t *testing.T) {
	unit, _ := parseUnit(t, "class A {\n  public void f() {}\n}")
	class := unit.Classes[0].(*tree.ClassDecl)
	method := class.Members[0].(*tree.MethodDecl)

	span := method.Span()
	if span.Start.Line != 2 || span.Start.Column != 3 {
		t.Errorf("method starts at %v, want 2:3", span.Start)
	}
	if span.End.Line != 2 || span.End.Column != 21 {
		t.Errorf("method ends at %v, want 2:21", span.End)
	}
	if got := class.Span(); got.Start.Offset != 0 || got.End.Line != 3 {
		t.Errorf("class span = %v-%v", got.Start, got.End)
	}
	if method.Span().Start.File != "test.mj" {
		t.Errorf("File = %q", method.Span().Start.File)
	}
}

func TestParseErrorRecovery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic)
	}{
		{
			name:  "bad package clause",
			input: "package ; class A {}",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				if _, ok := unit.Package.(*tree.BadPackageDecl); !ok {
					t.Fatalf("package is %T", unit.Package)
				}
				if unit.PackageName() != "" {
					t.Errorf("PackageName() = %q", unit.PackageName())
				}
				if got := badText(t, unit.Package); got != "package ;" {
					t.Errorf("span = %q", got)
				}
				if _, ok := unit.Classes[0].(*tree.ClassDecl); !ok {
					t.Errorf("class is %T", unit.Classes[0])
				}
				if diags[0].Policy != recovery.TopLevel {
					t.Errorf("policy = %v", diags[0].Policy)
				}
			},
		},
		{
			name:  "garbage before class",
			input: "x y z class A {}",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				if len(unit.Classes) != 2 {
					t.Fatalf("got %d classes", len(unit.Classes))
				}
				if got := badText(t, unit.Classes[0]); got != "x y z" {
					t.Errorf("span = %q", got)
				}
				if diags[0].Expected != "class declaration" {
					t.Errorf("expected = %q", diags[0].Expected)
				}
			},
		},
		{
			name:  "stray closing brace at top level",
			input: "class A {} } class B {}",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				if len(unit.Classes) != 3 {
					t.Fatalf("got %d classes", len(unit.Classes))
				}
				if got := badText(t, unit.Classes[1]); got != "}" {
					t.Errorf("span = %q", got)
				}
				if c, ok := unit.Classes[2].(*tree.ClassDecl); !ok || c.Name != "B" {
					t.Errorf("third class = %#v", unit.Classes[2])
				}
			},
		},
		{
			name:  "missing class body brace",
			input: "class A { int x;",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				if got := badText(t, unit.Classes[0]); got != "class A { int x ;" {
					t.Errorf("span = %q", got)
				}
				if diags[0].Found.Kind != scanner.TokenEOF {
					t.Errorf("found = %v", diags[0].Found)
				}
			},
		},
		{
			name:  "garbage member",
			input: "class A { 5 6 int x; }",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				class := unit.Classes[0].(*tree.ClassDecl)
				if len(class.Members) != 2 {
					t.Fatalf("got %d members", len(class.Members))
				}
				if got := badText(t, class.Members[0]); got != "5 6" {
					t.Errorf("span = %q", got)
				}
				if _, ok := class.Members[1].(*tree.VarDecl); !ok {
					t.Errorf("member 1 is %T", class.Members[1])
				}
			},
		},
		{
			name:  "method without body",
			input: "class A { void f() int x; }",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				class := unit.Classes[0].(*tree.ClassDecl)
				if len(class.Members) != 2 {
					t.Fatalf("got %d members", len(class.Members))
				}
				if _, ok := class.Members[0].(*tree.BadMethodDecl); !ok {
					t.Errorf("member 0 is %T", class.Members[0])
				}
				if diags[0].Expected != "method body" {
					t.Errorf("expected = %q", diags[0].Expected)
				}
			},
		},
		{
			name:  "bad statement inside method",
			input: "class A { void f() { x y; int z = 1; } }",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				method := unit.Classes[0].(*tree.ClassDecl).Members[0].(*tree.MethodDecl)
				body := method.Body.(*tree.Block)
				if len(body.Stmts) != 2 {
					t.Fatalf("got %d statements", len(body.Stmts))
				}
				if got := badText(t, body.Stmts[0]); got != "x y ;" {
					t.Errorf("span = %q", got)
				}
				if diags[0].Policy != recovery.Statement || diags[0].Skipped != 2 {
					t.Errorf("diagnostic = %+v", diags[0])
				}
				if _, ok := body.Stmts[1].(*tree.VarDecl); !ok {
					t.Errorf("statement 1 is %T", body.Stmts[1])
				}
			},
		},
		{
			name:  "local declaration with modifier",
			input: "class A { void f() { public int z; } }",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				body := unit.Classes[0].(*tree.ClassDecl).Members[0].(*tree.MethodDecl).Body.(*tree.Block)
				if len(body.Stmts) != 2 {
					t.Fatalf("got %d statements", len(body.Stmts))
				}
				if got := badText(t, body.Stmts[0]); got != "public" {
					t.Errorf("span = %q", got)
				}
				local := body.Stmts[1].(*tree.VarDecl)
				if local.Access != tree.AccessNone {
					t.Errorf("local access = %v", local.Access)
				}
			},
		},
		{
			name:  "malformed literal",
			input: "class A { int x = 12ab; }",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				field := unit.Classes[0].(*tree.ClassDecl).Members[0].(*tree.VarDecl)
				if got := badText(t, field.Init); got != "12ab" {
					t.Errorf("span = %q", got)
				}
				if !strings.Contains(diags[0].Message, "malformed literal") {
					t.Errorf("message = %q", diags[0].Message)
				}
				if diags[0].Policy != recovery.Expression {
					t.Errorf("policy = %v", diags[0].Policy)
				}
			},
		},
		{
			name:  "void parameter",
			input: "class A { void f(void x) {} int y; }",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				class := unit.Classes[0].(*tree.ClassDecl)
				if got := badText(t, class.Members[0]); got != "void f (" {
					t.Errorf("span = %q", got)
				}
				if diags[0].Expected != "parameter type" {
					t.Errorf("expected = %q", diags[0].Expected)
				}
				last := class.Members[len(class.Members)-1]
				if v, ok := last.(*tree.VarDecl); !ok || v.Name != "y" {
					t.Errorf("last member = %#v", last)
				}
			},
		},
		{
			name:  "void field",
			input: "class A { void y; int z; }",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				class := unit.Classes[0].(*tree.ClassDecl)
				if len(class.Members) != 2 {
					t.Fatalf("got %d members", len(class.Members))
				}
				if _, ok := class.Members[0].(*tree.BadVarDecl); !ok {
					t.Fatalf("member 0 is %T", class.Members[0])
				}
				if got := badText(t, class.Members[0]); got != "void y ;" {
					t.Errorf("span = %q", got)
				}
				if diags[0].Expected != "field type" || diags[0].Found.Kind != scanner.TokenVoid {
					t.Errorf("diagnostic = %+v", diags[0])
				}
				if v, ok := class.Members[1].(*tree.VarDecl); !ok || v.Name != "z" {
					t.Errorf("member 1 = %#v", class.Members[1])
				}
			},
		},
		{
			name:  "void local",
			input: "class A { void f() { void x = 1; x = 2; } }",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				body := unit.Classes[0].(*tree.ClassDecl).Members[0].(*tree.MethodDecl).Body.(*tree.Block)
				if len(body.Stmts) != 2 {
					t.Fatalf("got %d statements", len(body.Stmts))
				}
				if _, ok := body.Stmts[0].(*tree.BadVarDecl); !ok {
					t.Fatalf("statement 0 is %T", body.Stmts[0])
				}
				if got := badText(t, body.Stmts[0]); got != "void x = 1 ;" {
					t.Errorf("span = %q", got)
				}
				if diags[0].Expected != "type" || diags[0].Policy != recovery.Statement {
					t.Errorf("diagnostic = %+v", diags[0])
				}
				if _, ok := body.Stmts[1].(*tree.ExprStmt); !ok {
					t.Errorf("statement 1 is %T", body.Stmts[1])
				}
			},
		},
		{
			name:  "empty input",
			input: "",
			check: func(t *testing.T, unit *tree.CompilationUnit, diags []Diagnostic) {
				if unit.Package != nil || len(unit.Classes) != 0 || len(diags) != 0 {
					t.Errorf("unit = %#v, diags = %v", unit, diags)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, diags := parseUnit(t, tt.input)
			if len(diags) == 0 && tt.input != "" {
				t.Fatal("expected diagnostics")
			}
			tt.check(t, unit, diags)
		})
	}
}

func TestParseStatementRecovery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  tree.Stmt
	}{
		{
			name:  "errored then branch",
			input: "if (x) 5 5; else y = 1;",
			want: &tree.IfStmt{
				Cond: ident("x"),
				Then: &tree.BadStmt{},
				Else: assign("y", intLit(1)),
			},
		},
		{
			name:  "errored else branch",
			input: "if (x) y = 1; else ) ;",
			want: &tree.IfStmt{
				Cond: ident("x"),
				Then: assign("y", intLit(1)),
				Else: &tree.BadStmt{},
			},
		},
		{
			name:  "missing condition",
			input: "if () y = 1;",
			want: &tree.IfStmt{
				Cond: &tree.BadExpr{},
				Then: assign("y", intLit(1)),
			},
		},
		{
			name:  "missing assignment value",
			input: "x = ;",
			want:  assign("x", &tree.BadExpr{}),
		},
		{
			name:  "missing closing paren",
			input: "if (x y = 1;",
			want:  &tree.BadStmt{},
		},
		{
			name:  "nested blocks",
			input: "{ { x; } if (b) {} }",
			want: &tree.Block{Stmts: []tree.Stmt{
				&tree.Block{Stmts: []tree.Stmt{&tree.ExprStmt{X: ident("x")}}},
				&tree.IfStmt{Cond: ident("b"), Then: &tree.Block{}},
			}},
		},
		{
			name:  "right associative assignment",
			input: "a = b = c = true;",
			want: assign("a", &tree.AssignExpr{
				Target: ident("b"),
				Value:  &tree.AssignExpr{Target: ident("c"), Value: boolLit(true)},
			}),
		},
		{
			name:  "local declaration",
			input: "boolean done;",
			want:  &tree.VarDecl{Type: &tree.PrimitiveType{Kind: tree.TypeBoolean}, Name: "done"},
		},
	}

	opts := append(treeOpts, cmpopts.IgnoreTypes([]scanner.Token{}))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := New([]byte(tt.input)).ParseStatement()
			if diff := cmp.Diff(tt.want, stmt, opts); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		input string
		want  tree.Expr
	}{
		{"42", intLit(42)},
		{"false", boolLit(false)},
		{"x", ident("x")},
		{"x = 1", &tree.AssignExpr{Target: ident("x"), Value: intLit(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New([]byte(tt.input))
			x := p.ParseExpression()
			if diff := cmp.Diff(tt.want, x, treeOpts); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
			if len(p.Diagnostics()) != 0 {
				t.Errorf("unexpected diagnostics: %v", p.Diagnostics())
			}
		})
	}
}

func TestParseExpressionFailure(t *testing.T) {
	p := New([]byte("( 1"))
	x := p.ParseExpression()
	if _, ok := x.(*tree.BadExpr); !ok {
		t.Fatalf("got %T, want *tree.BadExpr", x)
	}
	if got := badText(t, x); got != "( 1" {
		t.Errorf("span = %q", got)
	}
}

func TestParseStatementTrailingInput(t *testing.T) {
	p := New([]byte("x; y;"))
	p.ParseStatement()
	diags := p.Diagnostics()
	if len(diags) != 1 || diags[0].Severity != SeverityWarning {
		t.Fatalf("diagnostics = %v", diags)
	}
	if diags[0].Found.Literal != "y" {
		t.Errorf("found = %v", diags[0].Found)
	}
}

func TestParserIsSingleUse(t *testing.T) {
	p := New([]byte("class A {}"))
	p.ParseCompilationUnit()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on reuse")
		}
	}()
	p.ParseCompilationUnit()
}

func TestMemberLookaheadConsumesNothing(t *testing.T) {
	tests := []struct {
		input  string
		method bool
	}{
		{"public void f()", true},
		{"int f(", true},
		{"int f = 1;", false},
		{"private boolean b;", false},
		{"public f()", false},
		{"5", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New([]byte(tt.input))
			p.start()
			before := p.tok
			pos := p.scanner.Position()

			if got := p.isMethodAhead(); got != tt.method {
				t.Errorf("isMethodAhead() = %v, want %v", got, tt.method)
			}
			if p.tok != before || p.scanner.Position() != pos || len(p.trail) != 0 {
				t.Errorf("lookahead moved the parser: tok %v -> %v", before, p.tok)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	unit, diags := ParseFile("A.mj", []byte("class A { int x = 1 }"))
	if len(unit.Classes) != 1 || len(diags) != 1 {
		t.Fatalf("classes = %d, diags = %d", len(unit.Classes), len(diags))
	}
	if diags[0].Pos.File != "A.mj" {
		t.Errorf("File = %q", diags[0].Pos.File)
	}
	if s := diags[0].String(); !strings.HasPrefix(s, "A.mj:1:21: error: expected") {
		t.Errorf("String() = %q", s)
	}
}

func TestParseMissingInitializer(t *testing.T) {
	unit, diags := parseUnit(t, "class A { int x = ; }")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}

	field, ok := unit.Classes[0].(*tree.ClassDecl).Members[0].(*tree.VarDecl)
	if !ok {
		t.Fatalf("member 0 is %T", unit.Classes[0].(*tree.ClassDecl).Members[0])
	}
	init, ok := field.Init.(*tree.BadExpr)
	if !ok {
		t.Fatalf("init is %T", field.Init)
	}
	if len(init.Tokens) != 0 {
		t.Errorf("skipped %q, want nothing", init.Text())
	}
	if init.At.Column != 19 || init.Span().Start != init.At {
		t.Errorf("placeholder at %v, span %v", init.At, init.Span())
	}
	if diags[0].Skipped != 0 || diags[0].Found.Kind != scanner.TokenSemicolon {
		t.Errorf("diagnostic = %+v", diags[0])
	}
}
