package parser

import (
	"fmt"

	"github.com/dhamidi/minij/lang/recovery"
	"github.com/dhamidi/minij/lang/scanner"
)

type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// SyntaxError is returned by grammar rules when the upcoming token does not
// fit. It never escapes the parser; the enclosing production turns it into
// an error placeholder and a Diagnostic.
type SyntaxError struct {
	Expected string
	Found    scanner.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Found.Span.Start, e.message())
}

func (e *SyntaxError) message() string {
	if e.Found.Kind == scanner.TokenIllegal {
		return fmt.Sprintf("malformed literal %q, expected %s", e.Found.Literal, e.Expected)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// Diagnostic records one recovery event.
type Diagnostic struct {
	Severity Severity
	Message  string
	// Expected names the construct or token the parser was looking for.
	Expected string
	Found    scanner.Token
	Pos      scanner.Position
	// Policy is the recovery policy that was applied.
	Policy recovery.Policy
	// Skipped is the number of tokens recovery consumed after the failure.
	Skipped int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}
