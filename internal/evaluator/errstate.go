package evaluator

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/langerr"
)

// ErrRecord mirrors the script-visible Err object: the number/source/
// description of the most recently captured runtime error. Number is 0 when
// no error is pending, the state Err.Clear restores.
type ErrRecord struct {
	Number      int32
	Source      string
	Description string
}

// Clear resets the record to its no-error state.
func (e *ErrRecord) Clear() { *e = ErrRecord{} }

func (e *ErrRecord) capture(err *langerr.RuntimeError) {
	e.Number = int32(err.Code)
	e.Source = err.Source
	e.Description = err.Description
}

// handlerMode is the interpreter's current On Error disposition. The zero
// value is handlerPropagate (no handler installed), matching a script that
// has not yet executed an On Error statement.
type handlerMode int

const (
	handlerPropagate handlerMode = iota
	handlerResumeNext
	handlerGotoLabel
)

// errorHandler is the interpreter's single On Error state, per spec.md §3's
// "Interpreter state" (one handler flag/label pair, not one per procedure).
type errorHandler struct {
	mode  handlerMode
	label string
}

func newErrorHandler(n *ast.OnErrorStatement) errorHandler {
	switch n.Mode {
	case ast.OnErrorResumeNext:
		return errorHandler{mode: handlerResumeNext}
	case ast.OnErrorGotoLabel:
		return errorHandler{mode: handlerGotoLabel, label: strings.ToLower(n.Label)}
	default:
		return errorHandler{mode: handlerPropagate}
	}
}

// resumeState records where a GotoLabel handler should return execution on
// Resume / Resume Next: the block it interrupted (identified by AST
// pointer) and the index of the statement that raised. Only one is ever
// active at a time, matching the single-Err-slot, non-reentrant handler
// model this interpreter implements.
type resumeState struct {
	block *ast.BlockStatement
	index int
}
