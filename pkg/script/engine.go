// Package script implements spec.md §6's embedding surface: the host-facing
// API that wraps the lexer/parser/evaluator into addCode/executeStatement/
// run/eval/getVariable/setVariable/registerFunction/addObject plus error
// inspection, over a functional-options Engine constructor.
//
// Grounded on pkg/dwscript's New(opts...)/Compile/Eval/RegisterFunction
// call shapes as exercised by its *_test.go files (its own non-test
// sources were not retained in the pack); the implementation here is
// original to this port, built directly on internal/evaluator,
// internal/parser, internal/lexer, and pkg/hostbridge.
package script

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/builtin"
	"github.com/dws-sandbox/basicscript/internal/evaluator"
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/lexer"
	"github.com/dws-sandbox/basicscript/internal/parser"
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/srcerr"
	"github.com/dws-sandbox/basicscript/internal/values"
	"github.com/dws-sandbox/basicscript/pkg/hostbridge"
)

// Engine is one interpreter session: spec.md §3's Interpreter state plus
// the host collaborators (output/dialog) and options configured at
// construction. Two Engines share nothing.
type Engine struct {
	interp *evaluator.Interpreter
	eval   *evaluator.Evaluator
	host   builtin.Host
	cfg    config

	lastErr *ScriptError
}

// ScriptError is spec.md §6's error surface: every top-level call either
// returns a value or reports a failure carrying code/description/source
// and, when available, the script line/column that produced it.
type ScriptError struct {
	Code        int32
	Description string
	Source      string
	Line        int
	Column      int
}

func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("run-time error '%d': %s (at %d:%d)", e.Code, e.Description, e.Line, e.Column)
	}
	return fmt.Sprintf("run-time error '%d': %s", e.Code, e.Description)
}

func newScriptError(err error) *ScriptError {
	if err == nil {
		return nil
	}
	if re, ok := err.(*langerr.RuntimeError); ok {
		return &ScriptError{
			Code:        int32(re.Code),
			Description: re.Description,
			Source:      re.Source,
			Line:        re.Pos.Line,
			Column:      re.Pos.Column,
		}
	}
	return &ScriptError{Code: -1, Description: err.Error()}
}

// New builds an Engine with fresh interpreter state and the registries for
// every built-in category plus the RegExp/Dictionary host classes.
func New(opts ...Option) (*Engine, error) {
	cfg := config{output: io.Discard, input: strings.NewReader("")}
	for _, opt := range opts {
		opt(&cfg)
	}

	host := cfg.host
	if host == nil {
		host = builtin.NewConsoleHost(cfg.output, cfg.input)
	}

	in, ev := evaluator.NewInterpreter()
	in.OptionExplicit = cfg.optionExplicit

	builtin.RegisterAll(in.Procedures, host)
	for name, factory := range builtin.ClassFactories() {
		in.RegisterBuiltinClass(name, factory)
	}

	return &Engine{interp: in, eval: ev, host: host, cfg: cfg}, nil
}

// AddCode parses and executes a unit of source in the global scope;
// Sub/Function/Class declarations persist for later AddCode/
// ExecuteStatement/Run/Eval calls on the same Engine.
func (e *Engine) AddCode(text string) error {
	return e.runProgram(text)
}

// ExecuteStatement parses and executes a single statement (or
// `:`-separated sequence) in the current scope. This dialect has no unit
// boundary distinct from AddCode's (both hoist declarations and run the
// parsed block against the interpreter's current scope), so the two share
// an implementation; they are kept as separate methods to match spec.md
// §6's embedding surface one-for-one.
func (e *Engine) ExecuteStatement(text string) error {
	return e.runProgram(text)
}

// armDeadline resets the wall-clock budget (spec.md §6's maxExecutionTime)
// for the call about to run, so each AddCode/ExecuteStatement/Run/Eval
// gets its own fresh budget rather than sharing one across the Engine's
// lifetime.
func (e *Engine) armDeadline() {
	if e.cfg.maxExecTime > 0 {
		e.interp.Deadline = time.Now().Add(e.cfg.maxExecTime)
	}
}

func (e *Engine) runProgram(text string) error {
	e.armDeadline()
	program, err := e.parse(text)
	if err != nil {
		return e.fail(err)
	}
	if err := e.eval.Run(program); err != nil {
		return e.fail(err)
	}
	e.notifyGlobals()
	return nil
}

// Run looks up and invokes a user procedure by name with args, returning
// its result bridged back to a Go value (Empty/Nothing becomes nil).
func (e *Engine) Run(procedureName string, args ...any) (any, error) {
	e.armDeadline()
	vargs := make([]values.Value, len(args))
	for i, a := range args {
		v, err := hostbridge.ToVariant(a)
		if err != nil {
			return nil, err
		}
		vargs[i] = v
	}
	result, err := e.eval.CallNamed(procedureName, vargs)
	if err != nil {
		return nil, e.fail(err)
	}
	return hostbridge.FromVariant(result)
}

// Eval parses and evaluates a single expression, returning its value
// bridged to a Go value. The input is wrapped in parentheses so the
// parser's assignment/call-without-parens disambiguation (which only
// applies to whole statements) never kicks in.
func (e *Engine) Eval(expression string) (any, error) {
	e.armDeadline()
	program, err := e.parse("(" + expression + ")")
	if err != nil {
		return nil, e.fail(err)
	}
	if len(program.Statements) != 1 {
		return nil, e.fail(fmt.Errorf("script: %q is not a single expression", expression))
	}
	exprStmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		return nil, e.fail(fmt.Errorf("script: %q is not an expression", expression))
	}
	result, err := e.eval.Eval(exprStmt.Expression)
	if err != nil {
		return nil, e.fail(err)
	}
	return hostbridge.FromVariant(result)
}

// GetVariable reads a name from the global scope, bridged to a Go value.
// An undefined name reads as nil (Empty) under the same rule the evaluator
// applies to a bare identifier reference when Option Explicit is off; with
// it on, an undeclared name is an error.
func (e *Engine) GetVariable(name string) (any, error) {
	v, ok := e.interp.Global.Get(name)
	if !ok {
		if e.cfg.optionExplicit {
			return nil, fmt.Errorf("script: variable %q is not declared", name)
		}
		return nil, nil
	}
	return hostbridge.FromVariant(v)
}

// SetVariable writes a host value into the global scope under name,
// declaring it if not already present.
func (e *Engine) SetVariable(name string, value any) error {
	v, err := hostbridge.ToVariant(value)
	if err != nil {
		return err
	}
	return e.interp.Global.SetOrDefine(name, v)
}

// RegisterFunction exposes a Go callable to scripts as a global Function,
// wrapped via pkg/hostbridge's reflection-based argument/result bridge.
func (e *Engine) RegisterFunction(name string, fn any) error {
	wrapped, err := hostbridge.WrapGoFunc(fn)
	if err != nil {
		return err
	}
	e.interp.Procedures.Define(&procedures.Descriptor{
		Name: name,
		Kind: procedures.Function,
		Fn:   wrapped,
	})
	return nil
}

// AddObject binds a host value to a global name. When includeMembers is
// set, the object's exported fields (as global variables) and methods (as
// global functions) are also bound as top-level names (spec.md §6).
func (e *Engine) AddObject(name string, object any, includeMembers bool) error {
	v, err := hostbridge.ToVariant(object)
	if err != nil {
		return err
	}
	e.interp.Global.Define(name, v)
	if !includeMembers {
		return nil
	}
	fields, methods := hostbridge.Members(object)
	for fname, fv := range fields {
		if err := e.SetVariable(fname, fv); err != nil {
			return err
		}
	}
	for mname, mv := range methods {
		if err := e.RegisterFunction(mname, mv); err != nil {
			return err
		}
	}
	return nil
}

// LastError returns the most recently captured error, or nil if none is
// pending (spec.md §6's `lastError`).
func (e *Engine) LastError() *ScriptError { return e.lastErr }

// ClearError resets the error slot and the script's Err record (spec.md
// §6's `clearError()`); the active On Error handler is left as it is.
func (e *Engine) ClearError() {
	e.lastErr = nil
	e.interp.Err.Clear()
}

func (e *Engine) fail(err error) error {
	e.lastErr = newScriptError(err)
	return err
}

func (e *Engine) parse(text string) (*ast.Program, error) {
	l := lexer.New(text)
	p := parser.New(l)
	program := p.ParseProgram()
	if cerr := e.parseErrors(p, text); cerr != nil {
		return nil, cerr
	}
	return program, nil
}

func (e *Engine) parseErrors(p *parser.Parser, source string) error {
	var cerrs []*srcerr.CompilerError
	for _, le := range p.LexerErrors() {
		cerrs = append(cerrs, srcerr.New(le.Pos, le.Message, source, ""))
	}
	for _, pe := range p.Errors() {
		cerrs = append(cerrs, srcerr.New(pe.Pos, pe.Message, source, ""))
	}
	if len(cerrs) == 0 {
		return nil
	}
	return fmt.Errorf("%s", srcerr.FormatErrors(cerrs))
}

func (e *Engine) notifyGlobals() {
	if !e.cfg.injectGlobals || e.cfg.onGlobals == nil {
		return
	}
	e.cfg.onGlobals(e.interp.Procedures.Names())
}
