package evaluator

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/array"
	"github.com/dws-sandbox/basicscript/internal/ast"
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/objects"
	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// Run hoists every top-level Sub/Function/Class declaration into the
// registries (this dialect's declarations are visible throughout the unit
// regardless of source position) and then executes the program as one
// block.
func (e *Evaluator) Run(program *ast.Program) error {
	for _, s := range program.Statements {
		switch n := s.(type) {
		case *ast.ProcedureDecl:
			e.Procedures.Define(procedureDescriptor(n))
		case *ast.ClassDecl:
			e.Classes.Define(objects.NewClassDescriptor(n))
		}
	}
	block := &ast.BlockStatement{Statements: program.Statements}
	sig, err := e.execBlock(block)
	if err != nil {
		return err
	}
	if sig != nil && sig.Kind == sigGoto {
		return langerr.Newf(langerr.Syntax, program.Pos(), "label not found: %s", sig.Label)
	}
	return nil
}

func procedureDescriptor(n *ast.ProcedureDecl) *procedures.Descriptor {
	kind := procedures.Sub
	if n.Kind == ast.ProcFunction {
		kind = procedures.Function
	}
	return &procedures.Descriptor{
		Name:       n.Name.Value,
		Kind:       kind,
		Visibility: n.Visibility,
		Parameters: n.Parameters,
		Body:       n.Body,
	}
}

// buildLabelIndex maps every label name declared directly in a block to its
// statement index, built once per execBlock call to support Goto.
func buildLabelIndex(stmts []ast.Statement) map[string]int {
	var labels map[string]int
	for i, s := range stmts {
		if ls, ok := s.(*ast.LabelStatement); ok {
			if labels == nil {
				labels = make(map[string]int)
			}
			labels[strings.ToLower(ls.Name)] = i
		}
	}
	return labels
}

// execBlock runs a flat statement sequence. It resolves Goto against the
// block's own label index, jumping back or forward within the block, and
// otherwise propagates a Goto whose label is not here to the caller. It is
// also where the On Error Resume Next / Goto label handler state machine
// intercepts a resumable error: Resume Next advances past the faulting
// statement, Goto label jumps to the label (if declared in this same
// block), and any other error (or a non-resumable one) propagates.
func (e *Evaluator) execBlock(block *ast.BlockStatement) (*Signal, error) {
	if block == nil {
		return nil, nil
	}
	stmts := block.Statements
	labels := buildLabelIndex(stmts)

	i := 0
	for i < len(stmts) {
		if e.deadlineExceeded() {
			return nil, langerr.NewTimeout(stmts[i].Pos())
		}

		sig, err := e.exec(stmts[i])
		if err != nil {
			re := runtimeError(err, stmts[i].Pos())
			if re.Resumable && e.handler.mode == handlerResumeNext {
				e.Err.capture(re)
				i++
				continue
			}
			if re.Resumable && e.handler.mode == handlerGotoLabel {
				e.Err.capture(re)
				if idx, ok := labels[e.handler.label]; ok {
					e.resume = &resumeState{block: block, index: i}
					i = idx
					continue
				}
			}
			return nil, re
		}

		if sig != nil {
			switch sig.Kind {
			case sigGoto:
				if idx, ok := labels[sig.Label]; ok {
					i = idx
					continue
				}
				return sig, nil
			case sigResume:
				if e.resume != nil && e.resume.block == block {
					i = e.resume.index
					e.resume = nil
					continue
				}
				return sig, nil
			case sigResumeNext:
				if e.resume != nil && e.resume.block == block {
					i = e.resume.index + 1
					e.resume = nil
					continue
				}
				return sig, nil
			default:
				return sig, nil
			}
		}
		i++
	}
	return nil, nil
}

// exec executes a single statement, returning a pending control-flow
// signal for the enclosing construct to interpret.
func (e *Evaluator) exec(stmt ast.Statement) (*Signal, error) {
	switch n := stmt.(type) {
	case *ast.ProcedureDecl, *ast.ClassDecl:
		// Already hoisted by Run; declarations are no-ops in statement
		// position.
		return nil, nil
	case *ast.LabelStatement:
		return nil, nil
	case *ast.OptionExplicitStatement:
		e.OptionExplicit = true
		return nil, nil
	case *ast.DimStatement:
		return nil, e.execDim(n)
	case *ast.ReDimStatement:
		return nil, e.execReDim(n)
	case *ast.EraseStatement:
		return nil, e.execErase(n)
	case *ast.ConstStatement:
		return nil, e.execConst(n)
	case *ast.AssignStatement:
		return e.execAssign(n)
	case *ast.ExpressionStatement:
		if n.Expression == nil {
			return nil, nil
		}
		_, err := e.Eval(n.Expression)
		return nil, err
	case *ast.CallStatement:
		_, err := e.evalCallLike(n.Callee, n.Arguments, n.Pos())
		return nil, err
	case *ast.IfStatement:
		return e.execIf(n)
	case *ast.SelectCaseStatement:
		return e.execSelectCase(n)
	case *ast.DoLoopStatement:
		return e.execDoLoop(n)
	case *ast.WhileWendStatement:
		return e.execWhileWend(n)
	case *ast.ForStatement:
		return e.execFor(n)
	case *ast.ForEachStatement:
		return e.execForEach(n)
	case *ast.WithStatement:
		return e.execWith(n)
	case *ast.ExitStatement:
		return e.execExit(n), nil
	case *ast.OnErrorStatement:
		e.handler = newErrorHandler(n)
		if n.Mode == ast.OnErrorGotoZero {
			e.Err.Clear()
		}
		return nil, nil
	case *ast.ResumeStatement:
		return e.execResume(n)
	case *ast.GotoStatement:
		return gotoSignal(strings.ToLower(n.Label)), nil
	default:
		return nil, langerr.Newf(langerr.Syntax, stmt.Pos(), "evaluator: unhandled statement %T", stmt)
	}
}

func (e *Evaluator) execExit(n *ast.ExitStatement) *Signal {
	switch n.Kind {
	case ast.ExitSub:
		return exitSignal(sigExitSub)
	case ast.ExitFunction:
		return exitSignal(sigExitFunction)
	case ast.ExitProperty:
		return exitSignal(sigExitProperty)
	case ast.ExitDo:
		return exitSignal(sigExitDo)
	default:
		return exitSignal(sigExitFor)
	}
}

func (e *Evaluator) execResume(n *ast.ResumeStatement) (*Signal, error) {
	if e.resume == nil {
		return nil, langerr.New(langerr.InvalidProcedureCall, n.Pos())
	}
	if n.Next {
		return &Signal{Kind: sigResumeNext}, nil
	}
	return &Signal{Kind: sigResume}, nil
}

func (e *Evaluator) execIf(n *ast.IfStatement) (*Signal, error) {
	cond, err := e.Eval(n.Condition)
	if err != nil {
		return nil, err
	}
	b, err := values.ToBoolean(cond)
	if err != nil {
		return nil, runtimeError(err, n.Pos())
	}
	if b {
		return e.execBlock(n.Then)
	}
	for _, ei := range n.ElseIfs {
		c, err := e.Eval(ei.Condition)
		if err != nil {
			return nil, err
		}
		b, err := values.ToBoolean(c)
		if err != nil {
			return nil, runtimeError(err, n.Pos())
		}
		if b {
			return e.execBlock(ei.Then)
		}
	}
	if n.Else != nil {
		return e.execBlock(n.Else)
	}
	return nil, nil
}

func (e *Evaluator) execSelectCase(n *ast.SelectCaseStatement) (*Signal, error) {
	disc, err := e.Eval(n.Discriminant)
	if err != nil {
		return nil, err
	}
	for _, c := range n.Cases {
		matched, err := e.caseMatches(c, disc)
		if err != nil {
			return nil, err
		}
		if matched {
			return e.execBlock(c.Body)
		}
	}
	return nil, nil
}

func (e *Evaluator) caseMatches(c *ast.CaseClause, disc values.Value) (bool, error) {
	if c.IsElse {
		return true, nil
	}
	if c.IsOp != "" {
		v, err := e.Eval(c.IsValue)
		if err != nil {
			return false, err
		}
		result, err := e.applyBinaryOp(c.IsOp, disc, v, c.IsValue.Pos())
		if err != nil {
			return false, err
		}
		b, err := values.ToBoolean(result)
		if err != nil {
			return false, runtimeError(err, c.IsValue.Pos())
		}
		return b, nil
	}
	for _, expr := range c.Values {
		v, err := e.Eval(expr)
		if err != nil {
			return false, err
		}
		eq, err := values.Equal(disc, v)
		if err != nil {
			return false, runtimeError(err, expr.Pos())
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

func (e *Evaluator) execDoLoop(n *ast.DoLoopStatement) (*Signal, error) {
	test := func() (bool, error) {
		v, err := e.Eval(n.Condition)
		if err != nil {
			return false, err
		}
		b, err := values.ToBoolean(v)
		if err != nil {
			return false, runtimeError(err, n.Pos())
		}
		return b, nil
	}
	for {
		if e.deadlineExceeded() {
			return nil, langerr.NewTimeout(n.Pos())
		}
		if n.Test == ast.DoLoopPreWhile || n.Test == ast.DoLoopPreUntil {
			ok, err := test()
			if err != nil {
				return nil, err
			}
			if n.Test == ast.DoLoopPreUntil {
				ok = !ok
			}
			if !ok {
				break
			}
		}

		sig, err := e.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			if sig.Kind == sigExitDo {
				break
			}
			return sig, nil
		}

		if n.Test == ast.DoLoopPostWhile || n.Test == ast.DoLoopPostUntil {
			ok, err := test()
			if err != nil {
				return nil, err
			}
			if n.Test == ast.DoLoopPostUntil {
				ok = !ok
			}
			if !ok {
				break
			}
		}
	}
	return nil, nil
}

func (e *Evaluator) execWhileWend(n *ast.WhileWendStatement) (*Signal, error) {
	for {
		if e.deadlineExceeded() {
			return nil, langerr.NewTimeout(n.Pos())
		}
		v, err := e.Eval(n.Condition)
		if err != nil {
			return nil, err
		}
		b, err := values.ToBoolean(v)
		if err != nil {
			return nil, runtimeError(err, n.Pos())
		}
		if !b {
			break
		}
		sig, err := e.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		// While/Wend has no Exit keyword of its own; any signal reaching
		// here belongs to an enclosing construct.
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

func (e *Evaluator) execFor(n *ast.ForStatement) (*Signal, error) {
	startV, err := e.Eval(n.Start)
	if err != nil {
		return nil, err
	}
	endV, err := e.Eval(n.End)
	if err != nil {
		return nil, err
	}
	var stepV values.Value = values.LongValue{Value: 1}
	if n.Step != nil {
		stepV, err = e.Eval(n.Step)
		if err != nil {
			return nil, err
		}
	}
	start, err := values.ToDouble(startV)
	if err != nil {
		return nil, runtimeError(err, n.Pos())
	}
	end, err := values.ToDouble(endV)
	if err != nil {
		return nil, runtimeError(err, n.Pos())
	}
	step, err := values.ToDouble(stepV)
	if err != nil {
		return nil, runtimeError(err, n.Pos())
	}
	if step == 0 {
		return nil, langerr.New(langerr.InvalidProcedureCall, n.Pos())
	}

	whole := func(f float64) bool { return f == float64(int64(f)) }
	useLong := whole(start) && whole(end) && whole(step)
	mk := func(f float64) values.Value {
		if useLong {
			return values.LongValue{Value: int32(f)}
		}
		return values.DoubleValue{Value: f}
	}

	if err := e.assignIdentifier(n.Variable.Value, mk(start), n.Variable.Pos()); err != nil {
		return nil, err
	}
	for {
		if e.deadlineExceeded() {
			return nil, langerr.NewTimeout(n.Pos())
		}
		cur, _ := e.Scope.Get(n.Variable.Value)
		curF, err := values.ToDouble(cur)
		if err != nil {
			return nil, runtimeError(err, n.Pos())
		}
		if step > 0 && curF > end {
			break
		}
		if step < 0 && curF < end {
			break
		}

		sig, err := e.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			if sig.Kind == sigExitFor {
				break
			}
			return sig, nil
		}

		cur, _ = e.Scope.Get(n.Variable.Value)
		curF, err = values.ToDouble(cur)
		if err != nil {
			return nil, runtimeError(err, n.Pos())
		}
		if err := e.assignIdentifier(n.Variable.Value, mk(curF+step), n.Variable.Pos()); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// enumerable is implemented by objects that want For Each support without
// internal/values or internal/evaluator depending on their concrete type
// (internal/builtin's Dictionary, Matches and SubMatches types and
// pkg/hostbridge's wrapped host maps satisfy this structurally).
type enumerable interface {
	Enumerate() []values.Value
}

func (e *Evaluator) execForEach(n *ast.ForEachStatement) (*Signal, error) {
	collection, err := e.Eval(n.Collection)
	if err != nil {
		return nil, err
	}
	items, err := e.enumerate(collection, n.Pos())
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if e.deadlineExceeded() {
			return nil, langerr.NewTimeout(n.Pos())
		}
		if err := e.assignIdentifier(n.Variable.Value, item, n.Variable.Pos()); err != nil {
			return nil, err
		}
		sig, err := e.execBlock(n.Body)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			if sig.Kind == sigExitFor {
				break
			}
			return sig, nil
		}
	}
	return nil, nil
}

// enumerate expands a For Each collection expression into its member
// values: an Array yields its elements in row-major order, an Object
// yields whatever its Enumerate method reports (internal/builtin's
// Dictionary, Matches and SubMatches types, pkg/hostbridge's host maps),
// anything else is a type mismatch.
func (e *Evaluator) enumerate(v values.Value, pos token.Position) ([]values.Value, error) {
	switch t := v.(type) {
	case values.ArrayValue:
		dyn, ok := t.Array.(*array.Dynamic)
		if !ok || dyn == nil {
			return nil, nil
		}
		return enumerateDynamic(dyn), nil
	case values.ObjectValue:
		if t.IsNothing() {
			return nil, langerr.New(langerr.ObjectRequired, pos)
		}
		if en, ok := t.Instance.(enumerable); ok {
			return en.Enumerate(), nil
		}
		return nil, langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, pos,
			"object does not support For Each enumeration")
	default:
		return nil, langerr.New(langerr.TypeMismatch, pos)
	}
}

// enumerateDynamic walks every index combination of dyn in row-major order,
// the same nested-counter technique internal/array's own ReDim Preserve
// uses to copy overlapping ranges.
func enumerateDynamic(dyn *array.Dynamic) []values.Value {
	sizes := dyn.Dims()
	if len(sizes) == 0 {
		return nil
	}
	total := 1
	for _, n := range sizes {
		total *= n
	}
	items := make([]values.Value, 0, total)
	indices := make([]int, len(sizes))
	for i := range indices {
		indices[i] = dyn.LowerBound(i)
	}
	for count := 0; count < total; count++ {
		v, err := dyn.Get(indices...)
		if err == nil {
			items = append(items, v)
		}
		dim := len(sizes) - 1
		for dim >= 0 {
			indices[dim]++
			if indices[dim] < dyn.LowerBound(dim)+sizes[dim] {
				break
			}
			indices[dim] = dyn.LowerBound(dim)
			dim--
		}
	}
	return items
}

func (e *Evaluator) execWith(n *ast.WithStatement) (*Signal, error) {
	target, err := e.Eval(n.Target)
	if err != nil {
		return nil, err
	}
	e.With.Push(target)
	sig, err := e.execBlock(n.Body)
	e.With.Pop()
	return sig, err
}

func (e *Evaluator) execDim(n *ast.DimStatement) error {
	for _, d := range n.Declarators {
		if len(d.Dims) == 0 {
			e.Scope.Define(d.Name.Value, values.Empty)
			continue
		}
		sizes := make([]int, len(d.Dims))
		lowers := make([]int, len(d.Dims))
		for i, dim := range d.Dims {
			v, err := e.Eval(dim)
			if err != nil {
				return err
			}
			size, err := values.ToLong(v)
			if err != nil {
				return runtimeError(err, d.Name.Pos())
			}
			sizes[i] = int(size) + 1
		}
		dyn := array.NewBounded(lowers, sizes)
		e.Scope.DefineArray(d.Name.Value, values.ArrayValue{Array: dyn})
	}
	return nil
}

func (e *Evaluator) execReDim(s *ast.ReDimStatement) error {
	for _, t := range s.Targets {
		sizes := make([]int, len(t.Dims))
		lowers := make([]int, len(t.Dims))
		for i, dim := range t.Dims {
			v, err := e.Eval(dim)
			if err != nil {
				return err
			}
			size, err := values.ToLong(v)
			if err != nil {
				return runtimeError(err, t.Name.Pos())
			}
			sizes[i] = int(size) + 1
		}

		var dyn *array.Dynamic
		if existing, ok := e.Scope.Get(t.Name.Value); ok {
			if av, ok := existing.(values.ArrayValue); ok {
				dyn, _ = av.Array.(*array.Dynamic)
			}
		}
		if dyn == nil {
			e.Scope.DefineArray(t.Name.Value, values.ArrayValue{Array: array.NewBounded(lowers, sizes)})
			continue
		}
		if s.Preserve {
			if err := dyn.ReDimPreserve(lowers, sizes); err != nil {
				return langerr.SubscriptOutOfRangef(t.Name.Pos(), "%s", err.Error())
			}
		} else {
			dyn.ReDim(lowers, sizes)
		}
	}
	return nil
}

func (e *Evaluator) execErase(s *ast.EraseStatement) error {
	for _, name := range s.Names {
		v, ok := e.Scope.Get(name.Value)
		if !ok {
			continue
		}
		av, ok := v.(values.ArrayValue)
		if !ok {
			continue
		}
		dyn, ok := av.Array.(*array.Dynamic)
		if !ok || dyn == nil {
			continue
		}
		sizes := dyn.Dims()
		lowers := make([]int, len(sizes))
		for i := range sizes {
			lowers[i] = dyn.LowerBound(i)
		}
		dyn.ReDim(lowers, sizes)
	}
	return nil
}

func (e *Evaluator) execConst(s *ast.ConstStatement) error {
	for _, d := range s.Declarators {
		v, err := e.Eval(d.Value)
		if err != nil {
			return err
		}
		e.Scope.DefineConst(d.Name.Value, v)
	}
	return nil
}
