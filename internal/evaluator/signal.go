package evaluator

// SignalKind names a control-flow signal that unwinds out of statement
// execution toward the construct that consumes it: Exit <kind>, Goto, and
// the implicit procedure-return path. Grounded on the teacher's
// ControlFlowKind/ControlFlow state machine in its evaluator package, but
// threaded as an explicit return value from exec instead of mutated shared
// context state, matching the (value, error) idiom the rest of this port
// uses throughout internal/values, internal/array, and internal/runtime.
type SignalKind int

const (
	sigNone SignalKind = iota
	sigExitSub
	sigExitFunction
	sigExitProperty
	sigExitDo
	sigExitFor
	sigGoto
	sigResume
	sigResumeNext
)

// Signal carries a pending control-flow transfer up through nested exec
// calls until the construct it targets consumes it.
type Signal struct {
	Kind  SignalKind
	Label string // set only for sigGoto
}

func exitSignal(kind SignalKind) *Signal { return &Signal{Kind: kind} }

func gotoSignal(label string) *Signal { return &Signal{Kind: sigGoto, Label: label} }
