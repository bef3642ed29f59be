package script

import (
	"io"
	"time"

	"github.com/dws-sandbox/basicscript/internal/builtin"
)

// config collects the functional-option settings New builds an Engine
// from. The option names/call shape (New(opts...), WithOutput) are
// grounded on pkg/dwscript/*_test.go's functional-options constructor
// usage; the specific option set (MaxExecutionTime/OptionExplicit/
// InjectGlobals) is spec.md §6's own enumerated Options list.
type config struct {
	output         io.Writer
	input          io.Reader
	host           builtin.Host
	maxExecTime    time.Duration
	optionExplicit bool
	injectGlobals  bool
	onGlobals      func(names []string)
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithOutput sets the writer Print-style output and the default host's
// MsgBox go to. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithInput sets the reader the default host's InputBox reads from.
// Defaults to an empty reader (InputBox always returns its default value).
func WithInput(r io.Reader) Option {
	return func(c *config) { c.input = r }
}

// WithHost overrides the Dialog collaborator entirely (spec.md §1's "UI
// side effects... collaborators supply a prompt/alert/read-line
// capability"), bypassing WithOutput/WithInput's ConsoleHost.
func WithHost(h builtin.Host) Option {
	return func(c *config) { c.host = h }
}

// WithMaxExecutionTime sets spec.md §6's maxExecutionTime option: the
// wall-clock budget checked at statement and loop-iteration boundaries.
// Zero (the default) means unlimited.
func WithMaxExecutionTime(d time.Duration) Option {
	return func(c *config) { c.maxExecTime = d }
}

// WithOptionExplicit sets spec.md §6's optionExplicit option: require Dim
// before assignment. An `Option Explicit` statement in the script itself
// also enables this for the remainder of the run.
func WithOptionExplicit(explicit bool) Option {
	return func(c *config) { c.optionExplicit = explicit }
}

// WithInjectGlobals sets spec.md §6's injectGlobals option and the
// callback invoked with the current set of user-procedure names after
// each AddCode/ExecuteStatement call when enabled. The browser host this
// option originally targets (mirroring into a DOM global namespace) is
// out of this package's scope per spec.md §1; onChanged is this port's
// host-agnostic equivalent hook.
func WithInjectGlobals(onChanged func(names []string)) Option {
	return func(c *config) {
		c.injectGlobals = true
		c.onGlobals = onChanged
	}
}
