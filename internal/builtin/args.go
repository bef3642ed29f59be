package builtin

import (
	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// invalidCall raises InvalidProcedureCall, the built-in library's catch-all
// for arity/domain violations; built-ins never see a token.Position (their
// arguments are already evaluated by the time they run), so every error
// constructed here carries the zero Position.
func invalidCall(format string, args ...any) error {
	return langerr.Newf(langerr.InvalidProcedureCall, token.Position{}, format, args...)
}

func typeMismatch(format string, args ...any) error {
	return langerr.Newf(langerr.TypeMismatch, token.Position{}, format, args...)
}

func langerrOverflow() error {
	return langerr.New(langerr.Overflow, token.Position{})
}

// exactly checks args has precisely n entries.
func exactly(name string, args []values.Value, n int) error {
	if len(args) != n {
		return invalidCall("%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// between checks args has between min and max entries, inclusive.
func between(name string, args []values.Value, min, max int) error {
	if len(args) < min || len(args) > max {
		return invalidCall("%s expects %d to %d arguments, got %d", name, min, max, len(args))
	}
	return nil
}

func atLeast(name string, args []values.Value, min int) error {
	if len(args) < min {
		return invalidCall("%s expects at least %d argument(s), got %d", name, min, len(args))
	}
	return nil
}

func argString(args []values.Value, i int) (string, error) {
	return values.ToString(args[i])
}

func argDouble(args []values.Value, i int) (float64, error) {
	return values.ToDouble(args[i])
}

func argLong(args []values.Value, i int) (int32, error) {
	return values.ToLong(args[i])
}

func argBool(args []values.Value, i int) (bool, error) {
	return values.ToBoolean(args[i])
}

// optString returns args[i] coerced to a string, or def if i is out of range.
func optString(args []values.Value, i int, def string) (string, error) {
	if i >= len(args) {
		return def, nil
	}
	return argString(args, i)
}

func optLong(args []values.Value, i int, def int32) (int32, error) {
	if i >= len(args) {
		return def, nil
	}
	return argLong(args, i)
}

func optDouble(args []values.Value, i int, def float64) (float64, error) {
	if i >= len(args) {
		return def, nil
	}
	return argDouble(args, i)
}

func optBool(args []values.Value, i int, def bool) (bool, error) {
	if i >= len(args) {
		return def, nil
	}
	return argBool(args, i)
}
