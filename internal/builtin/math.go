package builtin

import (
	"math"
	"math/rand"
	"time"

	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

func rngTimeSeed() int64 { return time.Now().UnixNano() }

// rng is the shared Rnd/Randomize source, module-level because the dialect
// has exactly one such generator per interpreter and the built-in library
// has no per-interpreter state to hang it off otherwise (mirrors the
// teacher's Context.RandSource() seam, minus the indirection, since this
// port's Builtin signature carries no context).
var rng = rand.New(rand.NewSource(1))

// RegisterMath registers the Math category: spec.md §4.4 names abs, sign,
// sqrt, int/fix, round, trig, exp/log, rnd and randomize.
func RegisterMath(r *procedures.Registry) {
	def := func(name string, fn procedures.Builtin) {
		r.Define(&procedures.Descriptor{Name: name, Kind: procedures.Function, Fn: fn})
	}
	def("Abs", builtinAbs)
	def("Sgn", builtinSgn)
	def("Sqr", builtinSqr)
	def("Int", builtinInt)
	def("Fix", builtinFix)
	def("Round", builtinRound)
	def("Sin", unaryMath(math.Sin))
	def("Cos", unaryMath(math.Cos))
	def("Tan", unaryMath(math.Tan))
	def("Atn", unaryMath(math.Atan))
	def("Exp", builtinExp)
	def("Log", builtinLog)
	def("Rnd", builtinRnd)
	def("Randomize", builtinRandomize)
}

func builtinAbs(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Abs", args, 1); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if l, ok := args[0].(values.LongValue); ok {
		if l.Value == math.MinInt32 {
			return nil, langerrOverflow()
		}
		if l.Value < 0 {
			return values.LongValue{Value: -l.Value}, nil
		}
		return l, nil
	}
	return values.DoubleValue{Value: math.Abs(f)}, nil
}

func builtinSgn(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Sgn", args, 1); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	switch {
	case f > 0:
		return values.LongValue{Value: 1}, nil
	case f < 0:
		return values.LongValue{Value: -1}, nil
	default:
		return values.LongValue{Value: 0}, nil
	}
}

func builtinSqr(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Sqr", args, 1); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if f < 0 {
		return nil, invalidCall("Sqr: negative argument %g", f)
	}
	return values.DoubleValue{Value: math.Sqrt(f)}, nil
}

// builtinInt implements Int: floor toward negative infinity.
func builtinInt(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Int", args, 1); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.DoubleValue{Value: math.Floor(f)}, nil
}

// builtinFix implements Fix: truncation toward zero.
func builtinFix(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Fix", args, 1); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.DoubleValue{Value: math.Trunc(f)}, nil
}

// builtinRound implements Round(number[, decimals]) with banker's-free
// half-away-from-zero rounding at the requested decimal count.
func builtinRound(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("Round", args, 1, 2); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	decimals, err := optLong(args, 1, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	scale := math.Pow(10, float64(decimals))
	return values.DoubleValue{Value: math.Round(f*scale) / scale}, nil
}

func unaryMath(fn func(float64) float64) func([]values.Value, []*values.Value) (values.Value, error) {
	return func(args []values.Value, _ []*values.Value) (values.Value, error) {
		if err := exactly("trig function", args, 1); err != nil {
			return nil, err
		}
		f, err := argDouble(args, 0)
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		return values.DoubleValue{Value: fn(f)}, nil
	}
}

func builtinExp(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Exp", args, 1); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.DoubleValue{Value: math.Exp(f)}, nil
}

func builtinLog(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Log", args, 1); err != nil {
		return nil, err
	}
	f, err := argDouble(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if f <= 0 {
		return nil, invalidCall("Log: non-positive argument %g", f)
	}
	return values.DoubleValue{Value: math.Log(f)}, nil
}

// builtinRnd implements Rnd([n]): n<0 reseeds deterministically from n,
// n==0 repeats the previous value, n>0 or omitted draws the next value in
// [0,1), matching the classic dialect's three-way contract.
var lastRnd float64

func builtinRnd(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("Rnd", args, 0, 1); err != nil {
		return nil, err
	}
	n, err := optDouble(args, 0, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	switch {
	case n < 0:
		rng = rand.New(rand.NewSource(int64(n)))
		lastRnd = rng.Float64()
	case n == 0:
		// repeats lastRnd
	default:
		lastRnd = rng.Float64()
	}
	return values.SingleValue{Value: float32(lastRnd)}, nil
}

func builtinRandomize(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("Randomize", args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 1 {
		seed, err := argDouble(args, 0)
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		rng = rand.New(rand.NewSource(int64(seed)))
	} else {
		rng = rand.New(rand.NewSource(rngTimeSeed()))
	}
	return values.Empty, nil
}
