package builtin

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegExp is the host collaborator backing `New RegExp`: spec.md §4.4's
// RegExp category (Pattern/Global/IgnoreCase/Multiline, Test/Execute/
// Replace). It wraps dlclark/regexp2 rather than stdlib regexp/RE2, since
// the dialect's regex surface allows backreferences RE2 cannot express.
// The compiled Regexp is rebuilt lazily the next time it is needed after a
// property write invalidates it, rather than on every property set.
type RegExp struct {
	pattern    string
	global     bool
	ignoreCase bool
	multiline  bool

	compiled *regexp2.Regexp
	stale    bool
}

// NewRegExp constructs a RegExp with the documented defaults: an empty
// pattern, Global and IgnoreCase false, Multiline false.
func NewRegExp() *RegExp {
	return &RegExp{stale: true}
}

func (re *RegExp) ClassName() string { return "RegExp" }
func (re *RegExp) String() string    { return "/" + re.pattern + "/" }

func (re *RegExp) Get(name string) (values.Value, error) {
	switch strings.ToLower(name) {
	case "pattern":
		return values.StringValue{Value: re.pattern}, nil
	case "global":
		return values.BooleanValue{Value: re.global}, nil
	case "ignorecase":
		return values.BooleanValue{Value: re.ignoreCase}, nil
	case "multiline":
		return values.BooleanValue{Value: re.multiline}, nil
	default:
		return nil, regexpNoSuchMember(name)
	}
}

func (re *RegExp) Set(name string, v values.Value) error {
	switch strings.ToLower(name) {
	case "pattern":
		s, err := values.ToString(v)
		if err != nil {
			return err
		}
		re.pattern = s
		re.stale = true
		return nil
	case "global":
		b, err := values.ToBoolean(v)
		if err != nil {
			return err
		}
		re.global = b
		return nil
	case "ignorecase":
		b, err := values.ToBoolean(v)
		if err != nil {
			return err
		}
		re.ignoreCase = b
		re.stale = true
		return nil
	case "multiline":
		b, err := values.ToBoolean(v)
		if err != nil {
			return err
		}
		re.multiline = b
		re.stale = true
		return nil
	default:
		return regexpNoSuchMember(name)
	}
}

func (re *RegExp) Call(name string, args []values.Value) (values.Value, error) {
	switch strings.ToLower(name) {
	case "test":
		if err := exactly("Test", args, 1); err != nil {
			return nil, err
		}
		s, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		rx, err := re.compile()
		if err != nil {
			return nil, err
		}
		ok, err := rx.MatchString(s)
		if err != nil {
			return nil, invalidCall("RegExp.Test: %s", err.Error())
		}
		return values.BooleanValue{Value: ok}, nil
	case "execute":
		if err := exactly("Execute", args, 1); err != nil {
			return nil, err
		}
		s, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		return re.execute(s)
	case "replace":
		if err := exactly("Replace", args, 2); err != nil {
			return nil, err
		}
		s, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		repl, err := argString(args, 1)
		if err != nil {
			return nil, err
		}
		return re.replace(s, repl)
	default:
		return nil, regexpNoSuchMethod(name)
	}
}

// compile (re)builds the underlying regexp2.Regexp when the pattern or the
// IgnoreCase/Multiline flags have changed since the last compile; Global
// does not affect compilation, only how many matches Execute collects.
func (re *RegExp) compile() (*regexp2.Regexp, error) {
	if !re.stale && re.compiled != nil {
		return re.compiled, nil
	}
	opts := regexp2.None
	if re.ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	if re.multiline {
		opts |= regexp2.Multiline
	}
	rx, err := regexp2.Compile(re.pattern, opts)
	if err != nil {
		return nil, invalidCall("RegExp: invalid pattern %q: %s", re.pattern, err.Error())
	}
	re.compiled = rx
	re.stale = false
	return rx, nil
}

func (re *RegExp) execute(s string) (values.Value, error) {
	rx, err := re.compile()
	if err != nil {
		return nil, err
	}
	var out []*Match
	m, err := rx.FindStringMatch(s)
	for m != nil && err == nil {
		out = append(out, newMatch(m))
		if !re.global {
			break
		}
		m, err = rx.FindNextMatch(m)
	}
	if err != nil {
		return nil, invalidCall("RegExp.Execute: %s", err.Error())
	}
	return values.ObjectValue{Instance: &Matches{items: out}}, nil
}

func (re *RegExp) replace(s, repl string) (values.Value, error) {
	rx, err := re.compile()
	if err != nil {
		return nil, err
	}
	count := 1
	if re.global {
		count = -1
	}
	out, err := rx.Replace(s, dotNetReplacement(repl), -1, count)
	if err != nil {
		return nil, invalidCall("RegExp.Replace: %s", err.Error())
	}
	return values.StringValue{Value: out}, nil
}

// dotNetReplacement translates the dialect's `$1`-style backreference
// syntax, which is already regexp2's native replacement syntax, straight
// through; kept as a named seam in case a future dialect variant needs
// `\1`-style translation instead.
func dotNetReplacement(repl string) string { return repl }

// Matches is the collection Execute returns: Count and 0-based Item(i),
// matching the dialect's Matches collection contract.
type Matches struct {
	items []*Match
}

func (ms *Matches) ClassName() string { return "MatchCollection" }
func (ms *Matches) String() string    { return "[object Matches]" }

func (ms *Matches) Get(name string) (values.Value, error) {
	switch strings.ToLower(name) {
	case "count":
		return values.LongValue{Value: int32(len(ms.items))}, nil
	default:
		return nil, regexpNoSuchMember(name)
	}
}

func (ms *Matches) Set(name string, _ values.Value) error { return regexpNoSuchMember(name) }

func (ms *Matches) Call(name string, args []values.Value) (values.Value, error) {
	switch strings.ToLower(name) {
	case "item":
		if err := exactly("Item", args, 1); err != nil {
			return nil, err
		}
		i, err := argLong(args, 0)
		if err != nil {
			return nil, err
		}
		if i < 0 || int(i) >= len(ms.items) {
			return nil, langerr.New(langerr.SubscriptOutOfRange, token.Position{})
		}
		return values.ObjectValue{Instance: ms.items[i]}, nil
	default:
		return nil, regexpNoSuchMethod(name)
	}
}

// Enumerate satisfies For Each over a Matches collection.
func (ms *Matches) Enumerate() []values.Value {
	out := make([]values.Value, len(ms.items))
	for i, m := range ms.items {
		out[i] = values.ObjectValue{Instance: m}
	}
	return out
}

// Match is a single Execute result: FirstIndex, Length, Value, SubMatches.
type Match struct {
	firstIndex int
	length     int
	value      string
	subMatches []string
}

func newMatch(m *regexp2.Match) *Match {
	groups := m.Groups()
	sub := make([]string, 0, len(groups))
	for _, g := range groups[1:] {
		if g.Length > 0 {
			sub = append(sub, g.String())
		} else {
			sub = append(sub, "")
		}
	}
	return &Match{
		firstIndex: m.Index,
		length:     m.Length,
		value:      m.String(),
		subMatches: sub,
	}
}

func (m *Match) ClassName() string { return "Match" }
func (m *Match) String() string    { return m.value }

func (m *Match) Get(name string) (values.Value, error) {
	switch strings.ToLower(name) {
	case "firstindex":
		return values.LongValue{Value: int32(m.firstIndex)}, nil
	case "length":
		return values.LongValue{Value: int32(m.length)}, nil
	case "value":
		return values.StringValue{Value: m.value}, nil
	case "submatches":
		return values.ObjectValue{Instance: &SubMatches{items: m.subMatches}}, nil
	default:
		return nil, regexpNoSuchMember(name)
	}
}

func (m *Match) Set(name string, _ values.Value) error { return regexpNoSuchMember(name) }

func (m *Match) Call(name string, args []values.Value) (values.Value, error) {
	return nil, regexpNoSuchMethod(name)
}

// SubMatches is a Match's capture-group collection: Count and 0-based
// Item(i), same shape as Matches itself.
type SubMatches struct {
	items []string
}

func (sm *SubMatches) ClassName() string { return "SubMatches" }
func (sm *SubMatches) String() string    { return "[object SubMatches]" }

func (sm *SubMatches) Get(name string) (values.Value, error) {
	switch strings.ToLower(name) {
	case "count":
		return values.LongValue{Value: int32(len(sm.items))}, nil
	default:
		return nil, regexpNoSuchMember(name)
	}
}

func (sm *SubMatches) Set(name string, _ values.Value) error { return regexpNoSuchMember(name) }

func (sm *SubMatches) Call(name string, args []values.Value) (values.Value, error) {
	switch strings.ToLower(name) {
	case "item":
		if err := exactly("Item", args, 1); err != nil {
			return nil, err
		}
		i, err := argLong(args, 0)
		if err != nil {
			return nil, err
		}
		if i < 0 || int(i) >= len(sm.items) {
			return nil, langerr.New(langerr.SubscriptOutOfRange, token.Position{})
		}
		return values.StringValue{Value: sm.items[i]}, nil
	default:
		return nil, regexpNoSuchMethod(name)
	}
}

func (sm *SubMatches) Enumerate() []values.Value {
	out := make([]values.Value, len(sm.items))
	for i, s := range sm.items {
		out[i] = values.StringValue{Value: s}
	}
	return out
}

func regexpNoSuchMember(name string) error {
	return langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, token.Position{},
		"object doesn't support this property or method: %s", name)
}

func regexpNoSuchMethod(name string) error {
	return regexpNoSuchMember(name)
}
