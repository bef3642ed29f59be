package builtin

import (
	"strings"

	"github.com/dws-sandbox/basicscript/internal/langerr"
	"github.com/dws-sandbox/basicscript/internal/token"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// Dictionary is the host collaborator backing `New Dictionary`:
// a key/value store keyed by the default Binary comparison unless CompareMode
// is switched to Text, at which point key lookups fold case. It satisfies
// evaluator's structural hostObject and enumerable interfaces without the
// evaluator package ever importing this one.
type Dictionary struct {
	keys    []string // insertion order, by lookup key (already folded if Text mode)
	display map[string]string
	items   map[string]values.Value
	compare values.CompareMode
}

// NewDictionary constructs an empty Dictionary; ClassFactories registers it
// under the class name "dictionary".
func NewDictionary() *Dictionary {
	return &Dictionary{
		display: make(map[string]string),
		items:   make(map[string]values.Value),
	}
}

func (d *Dictionary) ClassName() string { return "Dictionary" }
func (d *Dictionary) String() string    { return "[object Dictionary]" }

func (d *Dictionary) lookupKey(key string) string {
	if d.compare == values.CompareText {
		return normalizeFold(key)
	}
	return key
}

func (d *Dictionary) Get(name string) (values.Value, error) {
	switch name {
	case "Count":
		return values.LongValue{Value: int32(len(d.keys))}, nil
	case "CompareMode":
		return values.LongValue{Value: int32(d.compare)}, nil
	case "Item":
		return values.Empty, nil
	default:
		return nil, dictNoSuchProperty(name)
	}
}

func (d *Dictionary) Set(name string, v values.Value) error {
	switch name {
	case "CompareMode":
		n, err := values.ToLong(v)
		if err != nil {
			return err
		}
		if len(d.keys) > 0 {
			return invalidCall("CompareMode cannot change once the Dictionary holds entries")
		}
		if n == 1 {
			d.compare = values.CompareText
		} else {
			d.compare = values.CompareBinary
		}
		return nil
	default:
		return dictNoSuchProperty(name)
	}
}

func (d *Dictionary) Call(name string, args []values.Value) (values.Value, error) {
	switch name {
	case "Add":
		if err := exactly("Add", args, 2); err != nil {
			return nil, err
		}
		return values.Empty, d.add(args[0], args[1])
	case "Exists":
		if err := exactly("Exists", args, 1); err != nil {
			return nil, err
		}
		key, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		_, ok := d.items[d.lookupKey(key)]
		return values.BooleanValue{Value: ok}, nil
	case "Remove":
		if err := exactly("Remove", args, 1); err != nil {
			return nil, err
		}
		key, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		return values.Empty, d.remove(key)
	case "RemoveAll":
		if err := exactly("RemoveAll", args, 0); err != nil {
			return nil, err
		}
		d.keys = nil
		d.display = make(map[string]string)
		d.items = make(map[string]values.Value)
		return values.Empty, nil
	case "Item":
		return d.item(args)
	case "Key":
		if err := exactly("Key", args, 2); err != nil {
			return nil, err
		}
		return values.Empty, d.rekey(args[0], args[1])
	case "Keys":
		if err := exactly("Keys", args, 0); err != nil {
			return nil, err
		}
		out := make([]string, len(d.keys))
		for i, k := range d.keys {
			out[i] = d.display[k]
		}
		return stringArray(out), nil
	case "Items":
		if err := exactly("Items", args, 0); err != nil {
			return nil, err
		}
		return d.itemsArray(), nil
	default:
		return nil, dictNoSuchMethod(name)
	}
}

// item implements the Item(key) get/let-style accessor: a read of a
// missing key auto-vivifies it to Empty, matching the host object's
// documented behavior when Option Explicit is not forcing key declaration.
func (d *Dictionary) item(args []values.Value) (values.Value, error) {
	if err := between("Item", args, 1, 2); err != nil {
		return nil, err
	}
	key, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	lk := d.lookupKey(key)
	if len(args) == 2 {
		d.items[lk] = args[1]
		if _, seen := d.display[lk]; !seen {
			d.keys = append(d.keys, lk)
		}
		d.display[lk] = key
		return values.Empty, nil
	}
	if v, ok := d.items[lk]; ok {
		return v, nil
	}
	d.items[lk] = values.Empty
	d.display[lk] = key
	d.keys = append(d.keys, lk)
	return values.Empty, nil
}

func (d *Dictionary) add(key, value values.Value) error {
	k, err := values.ToString(key)
	if err != nil {
		return err
	}
	lk := d.lookupKey(k)
	if _, exists := d.items[lk]; exists {
		return langerr.New(langerr.InvalidProcedureCall, token.Position{})
	}
	d.items[lk] = value
	d.display[lk] = k
	d.keys = append(d.keys, lk)
	return nil
}

func (d *Dictionary) remove(key string) error {
	lk := d.lookupKey(key)
	if _, ok := d.items[lk]; !ok {
		return invalidCall("Remove: key not found")
	}
	delete(d.items, lk)
	delete(d.display, lk)
	for i, k := range d.keys {
		if k == lk {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return nil
}

func (d *Dictionary) rekey(oldKey, newKey values.Value) error {
	ok, err := values.ToString(oldKey)
	if err != nil {
		return err
	}
	nk, err := values.ToString(newKey)
	if err != nil {
		return err
	}
	lok := d.lookupKey(ok)
	v, exists := d.items[lok]
	if !exists {
		return invalidCall("Key: key not found")
	}
	lnk := d.lookupKey(nk)
	delete(d.items, lok)
	delete(d.display, lok)
	d.items[lnk] = v
	d.display[lnk] = nk
	for i, k := range d.keys {
		if k == lok {
			d.keys[i] = lnk
			break
		}
	}
	return nil
}

func (d *Dictionary) itemsArray() values.ArrayValue {
	out := make([]values.Value, len(d.keys))
	for i, k := range d.keys {
		out[i] = d.items[k]
	}
	return sliceToValueArray(out)
}

// Enumerate satisfies internal/evaluator's enumerable interface: For Each
// over a Dictionary walks its Keys, matching the host object's documented
// default enumeration.
func (d *Dictionary) Enumerate() []values.Value {
	out := make([]values.Value, len(d.keys))
	for i, k := range d.keys {
		out[i] = values.StringValue{Value: d.display[k]}
	}
	return out
}

func dictNoSuchProperty(name string) error {
	return langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, token.Position{},
		"Dictionary does not support this property or method: %s", name)
}

func dictNoSuchMethod(name string) error {
	return langerr.Newf(langerr.ObjectDoesntSupportPropertyOrMethod, token.Position{},
		"Dictionary does not support this property or method: %s", name)
}

// normalizeFold is the case-folding key normalizer used by Text-mode
// comparison.
func normalizeFold(s string) string {
	return strings.ToLower(s)
}
