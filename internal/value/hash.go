package value

import "strings"

type hashEntry struct {
	key Value
	val Value
}

// Hash is an ordered Value→Value mapping keyed by Ruby equality, a
// reference type. Insertion order is preserved the way Ruby's Hash
// preserves it.
type Hash struct {
	entries *map[HashKey]hashEntry
	order   *[]HashKey
}

func NewHash() Hash {
	e := make(map[HashKey]hashEntry)
	o := []HashKey{}
	return Hash{entries: &e, order: &o}
}

func (Hash) ClassName() string { return "Hash" }

func (h Hash) ToS() string { return h.Inspect() }

func (h Hash) Inspect() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range *h.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		entry := (*h.entries)[k]
		sb.WriteString(entry.key.Inspect())
		sb.WriteString(" => ")
		sb.WriteString(entry.val.Inspect())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (h Hash) RubyEqual(o Value) bool {
	oh, ok := o.(Hash)
	if !ok || len(*h.order) != len(*oh.order) {
		return false
	}
	for k, entry := range *h.entries {
		oentry, ok := (*oh.entries)[k]
		if !ok || !entry.val.RubyEqual(oentry.val) {
			return false
		}
	}
	return true
}

func (h Hash) Get(key Value) (Value, bool, error) {
	k, err := KeyOf(key)
	if err != nil {
		return nil, false, err
	}
	e, ok := (*h.entries)[k]
	if !ok {
		return nil, false, nil
	}
	return e.val, true, nil
}

func (h Hash) Set(key, val Value) error {
	k, err := KeyOf(key)
	if err != nil {
		return err
	}
	if _, exists := (*h.entries)[k]; !exists {
		*h.order = append(*h.order, k)
	}
	(*h.entries)[k] = hashEntry{key: key, val: val}
	return nil
}

func (h Hash) Len() int { return len(*h.order) }

func (h Hash) Keys() []Value {
	out := make([]Value, 0, len(*h.order))
	for _, k := range *h.order {
		out = append(out, (*h.entries)[k].key)
	}
	return out
}

func (h Hash) Values() []Value {
	out := make([]Value, 0, len(*h.order))
	for _, k := range *h.order {
		out = append(out, (*h.entries)[k].val)
	}
	return out
}
