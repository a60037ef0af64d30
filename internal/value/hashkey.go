package value

import (
	"hash/fnv"
	"math/big"
	"strconv"

	"rubycore/internal/rberror"
)

// HashKey is a structural digest used so Hash can key by Ruby equality
// instead of Go's native map equality, which can't compare Value
// interfaces holding slices/pointers.
type HashKey struct {
	class string
	bits  uint64
}

// KeyOf computes the HashKey for any built-in value usable as a Hash key.
// Array and Hash hash structurally over their elements/entries; Instance
// hashes by object identity, matching Ruby's default Object#hash. Any other
// value (e.g. a Range) gets a TypeError instead of a HashKey.
func KeyOf(v Value) (HashKey, error) {
	switch x := v.(type) {
	case Nil:
		return HashKey{class: "NilClass"}, nil
	case Bool:
		if x {
			return HashKey{class: "TrueClass"}, nil
		}
		return HashKey{class: "FalseClass"}, nil
	case Integer:
		return HashKey{class: "Integer", bits: fnvString(x.Big().String())}, nil
	case Float:
		return HashKey{class: "Float", bits: fnvString(new(big.Float).SetFloat64(float64(x)).Text('g', -1))}, nil
	case Rational:
		return HashKey{class: "Rational", bits: fnvString(x.num.String() + "/" + x.den.String())}, nil
	case String:
		return HashKey{class: "String", bits: fnvString(x.Get())}, nil
	case Symbol:
		return HashKey{class: "Symbol", bits: fnvString(string(x))}, nil
	case Instance:
		return HashKey{class: x.ClassName(), bits: uint64(x.ObjectID())}, nil
	case Array:
		var sb []byte
		for _, e := range *x.Elements {
			k, err := KeyOf(e)
			if err != nil {
				return HashKey{}, err
			}
			sb = append(sb, []byte(k.class)...)
			sb = strconv.AppendUint(sb, k.bits, 16)
		}
		return HashKey{class: "Array", bits: fnvBytes(sb)}, nil
	case Hash:
		var sb []byte
		for _, k := range *x.order {
			entry := (*x.entries)[k]
			vk, err := KeyOf(entry.val)
			if err != nil {
				return HashKey{}, err
			}
			sb = append(sb, []byte(k.class)...)
			sb = strconv.AppendUint(sb, k.bits, 16)
			sb = append(sb, []byte(vk.class)...)
			sb = strconv.AppendUint(sb, vk.bits, 16)
		}
		return HashKey{class: "Hash", bits: fnvBytes(sb)}, nil
	default:
		return HashKey{}, rberror.NewTypeError("can't use %s as a Hash key", v.ClassName())
	}
}

func fnvString(s string) uint64 { return fnvBytes([]byte(s)) }

func fnvBytes(b []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}
