package matcher

import (
	"reflect"
)

// maxCanonicalDepth bounds the walk so cyclic values terminate.
const maxCanonicalDepth = 64

var boolType = reflect.TypeFor[bool]()

// canonical projects v onto a plain value whose hash agrees with cmp.Equal
// under exportAll: values cmp considers equal project to equal values.
//
//   - signed zeros collapse to +0
//   - unexported fields are dropped
//   - a value whose type has an Equal method cmp would call becomes its
//     Hash when it is a Hasher, otherwise just its type name
//   - maps become an order-independent digest of their entries
func canonical(v reflect.Value, depth int) any {
	if !v.IsValid() || depth > maxCanonicalDepth {
		return nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	}
	if v.Kind() != reflect.Interface && hasEqualMethod(v.Type()) {
		if v.CanInterface() {
			if h, ok := v.Interface().(Hasher); ok {
				return []any{v.Type().String(), h.Hash()}
			}
		}
		return v.Type().String()
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return canonicalFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return []any{canonicalFloat(real(c)), canonicalFloat(imag(c))}
	case reflect.String:
		return v.String()
	case reflect.Pointer, reflect.Interface:
		return canonical(v.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i] = canonical(v.Index(i), depth+1)
		}
		return out
	case reflect.Struct:
		t := v.Type()
		out := make(map[string]any, t.NumField())
		for i := range t.NumField() {
			if f := t.Field(i); f.IsExported() {
				out[f.Name] = canonical(v.Field(i), depth+1)
			}
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			sum += structuralHash([]any{
				canonical(iter.Key(), depth+1),
				canonical(iter.Value(), depth+1),
			})
		}
		return []any{"map", uint64(v.Len()), sum}
	default:
		// Channels, funcs and unsafe pointers are only equal when both are
		// nil, so the type alone is enough.
		return v.Type().String()
	}
}

func canonicalFloat(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// hasEqualMethod reports whether cmp.Equal would compare values of t with
// their Equal method: (T) Equal(T) bool or (T) Equal(I) bool where T is
// assignable to I.
func hasEqualMethod(t reflect.Type) bool {
	m, ok := t.MethodByName("Equal")
	if !ok {
		return false
	}
	mt := m.Type
	return mt.NumIn() == 2 && mt.NumOut() == 1 &&
		mt.Out(0) == boolType && t.AssignableTo(mt.In(1))
}
