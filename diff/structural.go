package diff

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Kind represents the type of a structural change
type Kind int

const (
	Create Kind = iota
	Remove
	Change
)

// String returns the string representation of the change kind
func (k Kind) String() string {
	switch k {
	case Create:
		return "create"
	case Remove:
		return "remove"
	case Change:
		return "change"
	default:
		return "unknown"
	}
}

// Path locates a change relative to the comparison root. Segments are string
// map keys or int slice indices; an empty path is the root itself.
type Path []any

// String renders the path in dotted/bracketed form, e.g. `user.name` or
// `items[2].id`. The root renders as an empty string.
func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p {
		switch s := seg.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s)
		case int:
			fmt.Fprintf(&b, "[%d]", s)
		default:
			fmt.Fprintf(&b, "[%v]", s)
		}
	}
	return b.String()
}

// Item is a single path-addressed structural change. Value is set for Create
// and Change, OldValue for Remove and Change.
type Item struct {
	Kind     Kind
	Path     Path
	Value    any
	OldValue any
}

// Diff deep-compares two values and returns a flat list of path-addressed
// changes. Objects recurse over the union of their keys, arrays recurse
// positionally by index, and a container-type mismatch at a path is reported
// as a single Change of the whole subtree. Scalars compare strictly, so NaN
// against NaN reports a Change. The result is empty when the inputs are
// identical.
func Diff(oldValue, newValue any) []Item {
	items := []Item{}
	return walk(oldValue, newValue, Path{}, items)
}

func walk(oldValue, newValue any, path Path, items []Item) []Item {
	if identical(oldValue, newValue) {
		return items
	}
	if oldValue == nil {
		return append(items, Item{Kind: Create, Path: path, Value: newValue})
	}
	if newValue == nil {
		return append(items, Item{Kind: Remove, Path: path, OldValue: oldValue})
	}

	oldObj, oldIsObj := asObject(oldValue)
	newObj, newIsObj := asObject(newValue)
	if oldIsObj && newIsObj {
		return walkObjects(oldObj, newObj, path, items)
	}

	oldArr, oldIsArr := asArray(oldValue)
	newArr, newIsArr := asArray(newValue)
	if oldIsArr && newIsArr {
		return walkArrays(oldArr, newArr, path, items)
	}

	// Container-type mismatch or unequal scalars: one Change for the whole
	// subtree, no further descent.
	return append(items, Item{Kind: Change, Path: path, Value: newValue, OldValue: oldValue})
}

func walkObjects(oldObj, newObj map[string]any, path Path, items []Item) []Item {
	keys := make(map[string]struct{}, len(oldObj)+len(newObj))
	for key := range oldObj {
		keys[key] = struct{}{}
	}
	for key := range newObj {
		keys[key] = struct{}{}
	}

	// Sorted for stable output ordering.
	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	for _, key := range sorted {
		childPath := append(append(Path{}, path...), key)
		oldChild, inOld := oldObj[key]
		newChild, inNew := newObj[key]
		switch {
		case !inOld:
			items = append(items, Item{Kind: Create, Path: childPath, Value: newChild})
		case !inNew:
			items = append(items, Item{Kind: Remove, Path: childPath, OldValue: oldChild})
		default:
			items = walk(oldChild, newChild, childPath, items)
		}
	}
	return items
}

func walkArrays(oldArr, newArr []any, path Path, items []Item) []Item {
	longest := max(len(oldArr), len(newArr))
	for index := 0; index < longest; index++ {
		childPath := append(append(Path{}, path...), index)
		switch {
		case index >= len(oldArr):
			items = append(items, Item{Kind: Create, Path: childPath, Value: newArr[index]})
		case index >= len(newArr):
			items = append(items, Item{Kind: Remove, Path: childPath, OldValue: oldArr[index]})
		default:
			items = walk(oldArr[index], newArr[index], childPath, items)
		}
	}
	return items
}

// asObject reports whether v is a plain string-keyed map, converting other
// map types through reflection so callers can diff map[string]int and the
// like without pre-conversion.
func asObject(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// asArray reports whether v is a slice or array, converting through
// reflection when it is not already []any.
func asArray(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	s := make([]any, rv.Len())
	for i := range s {
		s[i] = rv.Index(i).Interface()
	}
	return s, true
}

// identical implements strict-equality semantics: comparable scalars compare
// by value, everything else only by being the same underlying object.
// Functions, channels and other non-JSON values never compare structurally.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta.Comparable() && tb.Comparable() {
		return a == b
	}
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		// Zero-length slices may share a base address without being the
		// same object.
		if va.Kind() == reflect.Slice && (va.Len() != vb.Len() || va.Cap() != vb.Cap()) {
			return false
		}
		return va.Pointer() == vb.Pointer()
	}
	return false
}
