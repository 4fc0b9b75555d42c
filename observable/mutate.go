package observable

import "reflect"

// Set is the mutation primitive every property setter must route through.
// It writes value into slot and fires a change notification for property,
// but only when the new value differs from the current one; equal values are
// a complete no-op. It reports whether a write (and notification) happened.
//
// Set is the sole code path that produces change notifications.
func Set[T comparable](m *Model, slot *T, value T, property string) bool {
	if slot == nil || *slot == value {
		return false
	}
	*slot = value
	m.notify(property)
	return true
}

// SetAny is the mutation primitive for any-typed slots, used by models whose
// property storage is dynamic. On top of Set's no-op-on-equal rule it
// enforces the slot's semantic type at runtime: a value whose dynamic type
// differs from the current value's is rejected without a write or a
// notification. A nil current value accepts any type; a nil new value clears
// the slot.
func SetAny(m *Model, slot *any, value any, property string) bool {
	if slot == nil {
		return false
	}
	current := *slot
	if current != nil && value != nil && reflect.TypeOf(current) != reflect.TypeOf(value) {
		return false
	}
	if equalAny(current, value) {
		return false
	}
	*slot = value
	m.notify(property)
	return true
}

// equalAny compares two any values without panicking on uncomparable
// dynamic types; uncomparable values are treated as unequal, so the write
// always proceeds for them.
func equalAny(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
