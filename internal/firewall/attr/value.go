// Package attr normalizes firewall rule attribute values into the forms expected by iptables.
//
// Normalizers return a Value. A Value without content means the input has no mapping
// (an unknown name, a zero-length prefix, an out of range mark) and is not an error;
// errors are reserved for malformed input the caller must fix.
package attr

// Value is a normalized rule attribute value, or the absence of one.
type Value struct {
	value string
	ok    bool
}

// Some returns a Value holding s.
func Some(s string) Value {
	return Value{value: s, ok: true}
}

// None returns the empty Value.
func None() Value {
	return Value{}
}

// Get returns the normalized string and whether there is one.
func (v Value) Get() (string, bool) {
	return v.value, v.ok
}

// IsNone returns true when the Value holds nothing.
func (v Value) IsNone() bool {
	return !v.ok
}

// String returns the normalized string, or "" for None.
func (v Value) String() string {
	return v.value
}
