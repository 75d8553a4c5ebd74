package bindata

import (
	"bytes"
	"encoding/json"
)

// OrderedFields is the ordered name->value map Snapshot produces for a
// Struct: Go's map[string]any has no iteration order, and spec.md §4.G
// requires snapshot to preserve declaration order.
type OrderedFields struct {
	names  []string
	values map[string]any
}

// NewOrderedFields returns an empty OrderedFields ready for Set.
func NewOrderedFields() *OrderedFields {
	return &OrderedFields{values: map[string]any{}}
}

// Set appends name (if new) or overwrites its value (if already present,
// keeping its original position).
func (o *OrderedFields) Set(name string, value any) {
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = value
}

// Get returns the value stored under name, if any.
func (o *OrderedFields) Get(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Names returns the field names in declaration order.
func (o *OrderedFields) Names() []string { return o.names }

// ToMap flattens to a plain map, discarding order, for callers (like
// Struct.Assign) that only need lookup.
func (o *OrderedFields) ToMap() map[string]any {
	m := make(map[string]any, len(o.values))
	for k, v := range o.values {
		m[k] = v
	}
	return m
}

// MarshalJSON renders the fields as a JSON object in declaration order,
// since map[string]any's iteration order is not guaranteed but a
// snapshot's field order is part of what callers (the CLI's "snapshot"
// command, debugging output) expect to see.
func (o *OrderedFields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(o.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
