package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.style'
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds the CSS properties of a single styled node, keyed by
// property name. nil is a legal (empty) property map for reading.
type PropertyMap struct {
	m map[string]Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]Value)}
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Value, bool) {
	if pmap == nil {
		return nil, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// IsSet is a predicate wether a property is present in the map.
func (pmap *PropertyMap) IsSet(key string) bool {
	_, ok := pmap.Property(key)
	return ok
}

// Set sets a property's value. Overwrites an existing value, if present.
func (pmap *PropertyMap) Set(key string, value Value) {
	if pmap.m == nil {
		pmap.m = make(map[string]Value)
	}
	pmap.m[key] = value
}

// Add adds a property's value. Does not overwrite an existing value, i.e., does
// nothing if a value is already set.
func (pmap *PropertyMap) Add(key string, value Value) {
	if !pmap.IsSet(key) {
		pmap.Set(key, value)
	}
}

// Keys returns the property keys of the map, sorted alphabetically.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties of the map, sorted by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	keys := pmap.Keys()
	r := make([]KeyValue, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{k, pmap.m[k]}
	}
	return r
}

// Equal compares two property maps for identical keys and values.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	if pmap.Size() != other.Size() {
		return false
	}
	for _, kv := range pmap.Properties() {
		v, ok := other.Property(kv.Key)
		if !ok || v != kv.Value {
			return false
		}
	}
	return true
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.Key + ": " + kv.Value.String())
	}
	b.WriteString("}")
	return b.String()
}
