package table

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Attrs is an ordered mapping of column names to values. Columns keep the
// position of their first insertion; overwriting a value does not move a
// column.
//
// A nil *Attrs is a valid, empty mapping for all read operations.
type Attrs struct {
	columns *linkedhashmap.Map
}

// NewAttrs creates an empty attribute mapping.
func NewAttrs() *Attrs {
	return &Attrs{columns: linkedhashmap.New()}
}

// AttrsOf creates an attribute mapping from alternating name/value
// arguments, e.g. AttrsOf("group", 1, "colour", "red").
// It panics if names are not strings or a value is missing.
func AttrsOf(nameValues ...interface{}) *Attrs {
	if len(nameValues)%2 != 0 {
		panic("AttrsOf needs pairs of name and value")
	}
	a := NewAttrs()
	for i := 0; i < len(nameValues); i += 2 {
		name, ok := nameValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("AttrsOf: column name must be a string, is %T", nameValues[i]))
		}
		a.Set(name, nameValues[i+1])
	}
	return a
}

// Set puts a value for a column. Part of builder functionality.
func (a *Attrs) Set(name string, value interface{}) *Attrs {
	if a.columns == nil {
		a.columns = linkedhashmap.New()
	}
	a.columns.Put(name, value)
	return a
}

// Get returns the value of a column and whether the column is present.
// A column holding nil is present.
func (a *Attrs) Get(name string) (interface{}, bool) {
	if a == nil || a.columns == nil {
		return nil, false
	}
	if v, found := a.columns.Get(name); found {
		return v, true
	}
	// linkedhashmap reports nil values as not found
	for _, key := range a.columns.Keys() {
		if key == name {
			return nil, true
		}
	}
	return nil, false
}

// Has is a predicate: is column name present?
func (a *Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Delete removes a column.
func (a *Attrs) Delete(name string) {
	if a == nil || a.columns == nil {
		return
	}
	a.columns.Remove(name)
}

// Len returns the number of columns.
func (a *Attrs) Len() int {
	if a == nil || a.columns == nil {
		return 0
	}
	return a.columns.Size()
}

// Names returns the column names in order.
func (a *Attrs) Names() []string {
	names := make([]string, 0, a.Len())
	a.Each(func(name string, _ interface{}) {
		names = append(names, name)
	})
	return names
}

// Each calls f for every column, in order.
func (a *Attrs) Each(f func(name string, value interface{})) {
	if a == nil || a.columns == nil {
		return
	}
	a.columns.Each(func(key, value interface{}) {
		f(key.(string), value)
	})
}

// Clone returns a copy of a, sharing the values but not the mapping.
func (a *Attrs) Clone() *Attrs {
	c := NewAttrs()
	a.Each(func(name string, value interface{}) {
		c.columns.Put(name, value)
	})
	return c
}

// Equal is a predicate: do a and b have the same columns, in the same order,
// holding deeply equal values?
func (a *Attrs) Equal(b *Attrs) bool {
	if a.Len() != b.Len() {
		return false
	}
	an, bn := a.Names(), b.Names()
	for i, name := range an {
		if bn[i] != name {
			return false
		}
		av, _ := a.Get(name)
		bv, _ := b.Get(name)
		if !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

// String returns the columns as {name:value, ...}.
func (a *Attrs) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	i := 0
	a.Each(func(name string, value interface{}) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%v", name, value)
		i++
	})
	b.WriteString("}")
	return b.String()
}

// Float returns the value of a column as float64. ok is false if the
// column is absent or nil; err is set if the value is not a number.
func (a *Attrs) Float(name string) (f float64, ok bool, err error) {
	v, found := a.Get(name)
	if !found || v == nil {
		return 0, false, nil
	}
	f, isnum := ToFloat(v)
	if !isnum {
		return 0, true, fmt.Errorf("column %q: %T is not numeric", name, v)
	}
	return f, true, nil
}

// ToFloat converts Go numeric types to float64.
func ToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
