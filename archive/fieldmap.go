// File: archive/fieldmap.go
// Author: momentics <momentics@gmail.com>
//
// Insertion-ordered field storage shared by Span and Event records.

package archive

// fieldMap maps field names to values, iterating in insertion order.
// Parallel slices keep the order; the index map keeps lookup O(1).
type fieldMap struct {
	names []string
	vals  []Field
	idx   map[string]int
}

// record applies the recording rule for name/value: absent names insert,
// an existing Multiple appends, any other existing value is wrapped into
// Multiple([old, new]).
func (m *fieldMap) record(name string, f Field) {
	if i, ok := m.idx[name]; ok {
		m.vals[i] = m.vals[i].appended(f)
		return
	}
	if m.idx == nil {
		m.idx = make(map[string]int, 4)
	}
	m.idx[name] = len(m.names)
	m.names = append(m.names, name)
	m.vals = append(m.vals, f)
}

func (m *fieldMap) get(name string) (Field, bool) {
	i, ok := m.idx[name]
	if !ok {
		return Field{}, false
	}
	return m.vals[i], true
}

// each calls fn for every entry in insertion order until fn returns false.
func (m *fieldMap) each(fn func(name string, f Field) bool) {
	for i, name := range m.names {
		if !fn(name, m.vals[i]) {
			return
		}
	}
}

func (m *fieldMap) len() int { return len(m.names) }

// clone returns an independent copy. Field values are copied by value;
// Multiple children may be shared because record never mutates a child
// slice in place (Field.appended reallocates).
func (m *fieldMap) clone() fieldMap {
	c := fieldMap{
		names: append([]string(nil), m.names...),
		vals:  append([]Field(nil), m.vals...),
	}
	if m.idx != nil {
		c.idx = make(map[string]int, len(m.idx))
		for k, v := range m.idx {
			c.idx[k] = v
		}
	}
	return c
}
