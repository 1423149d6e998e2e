package alloc

// Entry is one allocated identifier in the global table.
type Entry struct {
	// Key is the qualified key: upper-cased module name, a separator, and
	// the symbol name exactly as discovered.
	Key    string
	Module string
	Symbol string
	ID     int
}

// Table is the insertion-ordered global allocation table. It is built once
// by the allocator and read-only afterwards.
type Table struct {
	entries []Entry
	index   map[string]int
}

func newTable() *Table {
	return &Table{index: make(map[string]int)}
}

// insert appends an entry. It reports false when the qualified key was
// already allocated.
func (t *Table) insert(e Entry) bool {
	if _, exists := t.index[e.Key]; exists {
		return false
	}
	t.index[e.Key] = len(t.entries)
	t.entries = append(t.entries, e)
	return true
}

// Len returns the number of allocated identifiers.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns every entry in allocation order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Lookup returns the entry for a qualified key.
func (t *Table) Lookup(key string) (Entry, bool) {
	i, ok := t.index[key]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// ForModule returns the entries belonging to one module, preserving their
// relative allocation order.
func (t *Table) ForModule(module string) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Module == module {
			out = append(out, e)
		}
	}
	return out
}
