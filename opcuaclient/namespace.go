package opcuaclient

import "sync"

// NamespaceTable is the mutable, ordered index-to-uri mapping shared with
// the Client (§3, §6). Index 0 is reserved for the OPC UA namespace itself
// and is always present.
type NamespaceTable interface {
	// Index returns the namespace index registered for uri, if any.
	Index(uri string) (uint16, bool)
	// Uri returns the uri registered at index, if any.
	Uri(index uint16) (string, bool)
	// Update rebuilds the table under exclusive access. No I/O may happen
	// inside fn — the lock is held for its whole duration.
	Update(fn func(*NamespaceArray))
}

// NamespaceArray is the mutable view an Update callback mutates. The
// localize algorithm (§4.4) uses it as: clear, then for each index below
// uint16 max with a non-null, not-yet-present uri, insert (index, uri).
type NamespaceArray struct {
	byIndex map[uint16]string
	byUri   map[string]uint16
}

// Clear empties the table.
func (a *NamespaceArray) Clear() {
	a.byIndex = make(map[uint16]string)
	a.byUri = make(map[string]uint16)
}

// Contains reports whether uri is already registered, at any index.
func (a *NamespaceArray) Contains(uri string) bool {
	_, ok := a.byUri[uri]
	return ok
}

// Put registers uri at index, provided the map was initialized by Clear.
func (a *NamespaceArray) Put(index uint16, uri string) {
	a.byIndex[index] = uri
	a.byUri[uri] = index
}

// inMemoryNamespaceTable is the default NamespaceTable implementation, a
// simple mutex-guarded pair of maps. Namespace index 0 is seeded with the
// standard OPC UA namespace uri.
type inMemoryNamespaceTable struct {
	mu    sync.RWMutex
	array NamespaceArray
}

// NewNamespaceTable builds a NamespaceTable seeded with index 0 →
// "http://opcfoundation.org/UA/", the standard OPC UA namespace.
func NewNamespaceTable() NamespaceTable {
	t := &inMemoryNamespaceTable{}
	t.array.Clear()
	t.array.Put(0, "http://opcfoundation.org/UA/")
	return t
}

func (t *inMemoryNamespaceTable) Index(uri string) (uint16, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx, ok := t.array.byUri[uri]
	return idx, ok
}

func (t *inMemoryNamespaceTable) Uri(index uint16) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	uri, ok := t.array.byIndex[index]
	return uri, ok
}

func (t *inMemoryNamespaceTable) Update(fn func(*NamespaceArray)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.array)
}
