package tree

// DefID identifies a resolved definition in the host compiler's tables.
// DefNone means resolution did not produce a definition.
type DefID uint32

// DefNone is the zero DefID.
const DefNone DefID = 0

// IsValid reports whether the id refers to an actual definition.
func (id DefID) IsValid() bool {
	return id != DefNone
}

// DefTable is the slice of the host's definition table the engine consumes:
// fully qualified paths per definition, plus the definitions of the two
// indexing-capability interfaces (read and read-write) when the host's
// standard library defines them.
type DefTable struct {
	paths      map[DefID]string
	indexRead  DefID
	indexWrite DefID
}

// NewDefTable creates an empty definition table.
func NewDefTable() *DefTable {
	return &DefTable{paths: make(map[DefID]string)}
}

// Set records the qualified path for a definition.
func (t *DefTable) Set(id DefID, path string) {
	if !id.IsValid() {
		return
	}
	t.paths[id] = path
}

// Path returns the fully qualified path of the definition. Unknown or
// invalid ids resolve to ("", false); callers treat that as "no match".
func (t *DefTable) Path(id DefID) (string, bool) {
	if t == nil || !id.IsValid() {
		return "", false
	}
	p, ok := t.paths[id]
	return p, ok
}

// SetIndexCapabilities records the definitions of the read and read-write
// indexing-capability interfaces.
func (t *DefTable) SetIndexCapabilities(read, write DefID) {
	t.indexRead = read
	t.indexWrite = write
}

// IndexCapabilities returns the recorded read and read-write capability
// interface definitions (either may be DefNone).
func (t *DefTable) IndexCapabilities() (read, write DefID) {
	if t == nil {
		return DefNone, DefNone
	}
	return t.indexRead, t.indexWrite
}

// Each calls fn for every recorded definition. Iteration order is
// unspecified.
func (t *DefTable) Each(fn func(id DefID, path string)) {
	if t == nil {
		return
	}
	for id, path := range t.paths {
		fn(id, path)
	}
}

// IsIndexCapability reports whether the definition is one of the
// indexing-capability interfaces.
func (t *DefTable) IsIndexCapability(id DefID) bool {
	if t == nil || !id.IsValid() {
		return false
	}
	return id == t.indexRead || id == t.indexWrite
}
