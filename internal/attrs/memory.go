package attrs

// Memory returns a Store that keeps markers in a map. Tests use it to
// exercise the orchestration layer without platform attribute support.
func Memory() *MemoryStore {
	return &MemoryStore{
		marked: map[string]bool{},
		Fail:   map[string]error{},
	}
}

type MemoryStore struct {
	marked map[string]bool

	// Fail maps paths to errors, letting tests script failures.
	Fail map[string]error
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) Get(path string) (Status, error) {
	if err := m.Fail[path]; err != nil {
		return Unknown, err
	}
	if m.marked[path] {
		return Ignored, nil
	}
	return NotIgnored, nil
}

func (m *MemoryStore) Set(path string) error {
	if err := m.Fail[path]; err != nil {
		return err
	}
	m.marked[path] = true
	return nil
}

// Marked reports whether path currently carries the marker.
func (m *MemoryStore) Marked(path string) bool {
	return m.marked[path]
}
