package store

// MemSlot is an in-memory Slot for tests.
type MemSlot struct {
	Data map[string][]byte
	Err  error
	Puts int
}

func NewMemSlot() *MemSlot {
	return &MemSlot{Data: map[string][]byte{}}
}

func (m *MemSlot) Get(key string) ([]byte, bool, error) {
	if m.Err != nil {
		return nil, false, m.Err
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *MemSlot) Put(key string, value []byte) error {
	m.Puts++
	if m.Err != nil {
		return m.Err
	}
	m.Data[key] = value
	return nil
}

func (m *MemSlot) Close() error { return nil }
