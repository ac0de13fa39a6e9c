package store

// Slot is a durable single-key blob store: the state it holds is always
// written whole, never as a delta. The pipeline persists its full entry list
// under one fixed key.
type Slot interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Close() error
}
