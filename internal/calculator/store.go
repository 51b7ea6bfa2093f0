package calculator

import (
	"context"
	"encoding/json"
	"sync"
)

// Store is the per-user key-value persistence port behind history,
// favorites and templates. Get returns (nil, nil) when the key is absent.
type Store interface {
	Get(ctx context.Context, userID, key string) ([]byte, error)
	Set(ctx context.Context, userID, key string, value []byte) error
	Remove(ctx context.Context, userID, key string) error
}

const (
	keyHistory   = "history"
	keyFavorites = "favorites"
	keyTemplates = "templates"

	storeVersion = 1
)

// envelope wraps every stored payload with a schema version and the
// penal-code revision the contained item ids refer to.
type envelope struct {
	Version  int             `json:"version"`
	Revision string          `json:"revision,omitempty"`
	Data     json.RawMessage `json:"data"`
}

// loadInto decodes a stored envelope into out. Any failure — missing key,
// corrupt JSON, unknown version — leaves out untouched so callers start
// from the empty value, mirroring how the browser build survived a
// corrupted local storage.
func loadInto(ctx context.Context, store Store, userID, key string, out interface{}) {
	raw, err := store.Get(ctx, userID, key)
	if err != nil || len(raw) == 0 {
		return
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Version != storeVersion {
		return
	}

	_ = json.Unmarshal(env.Data, out)
}

func saveFrom(ctx context.Context, store Store, userID, key, revision string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(envelope{
		Version:  storeVersion,
		Revision: revision,
		Data:     data,
	})
	if err != nil {
		return err
	}

	return store.Set(ctx, userID, key, raw)
}

// --------------------------------------------------
// In-memory store (tests, single-node dev)
// --------------------------------------------------

type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, userID, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[userID+"/"+key], nil
}

func (s *MemoryStore) Set(ctx context.Context, userID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID+"/"+key] = value
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, userID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID+"/"+key)
	return nil
}
