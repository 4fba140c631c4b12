package docstore

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"

	"github.com/eddadb/edda/pkg/codec"
	"github.com/eddadb/edda/pkg/value"
)

// Config holds configuration for the document store.
type Config struct {
	Path string // Directory for the pebble database
	Sync bool   // Sync every write to disk (slower, durable)
}

// Store is a collection-organized document store backed by pebble. Documents
// are stored as JSON bodies inside integrity-checked envelopes; deletes leave
// tombstone envelopes so that revision history survives until a purge.
type Store struct {
	db       *pebble.DB
	writeOpt *pebble.WriteOptions
	registry *prometheus.Registry
	metrics  *Metrics
	mutex    sync.Mutex
	isOpen   bool
}

// Open opens (creating if necessary) a document store at the configured path.
func Open(config Config) (*Store, error) {
	db, err := pebble.Open(config.Path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", config.Path, err)
	}

	writeOpt := pebble.NoSync
	if config.Sync {
		writeOpt = pebble.Sync
	}

	registry := prometheus.NewRegistry()
	return &Store{
		db:       db,
		writeOpt: writeOpt,
		registry: registry,
		metrics:  NewMetrics(registry),
		isOpen:   true,
	}, nil
}

// Close closes the store. Further operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return nil
	}
	s.isOpen = false
	return s.db.Close()
}

// Registry exposes the store's metrics registry for scraping or inspection.
func (s *Store) Registry() *prometheus.Registry {
	return s.registry
}

// NewID generates a new document ID (a KSUID, sortable by creation time).
func (s *Store) NewID() string {
	return ksuid.New().String()
}

// docKey builds the pebble key for a document: <collection>\x00<id>.
// Collection names and IDs must be non-empty; collection names must not
// contain NUL, which separates the two parts.
func docKey(collection, id string) ([]byte, error) {
	if collection == "" || strings.ContainsRune(collection, 0) {
		return nil, ErrInvalidCollection
	}
	if id == "" {
		return nil, &StoreError{"empty document ID"}
	}
	key := make([]byte, 0, len(collection)+1+len(id))
	key = append(key, collection...)
	key = append(key, 0)
	key = append(key, id...)
	return key, nil
}

// Put stores a document, replacing any existing content, and returns the new
// revision. Revisions start at 1 and increment on every write, deletes
// included.
func (s *Store) Put(collection, id string, doc map[string]any) (uint64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rev, err := s.putInternal(collection, id, doc)
	s.metrics.RecordOperation("put", err)
	return rev, err
}

func (s *Store) putInternal(collection, id string, doc map[string]any) (uint64, error) {
	if !s.isOpen {
		return 0, ErrStoreClosed
	}
	key, err := docKey(collection, id)
	if err != nil {
		return 0, err
	}

	body, err := value.ToJSON(doc)
	if err != nil {
		return 0, err
	}

	rev, err := s.currentRevision(key)
	if err != nil {
		return 0, err
	}

	env := codec.NewEnvelope(rev+1, body)
	if err := s.db.Set(key, env.Encode(), s.writeOpt); err != nil {
		return 0, fmt.Errorf("failed to write document %s/%s: %w", collection, id, err)
	}
	return env.Revision, nil
}

// Get retrieves a document and its revision. Tombstoned and missing
// documents both return ErrDocNotFound.
func (s *Store) Get(collection, id string) (map[string]any, uint64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, rev, err := s.getInternal(collection, id)
	s.metrics.RecordOperation("get", err)
	return doc, rev, err
}

func (s *Store) getInternal(collection, id string) (map[string]any, uint64, error) {
	if !s.isOpen {
		return nil, 0, ErrStoreClosed
	}
	key, err := docKey(collection, id)
	if err != nil {
		return nil, 0, err
	}

	env, err := s.readEnvelope(key)
	if err != nil {
		return nil, 0, err
	}
	if env == nil || env.Tombstone() {
		return nil, 0, ErrDocNotFound
	}

	doc, err := value.DictFromJSON(env.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode document %s/%s: %w", collection, id, err)
	}
	return doc, env.Revision, nil
}

// Delete removes a document, leaving a tombstone that carries the next
// revision. Deleting a missing or already-deleted document returns
// ErrDocNotFound.
func (s *Store) Delete(collection, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.deleteInternal(collection, id)
	s.metrics.RecordOperation("delete", err)
	return err
}

func (s *Store) deleteInternal(collection, id string) error {
	if !s.isOpen {
		return ErrStoreClosed
	}
	key, err := docKey(collection, id)
	if err != nil {
		return err
	}

	env, err := s.readEnvelope(key)
	if err != nil {
		return err
	}
	if env == nil || env.Tombstone() {
		return ErrDocNotFound
	}

	tombstone := codec.NewEnvelope(env.Revision+1, nil)
	if err := s.db.Set(key, tombstone.Encode(), s.writeOpt); err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	return nil
}

// Purge erases a document outright, tombstone included. Purging a missing
// document is a no-op.
func (s *Store) Purge(collection, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.purgeInternal(collection, id)
	s.metrics.RecordOperation("purge", err)
	return err
}

func (s *Store) purgeInternal(collection, id string) error {
	if !s.isOpen {
		return ErrStoreClosed
	}
	key, err := docKey(collection, id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(key, s.writeOpt); err != nil {
		return fmt.Errorf("failed to purge document %s/%s: %w", collection, id, err)
	}
	return nil
}

// IDs lists the IDs of live documents in a collection, in key order.
// Tombstoned documents are skipped.
func (s *Store) IDs(collection string) ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return nil, ErrStoreClosed
	}
	if collection == "" || strings.ContainsRune(collection, 0) {
		return nil, ErrInvalidCollection
	}

	lower := append([]byte(collection), 0)
	upper := append([]byte(collection), 1)
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate collection %s: %w", collection, err)
	}
	defer iter.Close()

	var ids []string
	for iter.First(); iter.Valid(); iter.Next() {
		env, err := codec.Decode(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("failed to decode document in %s: %w", collection, err)
		}
		if env.Tombstone() {
			continue
		}
		ids = append(ids, string(iter.Key()[len(lower):]))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ApplyUpdates applies a batch of update entries to a collection, in order.
// UPDATE entries load the document (an absent document starts empty), apply
// the updated properties, then the removed properties, and store the result.
// The batch stops at the first failing entry.
func (s *Store) ApplyUpdates(collection string, entries []UpdateEntry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range entries {
		entry := &entries[i]
		err := s.applyEntry(collection, entry)
		s.metrics.RecordUpdateEntry(entry.Type, err)
		if err != nil {
			return fmt.Errorf("update entry %d (%s %s/%s): %w", i, entry.Type, collection, entry.ID, err)
		}
	}
	return nil
}

func (s *Store) applyEntry(collection string, entry *UpdateEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	switch entry.Type {
	case UpdateTypeDelete:
		return s.deleteInternal(collection, entry.ID)
	case UpdateTypePurge:
		return s.purgeInternal(collection, entry.ID)
	}

	doc, _, err := s.getInternal(collection, entry.ID)
	if errors.Is(err, ErrDocNotFound) {
		doc = make(map[string]any)
	} else if err != nil {
		return err
	}

	if err := value.UpdateProperties(doc, entry.UpdatedProperties); err != nil {
		return err
	}
	if err := value.RemoveProperties(doc, entry.RemovedProperties); err != nil {
		return err
	}

	_, err = s.putInternal(collection, entry.ID, doc)
	return err
}

// readEnvelope reads and validates the envelope at key. A missing key
// returns (nil, nil).
func (s *Store) readEnvelope(key []byte) (*codec.Envelope, error) {
	data, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	defer closer.Close()

	env, err := codec.Decode(data)
	if err != nil {
		s.metrics.RecordCRCFailure()
		return nil, ErrCorruptDocument
	}
	if err := env.Validate(); err != nil {
		s.metrics.RecordCRCFailure()
		return nil, ErrCorruptDocument
	}

	// The envelope body aliases pebble's buffer, which is invalid after the
	// closer is released.
	body := make([]byte, len(env.Body))
	copy(body, env.Body)
	env.Body = body

	return env, nil
}

// currentRevision returns the revision stored at key, or 0 when absent.
func (s *Store) currentRevision(key []byte) (uint64, error) {
	env, err := s.readEnvelope(key)
	if err != nil {
		return 0, err
	}
	if env == nil {
		return 0, nil
	}
	return env.Revision, nil
}
