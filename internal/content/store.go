package content

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateID signals that two records share an identifier.
var ErrDuplicateID = errors.New("duplicate article id")

// Store is the read-only article lookup the resolver depends on.
type Store interface {
	Lookup(id string) (ArticleRecord, bool)
}

// Source produces article records once, at startup.
type Source interface {
	Name() string
	Articles(ctx context.Context) ([]ArticleRecord, error)
}

// MemoryStore is an immutable in-memory Store keyed by normalized id.
type MemoryStore struct {
	records map[string]ArticleRecord
	order   []string
}

type emptyStore struct{}

func (emptyStore) Lookup(string) (ArticleRecord, bool) { return ArticleRecord{}, false }

// NewMemoryStore indexes records by normalized id. Records are copied;
// an empty or repeated id is an error.
func NewMemoryStore(records []ArticleRecord) (*MemoryStore, error) {
	s := &MemoryStore{records: make(map[string]ArticleRecord, len(records))}
	for _, record := range records {
		key := NormalizeID(record.ID)
		if key == "" {
			return nil, fmt.Errorf("article %q: invalid id", record.ID)
		}
		if _, exists := s.records[key]; exists {
			return nil, fmt.Errorf("article %q: %w", record.ID, ErrDuplicateID)
		}
		record = record.Clone()
		record.ID = key
		s.records[key] = record
		s.order = append(s.order, key)
	}
	return s, nil
}

// Lookup returns a copy of the record stored under id.
func (s *MemoryStore) Lookup(id string) (ArticleRecord, bool) {
	if s == nil {
		return ArticleRecord{}, false
	}
	record, ok := s.records[NormalizeID(id)]
	if !ok {
		return ArticleRecord{}, false
	}
	return record.Clone(), true
}

// Len returns the number of stored articles.
func (s *MemoryStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// List returns copies of all records in load order.
func (s *MemoryStore) List() []ArticleRecord {
	if s == nil {
		return nil
	}
	out := make([]ArticleRecord, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.records[key].Clone())
	}
	return out
}

// Load reads every source concurrently and builds a MemoryStore. Records
// keep source order, then record order within a source.
func Load(ctx context.Context, sources ...Source) (*MemoryStore, error) {
	results := make([][]ArticleRecord, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			records, err := source.Articles(gctx)
			if err != nil {
				return fmt.Errorf("load %s: %w", source.Name(), err)
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []ArticleRecord
	for _, records := range results {
		all = append(all, records...)
	}
	return NewMemoryStore(all)
}
