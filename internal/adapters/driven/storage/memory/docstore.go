package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

func identityKey(docType string, number, sessionYear int) string {
	return fmt.Sprintf("%s/%d/%d", docType, number, sessionYear)
}

// Upsert stores or refreshes a document keyed by its composite identity.
func (s *DocumentStore) Upsert(_ context.Context, doc *domain.Document) (domain.PersistResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := identityKey(doc.DocType, doc.Number, doc.SessionYear)
	now := time.Now().UTC()

	stored := *doc
	stored.UpdatedAt = now

	if existing, ok := s.documents[key]; ok {
		stored.CreatedAt = existing.CreatedAt
		s.documents[key] = stored
		return domain.PersistUpdated, nil
	}

	stored.CreatedAt = now
	s.documents[key] = stored
	return domain.PersistInserted, nil
}

// Get retrieves a document by composite identity.
func (s *DocumentStore) Get(_ context.Context, docType string, number, sessionYear int) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[identityKey(docType, number, sessionYear)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// List returns documents, optionally filtered by session year.
func (s *DocumentStore) List(_ context.Context, sessionYear int) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Document
	for key := range s.documents {
		doc := s.documents[key]
		if sessionYear != 0 && doc.SessionYear != sessionYear {
			continue
		}
		result = append(result, doc)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SessionYear != result[j].SessionYear {
			return result[i].SessionYear < result[j].SessionYear
		}
		if result[i].DocType != result[j].DocType {
			return result[i].DocType < result[j].DocType
		}
		return result[i].Number < result[j].Number
	})
	return result, nil
}
