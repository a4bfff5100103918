package in_mem

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
)

const pathSeparator = " > "

// Store keeps faqs in insertion order. Retrieval order is the insertion order
// of faqs, then the order of their category associations.
type Store struct {
	mu         sync.RWMutex
	faqs       []domain.Faq
	categories map[domain.CategoryID]domain.Category
	nextID     int64
}

func NewStore() *Store {
	return &Store{
		categories: make(map[domain.CategoryID]domain.Category),
		nextID:     1,
	}
}

func (s *Store) Save(_ context.Context, faq domain.Faq) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(faq), nil
}

func (s *Store) SaveBulk(_ context.Context, faqs []domain.Faq) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range faqs {
		s.save(f)
	}
	slog.Debug("Saved faqs to in-memory storage", "count", len(faqs))
	return nil
}

func (s *Store) save(faq domain.Faq) int64 {
	if faq.ID == 0 {
		faq.ID = s.nextID
	}
	if faq.ID >= s.nextID {
		s.nextID = faq.ID + 1
	}
	if faq.Language == "" {
		faq.Language = domain.FaqDefaultLanguage
	}

	for i, existing := range s.faqs {
		if existing.ID == faq.ID && existing.Language == faq.Language {
			s.faqs[i] = faq
			return faq.ID
		}
	}
	s.faqs = append(s.faqs, faq)
	return faq.ID
}

func (s *Store) SaveCategories(_ context.Context, categories []domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return nil
}

func (s *Store) FindExactByID(_ context.Context, id int64, scope storage.Scope) ([]domain.Record, error) {
	return s.find(scope, func(f domain.Faq) bool {
		return f.SolutionID == id
	}), nil
}

func (s *Store) FindByTokens(_ context.Context, tokens []string, scope storage.Scope) ([]domain.Record, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}

	return s.find(scope, func(f domain.Faq) bool {
		fields := []string{
			strings.ToLower(f.Title),
			strings.ToLower(f.Content),
			strings.ToLower(f.Keywords),
		}
		for _, t := range lowered {
			for _, field := range fields {
				if strings.Contains(field, t) {
					return true
				}
			}
		}
		return false
	}), nil
}

func (s *Store) find(scope storage.Scope, match func(domain.Faq) bool) []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []domain.Record
	for _, f := range s.faqs {
		if !f.Active || !match(f) {
			continue
		}
		if scope.HasLanguage() && f.Language != scope.Language {
			continue
		}
		for _, r := range f.Records() {
			if scope.HasCategory() && r.CategoryID != scope.Category {
				continue
			}
			records = append(records, r)
		}
	}
	return records
}

func (s *Store) GroupsFor(_ context.Context, recordID int64) ([]domain.GroupID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.faqs {
		if f.ID == recordID {
			return slices.Clone(f.Groups), nil
		}
	}
	return nil, nil
}

func (s *Store) UsersFor(_ context.Context, recordID int64) ([]domain.UserID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.faqs {
		if f.ID == recordID {
			return slices.Clone(f.Users), nil
		}
	}
	return nil, nil
}

func (s *Store) PathFor(_ context.Context, id domain.CategoryID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	seen := make(map[domain.CategoryID]bool)
	for cur := id; cur > 0 && !seen[cur]; {
		seen[cur] = true
		c, ok := s.categories[cur]
		if !ok {
			break
		}
		names = append(names, c.Name)
		cur = c.ParentID
	}
	slices.Reverse(names)
	return strings.Join(names, pathSeparator), nil
}

func (s *Store) Close() {}

var _ storage.Backend = (*Store)(nil)
