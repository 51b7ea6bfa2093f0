package penalcode

import (
	"errors"
	"strings"
)

// ErrUnavailable is returned while the dataset failed to load; callers
// surface it as a visible error instead of a partial catalog.
var ErrUnavailable = errors.New("penal code data unavailable")

type Service struct {
	catalog *Catalog
	loadErr error
}

// NewService wraps a flattened catalog. A nil catalog (failed load) keeps
// the service alive but answering ErrUnavailable everywhere.
func NewService(catalog *Catalog, loadErr error) *Service {
	return &Service{catalog: catalog, loadErr: loadErr}
}

func (s *Service) ready() error {
	if s.catalog == nil {
		return ErrUnavailable
	}
	return nil
}

func (s *Service) Revision() string {
	if s.catalog == nil {
		return ""
	}
	return s.catalog.Revision
}

func (s *Service) Categories() ([]CategoryView, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.catalog.Categories, nil
}

func (s *Service) ItemByID(id int) (Item, error) {
	if err := s.ready(); err != nil {
		return Item{}, err
	}
	item, ok := s.catalog.ItemByID(id)
	if !ok {
		return Item{}, errors.New("unknown penal code item")
	}
	return item, nil
}

// Search filters the flat item list by case-insensitive substring over
// name, parent name, paragraph and abbreviation. Empty query returns the
// full list.
func (s *Service) Search(query string) ([]Item, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.catalog.Items, nil
	}

	var matches []Item
	for _, item := range s.catalog.Items {
		haystack := strings.ToLower(strings.Join([]string{
			item.Name,
			item.ParentName,
			item.Paragraph,
			item.Abbreviation,
		}, " "))

		if strings.Contains(haystack, query) {
			matches = append(matches, item)
		}
	}

	return matches, nil
}
