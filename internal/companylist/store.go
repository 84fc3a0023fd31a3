package companylist

import (
	"context"
	"sync"

	"github.com/aleister1102/offerguard/internal/config"
	"github.com/rs/zerolog"
)

// Store loads the list from its source exactly once and serves it read-only
// afterwards. A failed load leaves an empty list so verification degrades to
// "not listed" rather than failing.
type Store struct {
	source Source
	logger zerolog.Logger

	once sync.Once
	list *List
	err  error
}

// NewStore creates a store over source.
func NewStore(source Source, logger zerolog.Logger) *Store {
	return &Store{
		source: source,
		logger: logger.With().Str("component", "CompanyList").Logger(),
	}
}

// NewStoreFromConfig creates a store for the configured source.
func NewStoreFromConfig(cfg config.CompanyListConfig, logger zerolog.Logger) (*Store, error) {
	source, err := SourceFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewStore(source, logger), nil
}

// Load returns the list, reading the source on the first call only. The load
// error, if any, is returned on every call alongside an empty list.
func (s *Store) Load(ctx context.Context) (*List, error) {
	s.once.Do(func() {
		names, err := s.source.Load(ctx)
		if err != nil {
			s.logger.Error().Err(err).Str("source", s.source.Describe()).Msg("Failed to load known companies")
			s.err = err
			s.list = NewList(nil)
			return
		}
		s.list = NewList(names)
		s.logger.Info().Str("source", s.source.Describe()).Int("companies", s.list.Len()).Msg("Loaded known companies")
	})
	return s.list, s.err
}

// Contains reports whether name matches a listed company.
func (s *Store) Contains(name string) bool {
	list, _ := s.Load(context.Background())
	return list.Contains(name)
}
