package service

import (
	"context"

	"github.com/briclabs/evcoordinator-sub000/internal/history/models"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
)

// Lister reads history pages.
type Lister interface {
	FetchByCriteria(ctx context.Context, search query.Search) (query.Page[models.Record], error)
}

// Service exposes the read side of the history log.
type Service struct {
	store Lister
}

func New(store Lister) *Service {
	return &Service{store: store}
}

// List returns one page of history. Without a sort column the newest records
// come first.
func (s *Service) List(ctx context.Context, search query.Search) (query.Page[models.Record], error) {
	if search.SortColumn == "" {
		search.SortColumn = "id"
		search.Ascending = false
	}
	return s.store.FetchByCriteria(ctx, search)
}
