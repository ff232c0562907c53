package httptransport

import (
	"context"

	"github.com/briclabs/evcoordinator-sub000/internal/query"
)

// EntityReader serves the read side of one table.
type EntityReader interface {
	Search(ctx context.Context, search query.Search) (any, error)
	Fetch(ctx context.Context, id int64) (any, bool, error)
}

type pageSource[T any] interface {
	FetchByID(ctx context.Context, id int64) (T, bool, error)
	FetchByCriteria(ctx context.Context, search query.Search) (query.Page[T], error)
}

type reader[T any] struct {
	src pageSource[T]
}

// Readable adapts a typed repository to EntityReader.
func Readable[T any](src pageSource[T]) EntityReader {
	return reader[T]{src: src}
}

func (r reader[T]) Search(ctx context.Context, search query.Search) (any, error) {
	page, err := r.src.FetchByCriteria(ctx, search)
	if err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page, nil
}

func (r reader[T]) Fetch(ctx context.Context, id int64) (any, bool, error) {
	return r.src.FetchByID(ctx, id)
}
