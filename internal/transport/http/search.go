package httptransport

import (
	"net/url"
	"strconv"

	"github.com/briclabs/evcoordinator-sub000/internal/query"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	pstrings "github.com/briclabs/evcoordinator-sub000/pkg/platform/strings"
)

// Reserved query parameters. Every other parameter is a criterion.
const (
	paramExact  = "exact"
	paramSort   = "sort"
	paramAsc    = "asc"
	paramOffset = "offset"
	paramMax    = "max"
)

// parseSearch reads a listing request from the query string. Criteria keys
// are passed through untouched; the repository drops the ones it does not
// know. Blank criteria are ignored.
func parseSearch(values url.Values, defaultMax int) (query.Search, error) {
	search := query.Search{
		Ascending: true,
		Max:       defaultMax,
		Criteria:  make(map[string]string),
	}

	for key, raw := range values {
		v, ok, err := pstrings.Single(raw)
		if err != nil {
			return query.Search{}, dErrors.Wrap(err, dErrors.CodeBadRequest, key+" must be given once")
		}
		if !ok {
			continue
		}

		switch key {
		case paramExact:
			search.Exact, err = strconv.ParseBool(v)
		case paramAsc:
			search.Ascending, err = strconv.ParseBool(v)
		case paramSort:
			search.SortColumn = v
		case paramOffset:
			search.Offset, err = strconv.Atoi(v)
		case paramMax:
			search.Max, err = strconv.Atoi(v)
		default:
			search.Criteria[key] = v
		}
		if err != nil {
			return query.Search{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed "+key)
		}
	}
	return search, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "id must be a positive integer")
	}
	return id, nil
}
