// Package settings stores operator-editable configuration as JSON values
// keyed by name. Every change is mirrored into history.
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/briclabs/evcoordinator-sub000/internal/query"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
	"github.com/briclabs/evcoordinator-sub000/internal/validation"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/sentinel"
)

const Table = "configuration"

type Configuration struct {
	ID          *int64          `json:"id"`
	ConfigKey   string          `json:"configKey"`
	ConfigValue json.RawMessage `json:"configValue"`
	Description *string         `json:"description"`
}

var Columns = query.NewColumnSet(
	query.Column{Field: "id", Name: "id", Kind: query.KindInt},
	query.Column{Field: "configKey", Name: "config_key", Kind: query.KindText},
	query.Column{Field: "configValue", Name: "config_value", Kind: query.KindJSON},
	query.Column{Field: "description", Name: "description", Kind: query.KindText},
)

type descriptor struct{}

func (descriptor) Table() string             { return Table }
func (descriptor) Columns() *query.ColumnSet { return Columns }
func (descriptor) ID(c Configuration) *int64 { return c.ID }
func (descriptor) DuplicateFields() []string { return []string{"configKey"} }

func (descriptor) WithID(c Configuration, id int64) Configuration {
	c.ID = &id
	return c
}

// Values stores the value compacted so exact criteria compare textually.
func (descriptor) Values(c Configuration) []any {
	value := string(c.ConfigValue)
	if compact, err := query.CompactJSON(c.ConfigValue); err == nil {
		value = compact
	}
	return []any{c.ConfigKey, value, c.Description}
}

func (descriptor) Scan(row query.Scanner) (Configuration, error) {
	var (
		c           Configuration
		id          int64
		value       string
		description sql.NullString
	)
	if err := row.Scan(&id, &c.ConfigKey, &value, &description); err != nil {
		return Configuration{}, err
	}
	c.ID = &id
	c.ConfigValue = json.RawMessage(value)
	c.Description = repository.StringPtr(description)
	return c, nil
}

type Store = repository.Repository[Configuration]

func NewStore(exec *query.Executor, opts ...repository.Option) *Store {
	return repository.New[Configuration](exec, descriptor{}, opts...)
}

// Service validates configuration writes. Keys are unique: a second insert
// under an existing key is a duplicate whatever its value.
type Service struct {
	store *Store
}

func NewService(store *Store) (*Service, error) {
	if store == nil {
		return nil, errors.New("configuration store is required")
	}
	return &Service{store: store}, nil
}

func validate(c Configuration) error {
	errs := &dErrors.ValidationError{}
	validation.NotBlank(errs, "configKey", c.ConfigKey)
	validation.JSON(errs, "configValue", c.ConfigValue)
	validation.OptionalNotBlank(errs, "description", c.Description)
	return errs.Err()
}

func (s *Service) Define(ctx context.Context, actorID int64, c Configuration) (int64, error) {
	if err := validate(c); err != nil {
		return 0, err
	}
	c.ID = nil
	return repository.InsertIfAbsent[Configuration](ctx, s.store, actorID, c, "configuration key")
}

// Lookup returns the setting stored under key.
func (s *Service) Lookup(ctx context.Context, key string) (Configuration, error) {
	page, err := s.store.FetchByCriteria(ctx, query.Search{
		Exact:     true,
		Criteria:  map[string]string{"configKey": key},
		Ascending: true,
		Max:       1,
	})
	if err != nil {
		return Configuration{}, dErrors.Wrap(err, dErrors.CodeInternal, "lookup configuration")
	}
	if len(page.Items) == 0 {
		return Configuration{}, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "configuration "+key+" not found")
	}
	return page.Items[0], nil
}

func (s *Service) Change(ctx context.Context, actorID int64, c Configuration) (int64, error) {
	if c.ID == nil {
		return 0, dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeBadRequest, "configuration id is required")
	}
	if err := validate(c); err != nil {
		return 0, err
	}
	if err := s.keyFree(ctx, c.ConfigKey, *c.ID); err != nil {
		return 0, err
	}
	n, err := s.store.UpdateExisting(ctx, actorID, c)
	if err != nil && !dErrors.HasCode(err, dErrors.CodeAuditWrite) {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "update configuration")
	}
	return n, err
}

// keyFree fails with CodeConflict when key belongs to a row other than id.
func (s *Service) keyFree(ctx context.Context, key string, id int64) error {
	page, err := s.store.FetchByCriteria(ctx, query.Search{
		Exact:     true,
		Criteria:  map[string]string{"configKey": key},
		Ascending: true,
		Max:       2,
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "check configuration key")
	}
	for _, other := range page.Items {
		if *other.ID != id {
			return dErrors.New(dErrors.CodeConflict, "configuration key "+key+" is already recorded")
		}
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, actorID, id int64) (int64, error) {
	n, err := s.store.DeleteByID(ctx, actorID, id)
	if err != nil && !dErrors.HasCode(err, dErrors.CodeAuditWrite) {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "delete configuration")
	}
	return n, err
}
