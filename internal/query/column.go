package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/briclabs/evcoordinator-sub000/pkg/domain"
)

// Kind is the native type of a column. It decides how a criteria string is
// parsed and which comparison the compiler emits.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindMoney
	KindDate
	KindTimestamp
	KindBool
	KindJSON
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindMoney:
		return "money"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	case KindBool:
		return "bool"
	case KindJSON:
		return "json"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Parse converts a string-encoded criteria value into the value bound for a
// column of kind k.
func (k Kind) Parse(raw string) (any, error) {
	switch k {
	case KindText:
		return raw, nil
	case KindInt:
		return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	case KindMoney:
		return domain.ParseMoney(raw)
	case KindDate:
		return domain.ParseDate(raw)
	case KindTimestamp:
		return time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	case KindBool:
		return strconv.ParseBool(strings.TrimSpace(raw))
	case KindJSON:
		return CompactJSON([]byte(raw))
	default:
		return nil, fmt.Errorf("unsupported column kind %s", k)
	}
}

// CompactJSON validates raw and returns its compact text form. JSON columns
// are stored compacted so equality is textual.
func CompactJSON(raw []byte) (string, error) {
	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		return "", fmt.Errorf("invalid json: %w", err)
	}
	return out.String(), nil
}

// Column is a typed handle on one SQL column of an entity. Field is the
// caller-facing name used in criteria maps and sort parameters.
type Column struct {
	Field string
	Name  string
	Kind  Kind
}

func (c Column) IsZero() bool { return c.Name == "" }

// TextLike reports whether fuzzy matching uses a contains comparison.
func (c Column) TextLike() bool {
	return c.Kind == KindText || c.Kind == KindJSON
}

// Quoted is the column name as an SQL identifier.
func (c Column) Quoted() string {
	return pq.QuoteIdentifier(c.Name)
}

// QuoteTable quotes a table or view name.
func QuoteTable(name string) string {
	return pq.QuoteIdentifier(name)
}
