package repository

import (
	"strconv"
	"strings"

	"github.com/localnerve/jam-build-entities/internal/models"
)

// Row is one result row keyed by column alias
type Row map[string]any

// RowMapper builds an entity from the columns of row named prefix_<column>
type RowMapper[T any] func(row Row, prefix string) *T

// Column returns the alias of column for the given table role prefix
func Column(prefix, column string) string {
	return prefix + "_" + column
}

func (r Row) lookup(key string) (any, bool) {
	if v, ok := r[key]; ok {
		return v, v != nil
	}
	// some drivers report aliases in upper case
	for k, v := range r {
		if strings.EqualFold(k, key) {
			return v, v != nil
		}
	}
	return nil, false
}

// ColumnInt64 coerces a numeric or textual column to int64
func ColumnInt64(row Row, key string) *int64 {
	v, ok := row.lookup(key)
	if !ok {
		return nil
	}
	var n int64
	switch t := v.(type) {
	case int64:
		n = t
	case int32:
		n = int64(t)
	case int:
		n = int64(t)
	case uint64:
		n = int64(t)
	case float64:
		n = int64(t)
	case []byte:
		parsed, err := strconv.ParseInt(string(t), 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	return &n
}

// ColumnString coerces a textual column to string
func ColumnString(row Row, key string) *string {
	v, ok := row.lookup(key)
	if !ok {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return nil
	}
	return &s
}

// ColumnBool coerces boolean, numeric and textual flags to bool
func ColumnBool(row Row, key string) *bool {
	v, ok := row.lookup(key)
	if !ok {
		return nil
	}
	var b bool
	switch t := v.(type) {
	case bool:
		b = t
	case int64:
		b = t != 0
	case []byte:
		parsed, err := strconv.ParseBool(string(t))
		if err != nil {
			return nil
		}
		b = parsed
	case string:
		parsed, err := strconv.ParseBool(t)
		if err != nil {
			return nil
		}
		b = parsed
	default:
		return nil
	}
	return &b
}

// ColumnBytes returns binary column content
func ColumnBytes(row Row, key string) []byte {
	v, ok := row.lookup(key)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []byte:
		out := make([]byte, len(t))
		copy(out, t)
		return out
	case string:
		return []byte(t)
	}
	return nil
}

// MapA reads an A
func MapA(row Row, prefix string) *models.A {
	return &models.A{ID: ColumnInt64(row, Column(prefix, "id"))}
}

// MapB reads a B with its foreign key; the parent reference is left to the caller
func MapB(row Row, prefix string) *models.B {
	return &models.B{
		ID:  ColumnInt64(row, Column(prefix, "id")),
		AID: ColumnInt64(row, Column(prefix, "aa_id")),
	}
}

func MapC(row Row, prefix string) *models.C {
	return &models.C{ID: ColumnInt64(row, Column(prefix, "id"))}
}

func MapD(row Row, prefix string) *models.D {
	return &models.D{ID: ColumnInt64(row, Column(prefix, "id"))}
}

func MapEDSApplication(row Row, prefix string) *models.EDSApplication {
	return &models.EDSApplication{
		ID:              ColumnString(row, Column(prefix, "id")),
		Name:            ColumnString(row, Column(prefix, "name")),
		Logo:            ColumnBytes(row, Column(prefix, "logo")),
		LogoContentType: ColumnString(row, Column(prefix, "logo_content_type")),
		Link:            ColumnString(row, Column(prefix, "link")),
		Description:     ColumnString(row, Column(prefix, "description")),
		Category:        ColumnString(row, Column(prefix, "category")),
		AuthorizedRole:  ColumnString(row, Column(prefix, "authorized_role")),
		NeedAuth:        ColumnBool(row, Column(prefix, "need_auth")),
		DefaultHidden:   ColumnBool(row, Column(prefix, "default_hidden")),
	}
}
