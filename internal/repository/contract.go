package repository

import (
	"context"
	"errors"
	"iter"
	"math"

	"github.com/localnerve/jam-build-entities/internal/models"
)

// ErrConcurrentModificationOrNotFound is returned by Save when the row to
// update no longer exists at write time.
var ErrConcurrentModificationOrNotFound = errors.New("concurrent modification or entity not found")

// Repository is the persistence contract every entity handler depends on
type Repository[T any, ID comparable] interface {
	// FindAll streams every entity in identifier order, or one page of them.
	// Each range over the returned sequence runs the query again.
	FindAll(ctx context.Context, page *PageOptions) iter.Seq2[*T, error]
	// FindAllBy is FindAll narrowed by criteria
	FindAllBy(ctx context.Context, page *PageOptions, criteria *Criteria) iter.Seq2[*T, error]
	// FindByID returns nil, nil when no row matches
	FindByID(ctx context.Context, id ID) (*T, error)
	ExistsByID(ctx context.Context, id ID) (bool, error)
	// Save inserts when the id is unset and replaces all fields otherwise
	Save(ctx context.Context, entity *T) (*T, error)
	// DeleteByID succeeds whether or not the row existed
	DeleteByID(ctx context.Context, id ID) error
	Count(ctx context.Context) (int64, error)
	// CheckPage rejects an unknown sort property before any query runs
	CheckPage(page *PageOptions) error
}

// EntityPtr constrains a pointer to an entity struct
type EntityPtr[T any, ID comparable] interface {
	*T
	models.Entity[ID]
}

// Criteria is a raw SQL condition with bind arguments.
// Columns must be qualified with the aliases of the query they are applied to.
type Criteria struct {
	Clause string
	Args   []any
}

// Where builds a single criteria clause
func Where(clause string, args ...any) *Criteria {
	return &Criteria{Clause: clause, Args: args}
}

// And combines two criteria conjunctively; nil operands are ignored
func (c *Criteria) And(other *Criteria) *Criteria {
	switch {
	case c == nil:
		return other
	case other == nil:
		return c
	}
	args := make([]any, 0, len(c.Args)+len(other.Args))
	args = append(args, c.Args...)
	args = append(args, other.Args...)
	return &Criteria{Clause: "(" + c.Clause + ") AND (" + other.Clause + ")", Args: args}
}

// SortOrder is one ordering term of a page request
type SortOrder struct {
	Property string
	Desc     bool
}

// PageOptions requests ordering and optional slicing.
// Size zero means no limit.
type PageOptions struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset is the number of rows skipped before the page.
// It saturates at math.MaxInt so far pages come back empty.
func (p *PageOptions) Offset() int {
	if p == nil || p.Size <= 0 || p.Page <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Collect drains a sequence, stopping at the first error
func Collect[T any](seq iter.Seq2[*T, error]) ([]*T, error) {
	items := []*T{}
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
