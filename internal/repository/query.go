package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/hints"
)

// EntityAlias is the alias of the queried entity's own table in every read
const EntityAlias = "e"

// Table names a table and the alias (column prefix) of its role in a query
type Table struct {
	Name  string
	Alias string
}

type join struct {
	table        Table
	parentColumn string
	childColumn  string
	columns      []string
}

// UnknownSortError reports a sort property outside the entity's column whitelist
type UnknownSortError struct {
	Property string
}

func (e *UnknownSortError) Error() string {
	return fmt.Sprintf("unknown sort property %q", e.Property)
}

// QueryBuilder renders entity reads onto a GORM statement
type QueryBuilder struct {
	entity   string
	table    Table
	columns  []string
	joins    []join
	sortable map[string]string
}

// NewQueryBuilder starts a read of table projecting columns under its alias.
// The base columns double as the sort whitelist.
func NewQueryBuilder(entity string, table Table, columns ...string) *QueryBuilder {
	b := &QueryBuilder{
		entity:   entity,
		table:    table,
		columns:  columns,
		sortable: make(map[string]string, len(columns)),
	}
	for _, col := range columns {
		b.sortable[col] = col
	}
	return b
}

// Sortable maps an API property name to a projected base column
func (b *QueryBuilder) Sortable(property, column string) *QueryBuilder {
	b.sortable[property] = column
	return b
}

// LeftJoin adds a LEFT OUTER JOIN on base.parentColumn = joined.childColumn
func (b *QueryBuilder) LeftJoin(table Table, parentColumn, childColumn string, columns ...string) *QueryBuilder {
	b.joins = append(b.joins, join{
		table:        table,
		parentColumn: parentColumn,
		childColumn:  childColumn,
		columns:      columns,
	})
	return b
}

// Table returns the base table
func (b *QueryBuilder) Table() Table {
	return b.table
}

// Projection lists every selected column qualified and aliased by role
func (b *QueryBuilder) Projection() []string {
	out := make([]string, 0, len(b.columns))
	out = appendProjection(out, b.table.Alias, b.columns)
	for _, j := range b.joins {
		out = appendProjection(out, j.table.Alias, j.columns)
	}
	return out
}

func appendProjection(out []string, alias string, columns []string) []string {
	for _, col := range columns {
		out = append(out, fmt.Sprintf("%s.%s AS %s", alias, col, Column(alias, col)))
	}
	return out
}

// OrderBy resolves the ordering for page, defaulting to the identifier.
// Joined tables are ordered by their identifier after the base ordering.
func (b *QueryBuilder) OrderBy(page *PageOptions) ([]string, error) {
	var terms []string
	hasID := false
	if page != nil {
		for _, s := range page.Sort {
			col, ok := b.sortable[s.Property]
			if !ok {
				return nil, &UnknownSortError{Property: s.Property}
			}
			if col == "id" {
				hasID = true
			}
			dir := "ASC"
			if s.Desc {
				dir = "DESC"
			}
			terms = append(terms, fmt.Sprintf("%s.%s %s", b.table.Alias, col, dir))
		}
	}
	if !hasID {
		terms = append(terms, b.table.Alias+".id ASC")
	}
	for _, j := range b.joins {
		terms = append(terms, j.table.Alias+".id ASC")
	}
	return terms, nil
}

// Build renders the read onto db: projection, joins, criteria, ordering and slicing
func (b *QueryBuilder) Build(db *gorm.DB, criteria *Criteria, page *PageOptions) (*gorm.DB, error) {
	order, err := b.OrderBy(page)
	if err != nil {
		return nil, err
	}

	tx := db.Clauses(hints.CommentBefore("select", "entity:"+b.entity)).
		Table(b.table.Name + " " + b.table.Alias).
		Select(strings.Join(b.Projection(), ", "))

	for _, j := range b.joins {
		tx = tx.Joins(fmt.Sprintf("LEFT OUTER JOIN %s %s ON %s.%s = %s.%s",
			j.table.Name, j.table.Alias,
			b.table.Alias, j.parentColumn,
			j.table.Alias, j.childColumn))
	}

	if criteria != nil && criteria.Clause != "" {
		tx = tx.Where(criteria.Clause, criteria.Args...)
	}

	for _, term := range order {
		tx = tx.Order(term)
	}

	if page != nil && page.Size > 0 {
		tx = tx.Limit(page.Size).Offset(page.Offset())
	}

	return tx, nil
}
