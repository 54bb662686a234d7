// gorm_repository.go
//
// Generated entity CRUD REST services for the jam-build data tier
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-entities.
// jam-build-entities is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-entities is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-entities.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package repository

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/jmoiron/sqlx"
	"github.com/localnerve/jam-build-entities/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mapping binds an entity type to its table, columns and row materialisation
type Mapping[T any] struct {
	// Entity is the name used in query hints and logs
	Entity string
	Query  *QueryBuilder
	// Materialize turns one joined row into an entity; defaults to Mapper under EntityAlias
	Materialize func(row Row) *T
	Mapper      RowMapper[T]
}

func (m Mapping[T]) materialize(row Row) *T {
	if m.Materialize != nil {
		return m.Materialize(row)
	}
	return m.Mapper(row, EntityAlias)
}

// GormRepository implements Repository over a GORM connection pool
type GormRepository[T any, PT EntityPtr[T, ID], ID comparable] struct {
	db      *gorm.DB
	mapping Mapping[T]
}

// NewGormRepository creates a repository for one entity mapping
func NewGormRepository[T any, PT EntityPtr[T, ID], ID comparable](db *gorm.DB, mapping Mapping[T]) *GormRepository[T, PT, ID] {
	return &GormRepository[T, PT, ID]{db: db, mapping: mapping}
}

func (r *GormRepository[T, PT, ID]) CheckPage(page *PageOptions) error {
	_, err := r.mapping.Query.OrderBy(page)
	return err
}

func (r *GormRepository[T, PT, ID]) table() string {
	return r.mapping.Query.Table().Name
}

func (r *GormRepository[T, PT, ID]) FindAll(ctx context.Context, page *PageOptions) iter.Seq2[*T, error] {
	return r.FindAllBy(ctx, page, nil)
}

func (r *GormRepository[T, PT, ID]) FindAllBy(ctx context.Context, page *PageOptions, criteria *Criteria) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for row, err := range r.rows(ctx, r.mapping.Query, criteria, page) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(r.mapping.materialize(row), nil) {
				return
			}
		}
	}
}

// rows streams the raw rows of a query rendered by qb
func (r *GormRepository[T, PT, ID]) rows(ctx context.Context, qb *QueryBuilder, criteria *Criteria, page *PageOptions) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		tx, err := qb.Build(r.db.WithContext(ctx), criteria, page)
		if err != nil {
			yield(nil, err)
			return
		}

		rows, err := tx.Rows()
		if err != nil {
			yield(nil, fmt.Errorf("failed to query %s: %w", r.mapping.Entity, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			row := Row{}
			if err := sqlx.MapScan(rows, row); err != nil {
				yield(nil, fmt.Errorf("failed to scan %s: %w", r.mapping.Entity, err))
				return
			}
			if !yield(row, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to read %s rows: %w", r.mapping.Entity, err))
		}
	}
}

func (r *GormRepository[T, PT, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	page := &PageOptions{Size: 1}
	for entity, err := range r.FindAllBy(ctx, page, Where(EntityAlias+".id = ?", id)) {
		if err != nil {
			return nil, err
		}
		return entity, nil
	}
	return nil, nil
}

func (r *GormRepository[T, PT, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	return r.exists(r.db.WithContext(ctx), id)
}

func (r *GormRepository[T, PT, ID]) exists(tx *gorm.DB, id ID) (bool, error) {
	var count int64
	if err := tx.Table(r.table()).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", r.mapping.Entity, err)
	}
	return count > 0, nil
}

func (r *GormRepository[T, PT, ID]) Save(ctx context.Context, entity *T) (*T, error) {
	e := PT(entity)
	db := r.db.WithContext(ctx)

	if e.GetID() == nil {
		if assigner, ok := any(e).(models.IDAssigner); ok {
			assigner.AssignNewID()
		}
		if err := db.Omit(clause.Associations).Create(entity).Error; err != nil {
			return nil, fmt.Errorf("failed to insert %s: %w", r.mapping.Entity, err)
		}
		return entity, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// full replacement: zero values are written too
		result := tx.Model(entity).Select("*").Omit(clause.Associations, "id").Updates(entity)
		if result.Error != nil {
			return fmt.Errorf("failed to update %s: %w", r.mapping.Entity, result.Error)
		}
		if result.RowsAffected > 0 {
			return nil
		}
		// zero rows: either gone or unchanged
		found, err := r.exists(tx, *e.GetID())
		if err != nil {
			return err
		}
		if !found {
			return ErrConcurrentModificationOrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *GormRepository[T, PT, ID]) DeleteByID(ctx context.Context, id ID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.mapping.Entity, err)
	}
	return nil
}

func (r *GormRepository[T, PT, ID]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table(r.table()).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.mapping.Entity, err)
	}
	return count, nil
}

// IsConcurrentModification reports whether err means the updated row vanished
func IsConcurrentModification(err error) bool {
	return errors.Is(err, ErrConcurrentModificationOrNotFound)
}
