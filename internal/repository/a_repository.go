package repository

import (
	"context"

	"github.com/localnerve/jam-build-entities/internal/models"
	"gorm.io/gorm"
)

// ARepository adds eager loading of the derived Bs view
type ARepository struct {
	*GormRepository[models.A, *models.A, int64]
	withBs *QueryBuilder
}

// NewARepository creates the A repository
func NewARepository(db *gorm.DB) *ARepository {
	return &ARepository{
		GormRepository: NewGormRepository[models.A, *models.A, int64](db, Mapping[models.A]{
			Entity: "a",
			Query:  NewQueryBuilder("a", ATable, AColumns...),
			Mapper: MapA,
		}),
		withBs: NewQueryBuilder("a", ATable, AColumns...).
			LeftJoin(ChildBTable, "id", "aa_id", BColumns...),
	}
}

// FindAllWithBs pages the As, then fills each one's Bs from a single join
// over the page's identifiers.
func (r *ARepository) FindAllWithBs(ctx context.Context, page *PageOptions) ([]*models.A, error) {
	parents, err := Collect(r.FindAll(ctx, page))
	if err != nil || len(parents) == 0 {
		return parents, err
	}
	return parents, r.loadBs(ctx, parents)
}

// FindByIDWithBs returns nil, nil when no A matches
func (r *ARepository) FindByIDWithBs(ctx context.Context, id int64) (*models.A, error) {
	a, err := r.FindByID(ctx, id)
	if err != nil || a == nil {
		return a, err
	}
	return a, r.loadBs(ctx, []*models.A{a})
}

func (r *ARepository) loadBs(ctx context.Context, parents []*models.A) error {
	byID := make(map[int64]*models.A, len(parents))
	ids := make([]int64, 0, len(parents))
	for _, a := range parents {
		a.Bs = []*models.B{}
		byID[*a.ID] = a
		ids = append(ids, *a.ID)
	}

	for row, err := range r.rows(ctx, r.withBs, Where(EntityAlias+".id IN ?", ids), nil) {
		if err != nil {
			return err
		}
		parentID := ColumnInt64(row, Column(EntityAlias, "id"))
		if parentID == nil {
			continue
		}
		child := MapB(row, ChildBTable.Alias)
		if child.ID == nil {
			continue
		}
		if parent, ok := byID[*parentID]; ok {
			parent.AddB(child)
		}
	}
	return nil
}
