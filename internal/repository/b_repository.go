package repository

import (
	"context"
	"iter"

	"github.com/localnerve/jam-build-entities/internal/models"
	"gorm.io/gorm"
)

// BRepository reads Bs joined with their parent A
type BRepository struct {
	*GormRepository[models.B, *models.B, int64]
}

// NewBRepository creates the B repository
func NewBRepository(db *gorm.DB) *BRepository {
	qb := NewQueryBuilder("b", BTable, BColumns...).
		Sortable("aId", "aa_id").
		LeftJoin(ParentATable, "aa_id", "id", AColumns...)

	return &BRepository{
		GormRepository: NewGormRepository[models.B, *models.B, int64](db, Mapping[models.B]{
			Entity:      "b",
			Query:       qb,
			Mapper:      MapB,
			Materialize: materializeB,
		}),
	}
}

func materializeB(row Row) *models.B {
	b := MapB(row, EntityAlias)
	if a := MapA(row, ParentATable.Alias); a.ID != nil {
		b.SetA(a)
	}
	return b
}

// FindByA streams the children of parent aID
func (r *BRepository) FindByA(ctx context.Context, page *PageOptions, aID int64) iter.Seq2[*models.B, error] {
	return r.FindAllBy(ctx, page, Where(EntityAlias+".aa_id = ?", aID))
}

// FindAllWhereAIsNull streams the children with no parent
func (r *BRepository) FindAllWhereAIsNull(ctx context.Context, page *PageOptions) iter.Seq2[*models.B, error] {
	return r.FindAllBy(ctx, page, Where(EntityAlias+".aa_id IS NULL"))
}
