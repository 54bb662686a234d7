package repository

import (
	"github.com/localnerve/jam-build-entities/internal/models"
	"gorm.io/gorm"
)

// Column sets per table, in projection order
var (
	AColumns              = []string{"id"}
	BColumns              = []string{"id", "aa_id"}
	CColumns              = []string{"id"}
	DColumns              = []string{"id"}
	EDSApplicationColumns = []string{
		"id", "name", "logo", "logo_content_type", "link", "description",
		"category", "authorized_role", "need_auth", "default_hidden",
	}
)

// Table roles
var (
	ATable              = Table{Name: "a", Alias: EntityAlias}
	BTable              = Table{Name: "b", Alias: EntityAlias}
	CTable              = Table{Name: "c", Alias: EntityAlias}
	DTable              = Table{Name: "d", Alias: EntityAlias}
	EDSApplicationTable = Table{Name: "eds_application", Alias: EntityAlias}

	// a joined A as seen from a B read
	ParentATable = Table{Name: "a", Alias: "a"}
	// joined Bs as seen from an A eager read
	ChildBTable = Table{Name: "b", Alias: "b"}
)

type (
	CRepository              = GormRepository[models.C, *models.C, int64]
	DRepository              = GormRepository[models.D, *models.D, int64]
	EDSApplicationRepository = GormRepository[models.EDSApplication, *models.EDSApplication, string]
)

// NewCRepository creates the C repository
func NewCRepository(db *gorm.DB) *CRepository {
	return NewGormRepository[models.C, *models.C, int64](db, Mapping[models.C]{
		Entity: "c",
		Query:  NewQueryBuilder("c", CTable, CColumns...),
		Mapper: MapC,
	})
}

// NewDRepository creates the D repository
func NewDRepository(db *gorm.DB) *DRepository {
	return NewGormRepository[models.D, *models.D, int64](db, Mapping[models.D]{
		Entity: "d",
		Query:  NewQueryBuilder("d", DTable, DColumns...),
		Mapper: MapD,
	})
}

// NewEDSApplicationRepository creates the EDSApplication repository.
// API properties sort by their snake_case columns.
func NewEDSApplicationRepository(db *gorm.DB) *EDSApplicationRepository {
	qb := NewQueryBuilder("eDSApplication", EDSApplicationTable, EDSApplicationColumns...).
		Sortable("logoContentType", "logo_content_type").
		Sortable("authorizedRole", "authorized_role").
		Sortable("needAuth", "need_auth").
		Sortable("defaultHidden", "default_hidden")
	return NewGormRepository[models.EDSApplication, *models.EDSApplication, string](db, Mapping[models.EDSApplication]{
		Entity: "eDSApplication",
		Query:  qb,
		Mapper: MapEDSApplication,
	})
}
