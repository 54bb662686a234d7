package handlers

import (
	"context"
	"iter"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/config"
	"github.com/localnerve/jam-build-entities/internal/middleware"
	"github.com/localnerve/jam-build-entities/internal/models"
	"github.com/localnerve/jam-build-entities/internal/repository"
	"github.com/localnerve/jam-build-entities/internal/types"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type (
	AHandler              = EntityHandler[models.A, *models.A, int64]
	BHandler              = EntityHandler[models.B, *models.B, int64]
	CHandler              = EntityHandler[models.C, *models.C, int64]
	DHandler              = EntityHandler[models.D, *models.D, int64]
	EDSApplicationHandler = EntityHandler[models.EDSApplication, *models.EDSApplication, string]
)

var mergePatchOnly = []string{middleware.MergePatchJSON}

// NewAHandler serves /api/as; ?eagerload=true includes the derived bs
func NewAHandler(cfg *config.Config, repo *repository.ARepository, log zerolog.Logger) *AHandler {
	return &AHandler{
		Name:       "a",
		Path:       "as",
		AppName:    cfg.AppName,
		Repo:       repo,
		ParseID:    ParseInt64ID,
		PatchTypes: mergePatchOnly,
		Timeout:    cfg.RequestTimeout,
		Log:        log,
		Lister: func(c *fiber.Ctx) (ListFunc[models.A], bool, error) {
			if !c.QueryBool("eagerload") {
				return nil, false, nil
			}
			return func(ctx context.Context, page *repository.PageOptions) iter.Seq2[*models.A, error] {
				return func(yield func(*models.A, error) bool) {
					as, err := repo.FindAllWithBs(ctx, page)
					if err != nil {
						yield(nil, err)
						return
					}
					for _, a := range as {
						if !yield(a, nil) {
							return
						}
					}
				}
			}, false, nil
		},
		Finder: func(c *fiber.Ctx) func(context.Context, int64) (*models.A, error) {
			if !c.QueryBool("eagerload") {
				return nil
			}
			return repo.FindByIDWithBs
		},
	}
}

// NewBHandler serves /api/bs; ?filter=a-is-null and ?aId= select the parent queries
func NewBHandler(cfg *config.Config, repo *repository.BRepository, log zerolog.Logger) *BHandler {
	return &BHandler{
		Name:       "b",
		Path:       "bs",
		AppName:    cfg.AppName,
		Repo:       repo,
		ParseID:    ParseInt64ID,
		PatchTypes: mergePatchOnly,
		Timeout:    cfg.RequestTimeout,
		Log:        log,
		Lister: func(c *fiber.Ctx) (ListFunc[models.B], bool, error) {
			if c.Query("filter") == "a-is-null" {
				return repo.FindAllWhereAIsNull, true, nil
			}
			if raw := c.Query("aId"); raw != "" {
				aID, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return nil, false, types.Validation("b", "invalid aId "+strconv.Quote(raw))
				}
				return func(ctx context.Context, page *repository.PageOptions) iter.Seq2[*models.B, error] {
					return repo.FindByA(ctx, page, aID)
				}, true, nil
			}
			return nil, false, nil
		},
	}
}

func NewCHandler(cfg *config.Config, repo *repository.CRepository, log zerolog.Logger) *CHandler {
	return &CHandler{
		Name:       "c",
		Path:       "cs",
		AppName:    cfg.AppName,
		Repo:       repo,
		ParseID:    ParseInt64ID,
		PatchTypes: mergePatchOnly,
		Timeout:    cfg.RequestTimeout,
		Log:        log,
	}
}

func NewDHandler(cfg *config.Config, repo *repository.DRepository, log zerolog.Logger) *DHandler {
	return &DHandler{
		Name:       "d",
		Path:       "ds",
		AppName:    cfg.AppName,
		Repo:       repo,
		ParseID:    ParseInt64ID,
		PatchTypes: mergePatchOnly,
		Timeout:    cfg.RequestTimeout,
		Log:        log,
	}
}

// NewEDSApplicationHandler serves /api/eds-applications; PATCH also takes plain JSON
func NewEDSApplicationHandler(cfg *config.Config, repo *repository.EDSApplicationRepository, log zerolog.Logger) *EDSApplicationHandler {
	return &EDSApplicationHandler{
		Name:       "eDSApplication",
		Path:       "eds-applications",
		AppName:    cfg.AppName,
		Repo:       repo,
		ParseID:    ParseStringID,
		PatchTypes: []string{middleware.MergePatchJSON, fiber.MIMEApplicationJSON},
		Timeout:    cfg.RequestTimeout,
		Log:        log,
	}
}

// RegisterEntities mounts the configured entity routes on router.
// Writes are guarded only when the Authorizer is configured.
func RegisterEntities(router fiber.Router, cfg *config.Config, db *gorm.DB, log zerolog.Logger) {
	var guards Guards
	if cfg.AuthEnabled() {
		guards = Guards{
			Write:  middleware.AuthUser(cfg, log),
			Delete: middleware.AuthAdmin(cfg, log),
		}
	}

	for _, name := range cfg.Entities {
		switch name {
		case "a":
			NewAHandler(cfg, repository.NewARepository(db), log).Register(router, guards)
		case "b":
			NewBHandler(cfg, repository.NewBRepository(db), log).Register(router, guards)
		case "c":
			NewCHandler(cfg, repository.NewCRepository(db), log).Register(router, guards)
		case "d":
			NewDHandler(cfg, repository.NewDRepository(db), log).Register(router, guards)
		case "eds-application":
			NewEDSApplicationHandler(cfg, repository.NewEDSApplicationRepository(db), log).Register(router, guards)
		}
		log.Info().Str("entity", name).Msg("Mounted entity routes")
	}
}
