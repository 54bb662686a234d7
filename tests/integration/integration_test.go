package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/config"
	"github.com/localnerve/jam-build-entities/internal/database"
	"github.com/localnerve/jam-build-entities/internal/handlers"
	"github.com/localnerve/jam-build-entities/internal/models"
	"github.com/localnerve/jam-build-entities/internal/repository"
	"github.com/localnerve/jam-build-entities/internal/services"
	"github.com/localnerve/jam-build-entities/internal/types"
	"github.com/localnerve/jam-build-entities/internal/utils"
	"github.com/localnerve/jam-build-entities/tests/helpers"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DatabaseSuite runs the repositories and handlers against the DB_TYPE container.
// The schema comes from the seed scripts in data/initdb, so AutoMigrate stays off.
type DatabaseSuite struct {
	suite.Suite
	containers *helpers.TestContainers
	cfg        *config.Config
	db         *gorm.DB
	app        *fiber.App
}

func TestWithDatabaseContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("DB_IMAGE") == "" {
		t.Skip("DB_IMAGE not set, skipping integration test")
	}
	suite.Run(t, new(DatabaseSuite))
}

func (s *DatabaseSuite) SetupSuite() {
	ctx := context.Background()

	tc, err := helpers.CreateDatabaseContainer(s.T())
	s.Require().NoError(err)
	s.containers = tc

	host, port, err := tc.DBEndpoint(ctx)
	s.Require().NoError(err)

	s.cfg = &config.Config{
		AppName:           "myApp",
		Entities:          config.AllEntities,
		RequestTimeout:    10 * time.Second,
		DBType:            os.Getenv("DB_TYPE"),
		DBHost:            host,
		DBPort:            port,
		DBDatabase:        os.Getenv("DB_DATABASE"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBConnectionLimit: 5,
	}
	s.Require().NoError(s.cfg.Validate())

	db, err := database.Connect(s.cfg, zerolog.Nop())
	s.Require().NoError(err)
	s.db = db

	s.app = fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(s.cfg.AppName, zerolog.Nop())})
	handlers.RegisterEntities(s.app.Group("/api"), s.cfg, db, zerolog.Nop())
}

func (s *DatabaseSuite) TearDownSuite() {
	if s.db != nil {
		database.Close(s.db)
	}
	if s.containers != nil {
		s.containers.Terminate(s.T())
	}
}

func (s *DatabaseSuite) SetupTest() {
	// b first, its foreign key points at a
	for _, table := range []string{"b", "a", "c", "d", "eds_application"} {
		s.Require().NoError(s.db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error)
	}
}

func (s *DatabaseSuite) TestHealth() {
	result := services.HealthCheck(context.Background(), s.cfg, s.db, zerolog.Nop())
	s.True(result.Healthy(), "%+v", result)
	s.Equal("disabled", result.Authorizer)
}

func (s *DatabaseSuite) TestParentDeleteNullsChildForeignKey() {
	ctx := context.Background()
	as := repository.NewARepository(s.db)
	bs := repository.NewBRepository(s.db)

	a, err := as.Save(ctx, &models.A{})
	s.Require().NoError(err)
	b := &models.B{}
	b.SetA(a)
	b, err = bs.Save(ctx, b)
	s.Require().NoError(err)

	found, err := repository.Collect(bs.FindByA(ctx, nil, *a.ID))
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(*a.ID, *found[0].A.ID)

	loaded, err := as.FindByIDWithBs(ctx, *a.ID)
	s.Require().NoError(err)
	s.Require().Len(loaded.Bs, 1)
	s.Equal(*b.ID, *loaded.Bs[0].ID)

	s.Require().NoError(as.DeleteByID(ctx, *a.ID))

	orphans, err := repository.Collect(bs.FindAllWhereAIsNull(ctx, nil))
	s.Require().NoError(err)
	s.Require().Len(orphans, 1)
	s.Equal(*b.ID, *orphans[0].ID)
	s.Nil(orphans[0].A)
}

func (s *DatabaseSuite) TestUpdateOfVanishedRow() {
	ctx := context.Background()
	repo := repository.NewEDSApplicationRepository(s.db)

	app, err := repo.Save(ctx, &models.EDSApplication{LogoContentType: ptr("image/png"), Name: ptr("first")})
	s.Require().NoError(err)
	s.Require().NoError(repo.DeleteByID(ctx, *app.ID))

	app.Name = ptr("second")
	_, err = repo.Save(ctx, app)
	s.True(repository.IsConcurrentModification(err), "%v", err)
}

func (s *DatabaseSuite) TestEDSApplicationOverHTTP() {
	body := `{"name":"Portal","logo":"aGVsbG8=","logoContentType":"image/png","needAuth":true}`
	req := httptest.NewRequest("POST", "/api/eds-applications", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	s.Require().Equal(201, resp.StatusCode)

	var created models.EDSApplication
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&created))
	s.Require().NotNil(created.ID)
	s.Equal("/api/eds-applications/"+*created.ID, resp.Header.Get("Location"))
	s.Equal("myApp.eDSApplication.created", resp.Header.Get("X-myApp-alert"))

	req = httptest.NewRequest("PATCH", "/api/eds-applications/"+*created.ID, strings.NewReader(fmt.Sprintf(`{"id":%q,"category":"tools"}`, *created.ID)))
	req.Header.Set("Content-Type", "application/merge-patch+json")
	resp, err = s.app.Test(req, -1)
	s.Require().NoError(err)
	s.Require().Equal(200, resp.StatusCode)

	resp, err = s.app.Test(httptest.NewRequest("GET", "/api/eds-applications/"+*created.ID, nil), -1)
	s.Require().NoError(err)
	s.Require().Equal(200, resp.StatusCode)
	var fetched models.EDSApplication
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&fetched))
	s.Equal("Portal", *fetched.Name)
	s.Equal("tools", *fetched.Category)
	s.Equal([]byte("hello"), fetched.Logo)
	s.True(*fetched.NeedAuth)

	resp, err = s.app.Test(httptest.NewRequest("GET", "/api/eds-applications?page=0&size=5&sort=name,asc", nil), -1)
	s.Require().NoError(err)
	s.Require().Equal(200, resp.StatusCode)
	helpers.AssertTotalCount(s.T(), resp, 1)

	resp, err = s.app.Test(httptest.NewRequest("DELETE", "/api/eds-applications/"+*created.ID, nil), -1)
	s.Require().NoError(err)
	s.Equal(204, resp.StatusCode)

	resp, err = s.app.Test(httptest.NewRequest("GET", "/api/eds-applications/"+*created.ID, nil), -1)
	s.Require().NoError(err)
	helpers.AssertErrorEnvelope(s.T(), resp, 404, types.KindNotFound, "eDSApplication")
}

func (s *DatabaseSuite) TestStreamedList() {
	ctx := context.Background()
	repo := repository.NewCRepository(s.db)
	for range 3 {
		_, err := repo.Save(ctx, &models.C{})
		s.Require().NoError(err)
	}

	req := httptest.NewRequest("GET", "/api/cs", nil)
	req.Header.Set("Accept", handlers.NDJSON)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	s.Require().Equal(200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	s.Len(lines, 3)
}

func ptr[V any](v V) *V {
	return &v
}
