package handlers_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/config"
	"github.com/localnerve/jam-build-entities/internal/handlers"
	"github.com/localnerve/jam-build-entities/internal/models"
	"github.com/localnerve/jam-build-entities/internal/types"
	"github.com/localnerve/jam-build-entities/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates a migrated SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.A{},
		&models.B{},
		&models.C{},
		&models.D{},
		&models.EDSApplication{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupApp(t *testing.T, entities ...string) (*fiber.App, *gorm.DB) {
	if len(entities) == 0 {
		entities = config.AllEntities
	}
	cfg := &config.Config{
		AppName:        "myApp",
		Entities:       entities,
		RequestTimeout: 5 * time.Second,
	}
	db := setupTestDB(t)

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler(cfg.AppName, zerolog.Nop())})
	handlers.RegisterEntities(app.Group("/api"), cfg, db, zerolog.Nop())
	return app, db
}

type result struct {
	status int
	header http.Header
	body   []byte
}

func (r result) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), string(r.body))
}

func (r result) errorBody(t *testing.T) utils.ErrorResponseStruct {
	var e utils.ErrorResponseStruct
	r.decode(t, &e)
	return e
}

func call(t *testing.T, app *fiber.App, method, path, body string, headers ...string) result {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return result{status: resp.StatusCode, header: resp.Header, body: data}
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

const mergePatch = "application/merge-patch+json"

func TestAScenario(t *testing.T) {
	app, _ := setupApp(t)

	created := call(t, app, "POST", "/api/as", `{}`)
	require.Equal(t, 201, created.status, string(created.body))
	assert.JSONEq(t, `{"id":1}`, string(created.body))
	assert.Equal(t, "/api/as/1", created.header.Get("Location"))
	assert.Equal(t, "myApp.a.created", created.header.Get("X-myApp-alert"))
	assert.Equal(t, "1", created.header.Get("X-myApp-params"))

	got := call(t, app, "GET", "/api/as/1", "")
	require.Equal(t, 200, got.status)
	assert.JSONEq(t, `{"id":1}`, string(got.body))

	patched := call(t, app, "PATCH", "/api/as/1", `{"id":1}`, "Content-Type", mergePatch)
	require.Equal(t, 200, patched.status, string(patched.body))
	assert.JSONEq(t, `{"id":1}`, string(patched.body))
	assert.Equal(t, "myApp.a.updated", patched.header.Get("X-myApp-alert"))

	deleted := call(t, app, "DELETE", "/api/as/1", "")
	require.Equal(t, 204, deleted.status)
	assert.Equal(t, "myApp.a.deleted", deleted.header.Get("X-myApp-alert"))

	gone := call(t, app, "GET", "/api/as/1", "")
	assert.Equal(t, 404, gone.status)
	goneBody := gone.errorBody(t)
	assert.Equal(t, types.KindNotFound, goneBody.Type)
	assert.Equal(t, "a", goneBody.EntityName)
}

func TestCreateWithIDRejected(t *testing.T) {
	app, db := setupApp(t)

	res := call(t, app, "POST", "/api/cs", `{"id":7}`)
	require.Equal(t, 400, res.status)
	body := res.errorBody(t)
	assert.Equal(t, types.KindIDAlreadyExists, body.Type)
	assert.Equal(t, "c", body.EntityName)
	assert.Equal(t, "error.idexists", res.header.Get("X-myApp-error"))
	assert.Zero(t, countRows(t, db, "c"))
}

func TestUpdateRejections(t *testing.T) {
	app, db := setupApp(t)
	require.Equal(t, 201, call(t, app, "POST", "/api/ds", `{}`).status)

	cases := []struct {
		name, method, path, body, contentType, kind string
	}{
		{"missing id", "PUT", "/api/ds/1", `{}`, "application/json", types.KindIDMissing},
		{"mismatch", "PUT", "/api/ds/1", `{"id":2}`, "application/json", types.KindIDMismatch},
		{"not found", "PUT", "/api/ds/99", `{"id":99}`, "application/json", types.KindEntityNotFound},
		{"patch missing id", "PATCH", "/api/ds/1", `{}`, mergePatch, types.KindIDMissing},
		{"patch mismatch", "PATCH", "/api/ds/1", `{"id":3}`, mergePatch, types.KindIDMismatch},
		{"patch not found", "PATCH", "/api/ds/42", `{"id":42}`, mergePatch, types.KindEntityNotFound},
		{"bad path id", "PUT", "/api/ds/abc", `{"id":1}`, "application/json", types.KindValidation},
		{"bad body", "PUT", "/api/ds/1", `{"id":`, "application/json", types.KindValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := call(t, app, tc.method, tc.path, tc.body, "Content-Type", tc.contentType)
			require.Equal(t, 400, res.status, string(res.body))
			assert.Equal(t, tc.kind, res.errorBody(t).Type)
		})
	}
	assert.Equal(t, int64(1), countRows(t, db, "d"))
}

func TestRoutingRejections(t *testing.T) {
	app, _ := setupApp(t)

	assert.Equal(t, 405, call(t, app, "PUT", "/api/cs", `{"id":1}`).status)
	assert.Equal(t, 405, call(t, app, "PATCH", "/api/cs", `{"id":1}`, "Content-Type", mergePatch).status)
	assert.Equal(t, 405, call(t, app, "DELETE", "/api/cs", "").status)

	res := call(t, app, "PATCH", "/api/cs/1", `{"id":1}`, "Content-Type", "application/json")
	assert.Equal(t, 415, res.status)
	assert.Equal(t, types.KindUnsupportedMediaType, res.errorBody(t).Type)
}

func TestDeleteMissingIsNoContent(t *testing.T) {
	app, db := setupApp(t)
	require.Equal(t, 201, call(t, app, "POST", "/api/cs", `{}`).status)

	assert.Equal(t, 204, call(t, app, "DELETE", "/api/cs/500", "").status)
	assert.Equal(t, int64(1), countRows(t, db, "c"))
}

func TestGetAllPagingAndTotal(t *testing.T) {
	app, _ := setupApp(t)
	for range 5 {
		require.Equal(t, 201, call(t, app, "POST", "/api/cs", `{}`).status)
	}

	all := call(t, app, "GET", "/api/cs", "")
	require.Equal(t, 200, all.status)
	var cs []models.C
	all.decode(t, &cs)
	require.Len(t, cs, 5)
	assert.Empty(t, all.header.Get("X-Total-Count"))

	page := call(t, app, "GET", "/api/cs?page=1&size=2&sort=id,desc", "")
	require.Equal(t, 200, page.status)
	assert.Equal(t, "5", page.header.Get("X-Total-Count"))
	cs = nil
	page.decode(t, &cs)
	require.Len(t, cs, 2)
	assert.Equal(t, int64(3), *cs[0].ID)
	assert.Equal(t, int64(2), *cs[1].ID)

	assert.Equal(t, 400, call(t, app, "GET", "/api/cs?sort=secret", "").status)
	assert.Equal(t, 400, call(t, app, "GET", "/api/cs?size=-1", "").status)
}

func TestGetAllEmptyIsArray(t *testing.T) {
	app, _ := setupApp(t)
	res := call(t, app, "GET", "/api/ds", "")
	require.Equal(t, 200, res.status)
	assert.JSONEq(t, `[]`, string(res.body))
}

func TestGetAllStreamsNDJSON(t *testing.T) {
	app, _ := setupApp(t)
	for range 3 {
		require.Equal(t, 201, call(t, app, "POST", "/api/cs", `{}`).status)
	}

	res := call(t, app, "GET", "/api/cs", "", "Accept", handlers.NDJSON)
	require.Equal(t, 200, res.status)
	assert.Equal(t, handlers.NDJSON, res.header.Get("Content-Type"))

	var ids []int64
	scanner := bufio.NewScanner(bytes.NewReader(res.body))
	for scanner.Scan() {
		var c models.C
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &c))
		ids = append(ids, *c.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestGetAllRejectsUnknownSort(t *testing.T) {
	app, _ := setupApp(t)
	require.Equal(t, 201, call(t, app, "POST", "/api/cs", `{}`).status)

	plain := call(t, app, "GET", "/api/cs?sort=secret", "")
	require.Equal(t, 400, plain.status, string(plain.body))
	assert.Equal(t, types.KindValidation, plain.errorBody(t).Type)

	streamed := call(t, app, "GET", "/api/cs?sort=secret", "", "Accept", handlers.NDJSON)
	require.Equal(t, 400, streamed.status, string(streamed.body))
	body := streamed.errorBody(t)
	assert.Equal(t, types.KindValidation, body.Type)
	assert.Equal(t, "c", body.EntityName)

	filtered := call(t, app, "GET", "/api/bs?filter=a-is-null&sort=secret", "", "Accept", handlers.NDJSON)
	assert.Equal(t, 400, filtered.status)
}

func TestGetAllFarPageIsEmpty(t *testing.T) {
	app, _ := setupApp(t)
	require.Equal(t, 201, call(t, app, "POST", "/api/cs", `{}`).status)

	res := call(t, app, "GET", "/api/cs?page=9223372036854775807&size=20", "")
	require.Equal(t, 200, res.status, string(res.body))
	assert.JSONEq(t, `[]`, string(res.body))
	assert.Equal(t, "1", res.header.Get("X-Total-Count"))
}

func TestBParentFilters(t *testing.T) {
	app, _ := setupApp(t)
	require.Equal(t, 201, call(t, app, "POST", "/api/as", `{}`).status)

	child := call(t, app, "POST", "/api/bs", `{"aId":1}`)
	require.Equal(t, 201, child.status, string(child.body))
	orphan := call(t, app, "POST", "/api/bs", `{}`)
	require.Equal(t, 201, orphan.status)

	var bs []models.B
	byParent := call(t, app, "GET", "/api/bs?aId=1", "")
	require.Equal(t, 200, byParent.status)
	byParent.decode(t, &bs)
	require.Len(t, bs, 1)
	assert.Equal(t, int64(1), *bs[0].ID)
	require.NotNil(t, bs[0].A)
	assert.Equal(t, int64(1), *bs[0].A.ID)

	bs = nil
	orphans := call(t, app, "GET", "/api/bs?filter=a-is-null", "")
	require.Equal(t, 200, orphans.status)
	orphans.decode(t, &bs)
	require.Len(t, bs, 1)
	assert.Equal(t, int64(2), *bs[0].ID)

	// nulling the parent moves the child to the parentless set
	require.Equal(t, 200, call(t, app, "PUT", "/api/bs/1", `{"id":1}`).status)
	bs = nil
	call(t, app, "GET", "/api/bs?filter=a-is-null", "").decode(t, &bs)
	assert.Len(t, bs, 2)

	assert.Equal(t, 400, call(t, app, "GET", "/api/bs?aId=x", "").status)
}

func TestAEagerLoad(t *testing.T) {
	app, _ := setupApp(t)
	require.Equal(t, 201, call(t, app, "POST", "/api/as", `{}`).status)
	require.Equal(t, 201, call(t, app, "POST", "/api/bs", `{"a":{"id":1}}`).status)
	require.Equal(t, 201, call(t, app, "POST", "/api/bs", `{"aId":1}`).status)

	var a models.A
	call(t, app, "GET", "/api/as/1?eagerload=true", "").decode(t, &a)
	require.Len(t, a.Bs, 2)
	assert.Equal(t, int64(1), *a.Bs[0].AID)

	plain := call(t, app, "GET", "/api/as/1", "")
	assert.JSONEq(t, `{"id":1}`, string(plain.body))

	var as []models.A
	call(t, app, "GET", "/api/as?eagerload=true", "").decode(t, &as)
	require.Len(t, as, 1)
	assert.Len(t, as[0].Bs, 2)

	require.Equal(t, 201, call(t, app, "POST", "/api/as", `{}`).status)
	childless := call(t, app, "GET", "/api/as/2?eagerload=true", "")
	require.Equal(t, 200, childless.status)
	assert.JSONEq(t, `{"id":2,"bs":[]}`, string(childless.body))
}

func TestEDSApplicationLifecycle(t *testing.T) {
	app, db := setupApp(t)

	invalid := call(t, app, "POST", "/api/eds-applications", `{"name":"portal"}`)
	require.Equal(t, 400, invalid.status)
	assert.Equal(t, types.KindValidation, invalid.errorBody(t).Type)
	assert.Zero(t, countRows(t, db, "eds_application"))

	created := call(t, app, "POST", "/api/eds-applications",
		`{"name":"portal","logo":"iVBORw==","logoContentType":"image/png","link":"https://eds","needAuth":true}`)
	require.Equal(t, 201, created.status, string(created.body))
	var saved models.EDSApplication
	created.decode(t, &saved)
	require.NotNil(t, saved.ID)
	assert.Equal(t, "/api/eds-applications/"+*saved.ID, created.header.Get("Location"))
	assert.Equal(t, "myApp.eDSApplication.created", created.header.Get("X-myApp-alert"))

	// patch overlays only the present fields, plain JSON accepted
	patched := call(t, app, "PATCH", "/api/eds-applications/"+*saved.ID,
		`{"id":"`+*saved.ID+`","category":"tools","needAuth":false}`)
	require.Equal(t, 200, patched.status, string(patched.body))
	var merged models.EDSApplication
	call(t, app, "GET", "/api/eds-applications/"+*saved.ID, "").decode(t, &merged)
	assert.Equal(t, "portal", *merged.Name)
	assert.Equal(t, "tools", *merged.Category)
	assert.Equal(t, "https://eds", *merged.Link)
	assert.Equal(t, "image/png", *merged.LogoContentType)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, merged.Logo)
	assert.False(t, *merged.NeedAuth)

	// full update replaces every field and still validates
	require.Equal(t, 400, call(t, app, "PUT", "/api/eds-applications/"+*saved.ID,
		`{"id":"`+*saved.ID+`"}`).status)
	replaced := call(t, app, "PUT", "/api/eds-applications/"+*saved.ID,
		`{"id":"`+*saved.ID+`","logoContentType":"image/svg+xml"}`)
	require.Equal(t, 200, replaced.status, string(replaced.body))
	var full models.EDSApplication
	call(t, app, "GET", "/api/eds-applications/"+*saved.ID, "").decode(t, &full)
	assert.Nil(t, full.Name)
	assert.Nil(t, full.Link)
	assert.Equal(t, "image/svg+xml", *full.LogoContentType)

	assert.Equal(t, 404, call(t, app, "GET", "/api/eds-applications/unknown", "").status)
}

func TestOnlyConfiguredEntitiesMounted(t *testing.T) {
	app, _ := setupApp(t, "c")

	assert.Equal(t, 200, call(t, app, "GET", "/api/cs", "").status)
	assert.Equal(t, 404, call(t, app, "GET", "/api/as", "").status)
	assert.Equal(t, 404, call(t, app, "GET", "/api/eds-applications", "").status)
}
