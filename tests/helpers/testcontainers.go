// testcontainers.go
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

// Helpers for running the entity service stack in testcontainers.
// Used by the integration and e2e tests, and by cmd/testcontainers as a standalone stack.
// Expects environment variables to be loaded from .env files.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/jam-build-entities/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	serviceImageName   = "entities-test:latest"
	authzNetworkName   = "authorizer"
	defaultServicePort = "3000"
)

type TestContainers struct {
	Network                 *testcontainers.DockerNetwork
	DBContainer             testcontainers.Container
	AuthorizerContainer     testcontainers.Container
	ServiceContainer        testcontainers.Container
	ServiceBuilderContainer testcontainers.Container
}

func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.ServiceContainer != nil {
		if err := tc.ServiceContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate service: %v", err)
		}
	}
	if tc.ServiceBuilderContainer != nil {
		if err := tc.ServiceBuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate service builder: %v", err)
		}
	}
	if tc.AuthorizerContainer != nil {
		if err := tc.AuthorizerContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Authorizer: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// DBEndpoint returns the host and mapped port of the database container
func (tc *TestContainers) DBEndpoint(ctx context.Context) (string, string, error) {
	return endpoint(ctx, tc.DBContainer, os.Getenv("DB_PORT"))
}

// AuthzURL returns the host-reachable Authorizer URL, empty when no Authorizer runs
func (tc *TestContainers) AuthzURL(ctx context.Context) (string, error) {
	if tc.AuthorizerContainer == nil {
		return "", nil
	}
	host, port, err := endpoint(ctx, tc.AuthorizerContainer, os.Getenv("AUTHZ_PORT"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://%s:%s", host, port), nil
}

// BaseURL returns the host-reachable URL of the service container
func (tc *TestContainers) BaseURL(ctx context.Context) (string, error) {
	host, port, err := endpoint(ctx, tc.ServiceContainer, servicePort())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://%s:%s", host, port), nil
}

func endpoint(ctx context.Context, c testcontainers.Container, containerPort string) (string, string, error) {
	if c == nil {
		return "", "", fmt.Errorf("container not started")
	}
	host, err := c.Host(ctx)
	if err != nil {
		return "", "", err
	}
	port, err := c.MappedPort(ctx, nat.Port(containerPort+"/tcp"))
	if err != nil {
		return "", "", err
	}
	return host, port.Port(), nil
}

// CreateDatabaseContainer starts and seeds only the database on a fresh network
func CreateDatabaseContainer(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	testContainers.Network = nw

	if err := startDatabase(ctx, t, testContainers); err != nil {
		testContainers.Terminate(t)
		return nil, err
	}
	return testContainers, nil
}

// CreateAllTestContainers starts the database, the Authorizer when AUTHZ_IMAGE is set, and the service
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()

	testContainers, err := CreateDatabaseContainer(t)
	if err != nil {
		exitWithError(t, err, "Failed to start database")
	}

	if os.Getenv("AUTHZ_IMAGE") != "" {
		if err := startAuthorizer(ctx, t, testContainers); err != nil {
			testContainers.Terminate(t)
			exitWithError(t, err, "Failed to start Authorizer")
		}
		authzURL, _ := testContainers.AuthzURL(ctx)
		logMessage(t, "AUTHZ_URL=%s", authzURL)
	}

	if err := startService(ctx, t, testContainers); err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start service")
	}

	baseURL, _ := testContainers.BaseURL(ctx)
	logMessage(t, "BASE_URL=%s", baseURL)
	logMessage(t, "Entity service testcontainers started successfully")
	return testContainers, nil
}

func startDatabase(ctx context.Context, t *testing.T, testContainers *TestContainers) error {
	dbType := os.Getenv("DB_TYPE")
	networkName := testContainers.Network.Name
	tcpDbPort, err := nat.NewPort("tcp", os.Getenv("DB_PORT"))
	if err != nil {
		return fmt.Errorf("failed to create DB port: %w", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{string(tcpDbPort)},
			Env:          getDBInitEnvMap(dbType),
			WaitingFor:   wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {os.Getenv("DB_HOST")},
			},
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start database: %w", err)
	}
	testContainers.DBContainer = dbContainer

	dbHost, dbPort, err := testContainers.DBEndpoint(ctx)
	if err != nil {
		return err
	}
	logMessage(t, "Database %s listening at %s:%s", dbType, dbHost, dbPort)

	switch dbType {
	case "postgres":
		return performPostgresDBInit(dbHost, dbPort)
	case "mysql", "mariadb":
		return performMySqlDBInit(dbHost, dbPort)
	}
	return fmt.Errorf("unsupported DB_TYPE %q for testcontainers", dbType)
}

func startAuthorizer(ctx context.Context, t *testing.T, testContainers *TestContainers) error {
	dbType := os.Getenv("DB_TYPE")
	networkName := testContainers.Network.Name
	tcpAuthzPort, err := nat.NewPort("tcp", os.Getenv("AUTHZ_PORT"))
	if err != nil {
		return fmt.Errorf("failed to create Authorizer port: %w", err)
	}

	authzLogLevel := "info"
	if os.Getenv("DEBUG_CONTAINER") == "true" {
		authzLogLevel = "debug"
	}

	authorizerContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("AUTHZ_IMAGE"),
			ExposedPorts: []string{string(tcpAuthzPort)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     os.Getenv("AUTHZ_CLIENT_ID"),
				"PORT":          os.Getenv("AUTHZ_PORT"),
				"DATABASE_TYPE": dbType,
				"DATABASE_NAME": os.Getenv("AUTHZ_DATABASE"),
				"DATABASE_URL":  authzDatabaseURL(dbType),
				"ADMIN_SECRET":  os.Getenv("AUTHZ_ADMIN_SECRET"),
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
				"LOG_LEVEL":     authzLogLevel,
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(10 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {authzNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		return err
	}
	testContainers.AuthorizerContainer = authorizerContainer
	logMessage(t, "Authorizer started")
	return nil
}

func authzDatabaseURL(dbType string) string {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	if dbType == "postgres" {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), dbHost, dbPort, os.Getenv("AUTHZ_DATABASE"))
	}
	return fmt.Sprintf("root:%s@tcp(%s:%s)/%s", os.Getenv("DB_ROOT_PASSWORD"), dbHost, dbPort, os.Getenv("AUTHZ_DATABASE"))
}

func servicePort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return defaultServicePort
}

func startService(ctx context.Context, t *testing.T, testContainers *TestContainers) error {
	debugContainer := os.Getenv("DEBUG_CONTAINER")
	networkName := testContainers.Network.Name

	exists, err := imageExists(ctx, serviceImageName)
	if err != nil {
		return fmt.Errorf("failed to check if image exists: %w", err)
	}

	tcpServicePort, err := nat.NewPort("tcp", servicePort())
	if err != nil {
		return fmt.Errorf("failed to create service port: %w", err)
	}

	exposedPorts := []string{string(tcpServicePort)}
	if debugContainer == "true" {
		exposedPorts = append(exposedPorts, "2345/tcp")
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if debugContainer == "true" {
			hostConfig.PortBindings = nat.PortMap{
				"2345/tcp": []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: "2345"},
				},
			}
			hostConfig.CapAdd = []string{"SYS_PTRACE"}
			hostConfig.SecurityOpt = []string{"apparmor:unconfined"}
		}
	}

	var waitStrategy wait.Strategy
	waitStrategy = wait.ForHTTP("/metrics").WithPort(tcpServicePort).WithStartupTimeout(30 * time.Second)
	if debugContainer == "true" {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	env := map[string]string{
		"DB_TYPE":             os.Getenv("DB_TYPE"),
		"DB_HOST":             os.Getenv("DB_HOST"),
		"DB_PORT":             os.Getenv("DB_PORT"),
		"DB_DATABASE":         os.Getenv("DB_DATABASE"),
		"DB_USER":             os.Getenv("DB_USER"),
		"DB_PASSWORD":         os.Getenv("DB_PASSWORD"),
		"DB_CONNECTION_LIMIT": os.Getenv("DB_CONNECTION_LIMIT"),
		"AUTO_MIGRATE":        "false",
		"APP_NAME":            os.Getenv("APP_NAME"),
		"ENTITIES":            os.Getenv("ENTITIES"),
		"LOG_LEVEL":           os.Getenv("LOG_LEVEL"),
		"PORT":                servicePort(),
	}
	if testContainers.AuthorizerContainer != nil {
		env["AUTHZ_URL"] = fmt.Sprintf("http://%s:%s", authzNetworkName, os.Getenv("AUTHZ_PORT"))
		env["AUTHZ_CLIENT_ID"] = os.Getenv("AUTHZ_CLIENT_ID")
	}

	request := testcontainers.ContainerRequest{
		ExposedPorts:       exposedPorts,
		Env:                env,
		HostConfigModifier: hostConfigModifier,
		WaitingFor:         waitStrategy,
		Networks:           []string{networkName},
	}

	if debugContainer == "true" {
		request.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./entities",
		}
	}

	if !exists {
		sessionID := uuid.New().String()
		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &sessionID,
		}
		if debugContainer == "true" {
			buildArgs["DEBUG"] = &debugContainer
		}

		buildContext := os.Getenv("TESTCONTAINERS_BUILD_CONTEXT")
		if buildContext == "" {
			buildContext = "../.."
		}

		logMessage(t, "Image %s does not exist, building...", serviceImageName)
		builder, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "entities-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder"
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			return fmt.Errorf("failed to build entities-test-builder: %w", err)
		}
		testContainers.ServiceBuilderContainer = builder

		repo, tag, _ := strings.Cut(serviceImageName, ":")
		request.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       repo,
			Tag:        tag,
			KeepImage:  true,
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", serviceImageName)
		request.Image = serviceImageName
	}

	serviceContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request,
		Started:          true,
	})
	if err != nil {
		return err
	}
	testContainers.ServiceContainer = serviceContainer
	return nil
}

func getDBInitEnvMap(dbType string) map[string]string {
	switch dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": os.Getenv("DB_PASSWORD"),
			"POSTGRES_USER":     os.Getenv("DB_USER"),
			"POSTGRES_DB":       os.Getenv("DB_DATABASE"),
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
			"MYSQL_DATABASE":      os.Getenv("DB_DATABASE"),
			"MYSQL_USER":          os.Getenv("DB_USER"),
			"MYSQL_PASSWORD":      os.Getenv("DB_PASSWORD"),
		}
	}
	return nil
}

func waitForPing(db *sql.DB) error {
	var err error
	for range 30 {
		if err = db.Ping(); err == nil {
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database not ready after 30 seconds: %w", err)
}

func performMySqlDBInit(dbHost, dbPort string) error {
	rootPassword := os.Getenv("DB_ROOT_PASSWORD")
	database := os.Getenv("DB_DATABASE")

	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", rootPassword, dbHost, dbPort))
	if err != nil {
		return fmt.Errorf("failed to connect to database for setup: %w", err)
	}
	defer db.Close()

	if err := waitForPing(db); err != nil {
		return err
	}

	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")),
	}
	if authzDatabase := os.Getenv("AUTHZ_DATABASE"); authzDatabase != "" {
		statements = append(statements,
			fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", authzDatabase),
			fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.authorizer_users (id CHAR(36) NOT NULL PRIMARY KEY)", authzDatabase),
			fmt.Sprintf("GRANT ALL PRIVILEGES ON *.* TO 'root'@'%%' IDENTIFIED BY '%s' WITH GRANT OPTION", rootPassword),
		)
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, stmt)
		}
	}

	// Tables go through a connection bound to the service database
	appDB, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/%s", rootPassword, dbHost, dbPort, database))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", database, err)
	}
	defer appDB.Close()

	if err := executeSQL(appDB, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("failed to execute tables init sql: %w", err)
	}
	if err := executeSQL(appDB, os.ExpandEnv(data.InitdbMariaDBPrivileges)); err != nil {
		return fmt.Errorf("failed to execute privileges init sql: %w", err)
	}
	return nil
}

func performPostgresDBInit(dbHost, dbPort string) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"), dbPort)

	var gdb *gorm.DB
	var err error
	for range 30 {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to postgres for setup: %w", err)
	}
	db, err := gdb.DB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := waitForPing(db); err != nil {
		return err
	}
	if authzDatabase := os.Getenv("AUTHZ_DATABASE"); authzDatabase != "" {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM pg_database WHERE datname = $1", authzDatabase).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", authzDatabase)); err != nil {
				return fmt.Errorf("failed to create %s: %w", authzDatabase, err)
			}
		}
	}
	if err := executeSQL(db, data.InitdbPostgresTables); err != nil {
		return fmt.Errorf("failed to execute postgres tables init sql: %w", err)
	}
	return nil
}

// executeSQL runs each semicolon terminated statement of script after stripping -- comments
func executeSQL(db *sql.DB, script string) error {
	lines := strings.Split(script, "\n")

	ncls := make([]string, 0, len(lines))
	for _, l := range lines {
		ncls = append(ncls, excludeComment(l))
	}

	queries := strings.Split(strings.Join(ncls, " "), ";")
	for _, q := range queries[:len(queries)-1] {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%w : when executing > %s", err, q)
		}
	}
	return nil
}

// excludeComment drops a trailing -- comment that is not inside a quoted string
func excludeComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '-' && strings.HasPrefix(line[i:], "--"):
			return line[:i]
		}
	}
	return line
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
