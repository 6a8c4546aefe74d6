package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/mstanic/runboard/internal"
	"github.com/mstanic/runboard/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	adminUsername = "testuser"
	// bcrypt hash of "testpass"
	adminPasswordHash = "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	stravaStub *httptest.Server
	teardown   []func()
}

func newSuite(ctx context.Context) *Suite {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	suite.stravaStubSetup()

	cfg := getTestConfig(redisPort, pgPort, suite.stravaStub.URL)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			StravaClientID:          "test-client-id",
			StravaClientSecret:      "test-client-secret",
			StravaRefreshToken:      "test-refresh-token",
			VersionInfo:             "test-version-info",
			AdminUsername:           adminUsername,
			AdminPasswordHash:       adminPasswordHash,
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	if s.stravaStub != nil {
		s.stravaStub.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort, stravaApiURL string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		QuotesCsvPath:               "../assets/quotes.csv",
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "9001",
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresPort:                postgresPort,
		PostgresHost:                "localhost",
		PostgresDBName:              "runboard",
		StravaApiURL:                stravaApiURL,
		StravaActivitiesPerPage:     100,
		ActivitiesCacheTTLSeconds:   3600,
		LoginRateLimitAllowedPerMin: 15,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=runboard",
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/runboard?sslmode=disable", pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	if _, err := db.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	if err := db.Ping(); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

// stravaStubSetup fakes the Strava API: the token endpoint and a fixed
// set of activities, two runs and one ride
func (s *Suite) stravaStubSetup() {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"token_type": "Bearer",
			"access_token": "test-access-token",
			"refresh_token": "test-refresh-token",
			"expires_in": 21600
		}`))
	})
	mux.HandleFunc("/api/v3/athlete/activities", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": 1001,
				"name": "Morning Run",
				"type": "Run",
				"sport_type": "Run",
				"distance": 10000,
				"moving_time": 3000,
				"elapsed_time": 3100,
				"total_elevation_gain": 80,
				"start_date_local": "2026-08-20T07:31:12Z"
			},
			{
				"id": 1002,
				"name": "Evening Ride",
				"type": "Ride",
				"sport_type": "Ride",
				"distance": 25000,
				"moving_time": 4000,
				"elapsed_time": 4200,
				"total_elevation_gain": 240,
				"start_date_local": "2026-08-19T18:02:45Z"
			},
			{
				"id": 1003,
				"name": "Easy Run",
				"type": "Run",
				"sport_type": "Run",
				"distance": 5000,
				"moving_time": 1800,
				"elapsed_time": 1850,
				"total_elevation_gain": 20,
				"start_date_local": "2026-08-18T07:02:45Z"
			}
		]`))
	})
	mux.HandleFunc("/api/v3/athlete", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 12345678,
			"username": "test_runner",
			"firstname": "Test",
			"lastname": "Runner",
			"city": "Berlin",
			"country": "Germany"
		}`))
	})

	s.stravaStub = httptest.NewServer(mux)
}

const initSQL = `
CREATE TABLE public.run
(
    id                  BIGINT PRIMARY KEY,
    name                VARCHAR          NOT NULL,
    distance_km         DOUBLE PRECISION NOT NULL,
    moving_time_seconds DOUBLE PRECISION NOT NULL,
    elevation_gain      DOUBLE PRECISION NOT NULL,
    pace_sec_per_km     DOUBLE PRECISION NOT NULL,
    started_at          TIMESTAMPTZ      NOT NULL,
    created_at          TIMESTAMPTZ      NOT NULL DEFAULT now()
);

ALTER TABLE public.run OWNER TO postgres;
CREATE INDEX ix_run_started_at ON public.run USING btree (started_at);
`
