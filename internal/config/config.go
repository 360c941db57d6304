package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	dbDriverEnvKey  = "DB_DRIVER"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
	tokenTTLEnvKey  = "TOKEN_TTL_HOURS"
)

const (
	defaultPort     = "8080"
	defaultDriver   = "postgres"
	defaultTokenTTL = 24 * time.Hour
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	JWTSecret       string
	TokenTTL        time.Duration
}

func NewApp() (App, error) {
	// a missing .env file is fine, vars may come from the environment
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		port = defaultPort
	}

	driver, ok := os.LookupEnv(dbDriverEnvKey)
	if !ok {
		driver = defaultDriver
	}
	if driver != "postgres" && driver != "sqlite" {
		return App{}, fmt.Errorf("unsupported database driver %q", driver)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		if driver == "postgres" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
		}
		dbConn = "taskboard.db"
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	tokenTTL := defaultTokenTTL
	if ttlStr, ok := os.LookupEnv(tokenTTLEnvKey); ok {
		hours, err := strconv.Atoi(ttlStr)
		if err != nil || hours <= 0 {
			return App{}, fmt.Errorf("invalid %s value %q", tokenTTLEnvKey, ttlStr)
		}
		tokenTTL = time.Duration(hours) * time.Hour
	}

	return App{
		Port:            port,
		DBDriver:        driver,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		TokenTTL:        tokenTTL,
	}, nil
}
