package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey = "API_PORT"
	dbConnEnvKey  = "DB_CONNECTION_URL"
)

type App struct {
	Port            string
	DBConnectionURL string
}

func NewApp() (App, error) {
	// a local .env file is optional, env vars win either way
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
	}, nil
}
