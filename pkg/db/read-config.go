package db

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// DBConfigFromYamlObj builds the connection config from a yaml config
// object, for services that carry their DB settings in the config file
// instead of the environment.
func DBConfigFromYamlObj(y DBConfigYaml, instanceIDs []string) DBConfig {
	URI := fmt.Sprintf(`mongodb%s://%s:%s@%s`, y.ConnectionPrefix, y.Username, y.Password, y.ConnectionStr)

	return DBConfig{
		URI:              URI,
		Timeout:          y.Timeout,
		IdleConnTimeout:  y.IdleConnTimeout,
		MaxPoolSize:      uint64(y.MaxPoolSize),
		DBNamePrefix:     y.DBNamePrefix,
		RunIndexCreation: y.RunIndexCreation,
		InstanceIDs:      instanceIDs,
	}
}

func ReadDBConfigFromEnv(
	dbLabel string,
	connectionStrEnv string,
	usernameEnv string,
	passwordEnv string,
	connectionPrefixEnv string,
	timeoutEnv string,
	idleConnTimeoutEnv string,
	maxPoolSizeEnv string,
	dbNamePrefixEnv string,
	runIndexCreationEnv string,
	instanceIDs []string,
) DBConfig {
	connStr := os.Getenv(connectionStrEnv)
	username := os.Getenv(usernameEnv)
	password := os.Getenv(passwordEnv)
	prefix := os.Getenv(connectionPrefixEnv) // e.g. "+srv" for hosted clusters
	if connStr == "" || username == "" || password == "" {
		slog.Error("couldn't read DB credentials", slog.String("db", dbLabel))
		panic("couldn't read DB credentials")
	}
	URI := fmt.Sprintf(`mongodb%s://%s:%s@%s`, prefix, username, password, connStr)

	Timeout, err := strconv.Atoi(os.Getenv(timeoutEnv))
	if err != nil {
		slog.Error("DB config could not parse timeout", slog.String("error", err.Error()), slog.String(timeoutEnv, os.Getenv(timeoutEnv)), slog.String("db", dbLabel))
		panic(err)
	}

	IdleConnTimeout, err := strconv.Atoi(os.Getenv(idleConnTimeoutEnv))
	if err != nil {
		slog.Error("DB config could not parse idle connection timeout", slog.String("error", err.Error()), slog.String(idleConnTimeoutEnv, os.Getenv(idleConnTimeoutEnv)), slog.String("db", dbLabel))
		panic(err)
	}

	mps, err := strconv.Atoi(os.Getenv(maxPoolSizeEnv))
	if err != nil {
		slog.Error("DB config could not parse max pool size", slog.String("error", err.Error()), slog.String(maxPoolSizeEnv, os.Getenv(maxPoolSizeEnv)), slog.String("db", dbLabel))
		panic(err)
	}

	return DBConfig{
		URI:              URI,
		Timeout:          Timeout,
		IdleConnTimeout:  IdleConnTimeout,
		MaxPoolSize:      uint64(mps),
		DBNamePrefix:     os.Getenv(dbNamePrefixEnv),
		RunIndexCreation: os.Getenv(runIndexCreationEnv) == "true",
		InstanceIDs:      instanceIDs,
	}
}
