package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrParameterNotSet = errors.New("config parameter is not set")
)

const defaultDBPort = "5432"

type Config struct {
	LogLevel    string
	RunAddress  string
	DatabaseURI string `json:"-"`
	CORSOrigins []string
}

// NewConfig loads an optional .env file, parses args and lets non-empty
// environment variables override flag values.
func NewConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return parse(args, os.Getenv)
}

func parse(args []string, getenv func(string) string) (*Config, error) {
	fset := flag.NewFlagSet("pointsapi", flag.ContinueOnError)

	logLevel := fset.String("log-level", "info", "log level (default: info)")
	runAddress := fset.String("a", ":8080", "listen address")
	databaseURI := fset.String("d", "", "database connection string")
	corsOrigins := fset.String(
		"cors-origins",
		"*",
		"comma separated list of allowed CORS origins",
	)

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	finalLogLevel := *logLevel
	if env := getenv("LOG_LEVEL"); env != "" {
		finalLogLevel = env
	}

	finalRunAddress := *runAddress
	if env := getenv("RUN_ADDRESS"); env != "" {
		finalRunAddress = env
	}

	finalDatabaseURI := *databaseURI
	if env := getenv("DATABASE_URI"); env != "" {
		finalDatabaseURI = env
	}
	if finalDatabaseURI == "" {
		finalDatabaseURI = dsnFromParts(getenv)
	}

	finalCORSOrigins := *corsOrigins
	if env := getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		finalCORSOrigins = env
	}

	if finalDatabaseURI == "" {
		return nil, fmt.Errorf("database URI error %w", ErrParameterNotSet)
	}

	return &Config{
		LogLevel:    finalLogLevel,
		RunAddress:  finalRunAddress,
		DatabaseURI: finalDatabaseURI,
		CORSOrigins: splitList(finalCORSOrigins),
	}, nil
}

// dsnFromParts builds a postgres URL from DB_* variables. It returns an
// empty string unless both host and database name are set.
func dsnFromParts(getenv func(string) string) string {
	host := getenv("DB_HOST")
	name := getenv("DB_NAME")
	if host == "" || name == "" {
		return ""
	}

	port := getenv("DB_PORT")
	if port == "" {
		port = defaultDBPort
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + name,
	}
	if user := getenv("DB_USER"); user != "" {
		if pass := getenv("DB_PASSWORD"); pass != "" {
			u.User = url.UserPassword(user, pass)
		} else {
			u.User = url.User(user)
		}
	}

	if ca := getenv("DB_SSL_CA"); ca != "" {
		q := url.Values{}
		q.Set("sslmode", "verify-full")
		q.Set("sslrootcert", ca)
		u.RawQuery = q.Encode()
	}

	return u.String()
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) String() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(b)
}
