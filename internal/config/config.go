package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Strings are used for identifiers and secrets,
// ints for durations and costs.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	DBUser      string // database username
	DBPass      string // database password (optional)
	DBHost      string // database host address
	DBPort      string // database port number
	DBName      string // database name
	JWTSecret   string // secret used to sign access tokens
	TokenTTLMin int    // access token time-to-live in minutes
	BcryptCost  int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message. The token TTL and
// bcrypt cost fall back to sane defaults when unset.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "dev"),    // environment (dev/test/prod)
		Port:        must("APP_PORT"),            // port to bind the HTTP server
		DBUser:      must("DB_USER"),             // database user
		DBPass:      os.Getenv("DB_PASS"),        // database password (empty allowed)
		DBHost:      must("DB_HOST"),             // database host
		DBPort:      must("DB_PORT"),             // database port
		DBName:      must("DB_NAME"),             // database name
		JWTSecret:   must("JWT_SECRET"),          // secret used for signing tokens
		TokenTTLMin: envInt("TOKEN_TTL_MIN", 60), // token lifetime, defaults to one hour
		BcryptCost:  envInt("BCRYPT_COST", 10),   // bcrypt cost factor
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envInt reads an integer environment variable, returning def when the
// variable is unset or not a valid integer.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
