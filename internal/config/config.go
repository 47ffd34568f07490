// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are the dotenv files main loads, highest precedence first.
var DefaultEnvFiles = []string{".env.local", ".env"}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr  string
	DBPath      string
	JWTSecret   string
	InviteCode  string
	CORSOrigins []string
	BcryptCost  int
	LogLevel    slog.Level
}

// Load reads configuration from environment variables and returns a validated Config.
// Each of envFiles that exists is loaded first; values already present in the
// process environment are never overridden, and earlier files win over later ones.
//
// Required: INVITEGATE_JWT_SECRET, INVITEGATE_INVITE_CODE.
// Optional variables with defaults: INVITEGATE_LISTEN_ADDR (127.0.0.1:8080),
// INVITEGATE_DB_PATH (invitegate.db), INVITEGATE_CORS_ORIGINS
// (http://localhost:5173), INVITEGATE_BCRYPT_COST (12), INVITEGATE_LOG_LEVEL (info).
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	secret := os.Getenv("INVITEGATE_JWT_SECRET")
	if secret == "" {
		return nil, errors.New("INVITEGATE_JWT_SECRET is required")
	}

	invite := os.Getenv("INVITEGATE_INVITE_CODE")
	if invite == "" {
		return nil, errors.New("INVITEGATE_INVITE_CODE is required")
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("INVITEGATE_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "invitegate.db"
	if v, ok := os.LookupEnv("INVITEGATE_DB_PATH"); ok {
		dbPath = v
	}

	origins := []string{"http://localhost:5173"}
	if v, ok := os.LookupEnv("INVITEGATE_CORS_ORIGINS"); ok {
		origins = []string{}
		for _, origin := range strings.Split(v, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	bcryptCost := 12
	if v, ok := os.LookupEnv("INVITEGATE_BCRYPT_COST"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("INVITEGATE_BCRYPT_COST has invalid integer %q: %w", v, err)
		}
		bcryptCost = parsed
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("INVITEGATE_LOG_LEVEL"); ok {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("INVITEGATE_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	return &Config{
		ListenAddr:  listenAddr,
		DBPath:      dbPath,
		JWTSecret:   secret,
		InviteCode:  invite,
		CORSOrigins: origins,
		BcryptCost:  bcryptCost,
		LogLevel:    logLevel,
	}, nil
}

// loadEnvFiles applies each existing dotenv file. Missing files are skipped.
func loadEnvFiles(files []string) error {
	for _, name := range files {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("load env file %s: %w", name, err)
		}
	}
	return nil
}
