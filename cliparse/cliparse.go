package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultPIN is the out-of-the-box access PIN. It is deliberately weak
// and must be overridden for any real deployment.
const DefaultPIN = "123456"

// InsecureSessionSecret is the fallback used when SESSION_SECRET is not
// set. Callers must treat its use as a local/dev-only condition.
const InsecureSessionSecret = "temp-insecure-dev-secret-only-for-direct-run"

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionSecret string
	AccessPIN     string
	UploadDir     string
	InitialRoster string

	// InsecureSecret is true when SessionSecret fell back to the
	// built-in dev value. main logs a warning when set.
	InsecureSecret bool
}

// ParseFlags validates flags, falling back to environment variables.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	// .env is optional; real deployments provide the environment directly.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("prizedraw", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.UploadDir, "uploads", "", "Directory for uploaded roster files")
	fs.StringVar(&cfg.InitialRoster, "roster", "", "Initial roster CSV for first-run import")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session secret (prefer env)")
	fs.StringVar(&cfg.AccessPIN, "pin", "", "Operator access PIN (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "drawing.db"
	}

	// Secrets: a missing session secret falls back to an insecure dev
	// value rather than failing, so the app stays runnable locally.
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = InsecureSessionSecret
		cfg.InsecureSecret = true
	}

	if cfg.AccessPIN == "" {
		cfg.AccessPIN = os.Getenv("DRAWING_PIN")
	}
	if cfg.AccessPIN == "" {
		cfg.AccessPIN = DefaultPIN
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.Getenv("UPLOAD_DIR")
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	if cfg.InitialRoster == "" {
		cfg.InitialRoster = os.Getenv("INITIAL_ROSTER")
	}
	if cfg.InitialRoster == "" {
		cfg.InitialRoster = "initial_registrants.csv"
	}

	return cfg, nil
}
