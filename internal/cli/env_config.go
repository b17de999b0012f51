package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-certgen/internal/config"
)

const envPrefix = "CERTGEN_"

// Environment variable names.
const (
	EnvConfig       = "CERTGEN_CONFIG"
	EnvParticipants = "CERTGEN_PARTICIPANTS"
	EnvTemplate     = "CERTGEN_TEMPLATE"
	EnvOutputDir    = "CERTGEN_OUTPUT_DIR"
	EnvLogLevel     = "CERTGEN_LOG_LEVEL"
	EnvLogFile      = "CERTGEN_LOG_FILE"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath   string
	Participants string
	Template     string
	OutputDir    string
	LogLevel     string
	LogFile      string
}

// knownEnvVars lists valid CERTGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	EnvConfig:       true,
	EnvParticipants: true,
	EnvTemplate:     true,
	EnvOutputDir:    true,
	EnvLogLevel:     true,
	EnvLogFile:      true,
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string, w io.Writer) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "warning: ignoring %s: %v\n", path, err)
	}
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:   os.Getenv(EnvConfig),
		Participants: os.Getenv(EnvParticipants),
		Template:     os.Getenv(EnvTemplate),
		OutputDir:    os.Getenv(EnvOutputDir),
		LogLevel:     os.Getenv(EnvLogLevel),
		LogFile:      os.Getenv(EnvLogFile),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized CERTGEN_* variables.
// Helps catch typos like CERTGEN_TEMPLTE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with the variables that are set.
// Flags are applied afterwards: flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Participants != "" {
		cfg.Files.Participants = env.Participants
	}
	if env.Template != "" {
		cfg.Files.Template = env.Template
	}
	if env.OutputDir != "" {
		cfg.Files.OutputDir = env.OutputDir
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.Files.LogFile = env.LogFile
		cfg.Log.File = true
	}
}
