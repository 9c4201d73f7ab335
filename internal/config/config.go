package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dugoutlabs/statlines/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	DBURL                       string
	DBDisablePreparedBinary     bool
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	EnrichWorkers               int
	HeadshotEnabled             bool
	HeadshotBaseURL             string
	HeadshotTimeout             time.Duration
	HeadshotCacheTTL            time.Duration
	HeadshotCircuitEnabled      bool
	HeadshotCircuitFailureCount int
	HeadshotCircuitOpenTimeout  time.Duration
	UptraceEnabled              bool
	UptraceDSN                  string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeUploadRate         time.Duration
	LogLevel                    logging.Level
}

// envReader reads typed environment values and keeps the first parse
// failure; Load checks err once at the end instead of after every key.
type envReader struct {
	err error
}

func (r *envReader) str(key, fallback string) string {
	if value := os.Getenv(key); strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func (r *envReader) boolean(key, fallback string) bool {
	value, err := strconv.ParseBool(r.str(key, fallback))
	if err != nil {
		r.fail(fmt.Errorf("parse %s: %w", key, err))
		return false
	}
	return value
}

func (r *envReader) positiveInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	value := fallback
	if raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			r.fail(fmt.Errorf("parse %s: %w", key, err))
			return 0
		}
		value = parsed
	}
	if value < 1 {
		r.fail(fmt.Errorf("%s must be >= 1", key))
		return 0
	}
	return value
}

func (r *envReader) duration(key, fallback string) time.Duration {
	value, err := time.ParseDuration(r.str(key, fallback))
	if err != nil {
		r.fail(fmt.Errorf("parse %s: %w", key, err))
		return 0
	}
	return value
}

func (r *envReader) positiveDuration(key, fallback string) time.Duration {
	value := r.duration(key, fallback)
	if r.err == nil && value <= 0 {
		r.fail(fmt.Errorf("%s must be > 0", key))
	}
	return value
}

func (r *envReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func Load() (Config, error) {
	var env envReader

	appEnv, err := parseAppEnv(env.str("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 env.str("APP_SERVICE_NAME", "statlines-api"),
		ServiceVersion:              env.str("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    env.str("APP_HTTP_ADDR", ":8080"),
		DBURL:                       env.str("DB_URL", ""),
		DBDisablePreparedBinary:     env.boolean("DB_DISABLE_PREPARED_BINARY_RESULT", "true"),
		CORSAllowedOrigins:          splitCSV(env.str("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                 env.duration("APP_READ_TIMEOUT", "10s"),
		WriteTimeout:                env.duration("APP_WRITE_TIMEOUT", "15s"),
		EnrichWorkers:               env.positiveInt("ENRICH_WORKERS", 8),
		HeadshotEnabled:             env.boolean("HEADSHOT_ENABLED", "true"),
		HeadshotBaseURL:             strings.TrimSpace(env.str("HEADSHOT_BASE_URL", "https://statsapi.mlb.com/api/v1")),
		HeadshotTimeout:             env.positiveDuration("HEADSHOT_TIMEOUT", "5s"),
		HeadshotCacheTTL:            env.positiveDuration("HEADSHOT_CACHE_TTL", "24h"),
		HeadshotCircuitEnabled:      env.boolean("HEADSHOT_CIRCUIT_ENABLED", "true"),
		HeadshotCircuitFailureCount: env.positiveInt("HEADSHOT_CIRCUIT_FAILURE_COUNT", 5),
		HeadshotCircuitOpenTimeout:  env.positiveDuration("HEADSHOT_CIRCUIT_OPEN_TIMEOUT", "15s"),
		UptraceEnabled:              env.boolean("UPTRACE_ENABLED", "false"),
		UptraceDSN:                  strings.TrimSpace(env.str("UPTRACE_DSN", "")),
		PyroscopeEnabled:            env.boolean("PYROSCOPE_ENABLED", "false"),
		PyroscopeServerAddress:      strings.TrimSpace(env.str("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:          strings.TrimSpace(env.str("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:         env.positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"),
		LogLevel:                    parseLogLevel(env.str("APP_LOG_LEVEL", "info")),
	}
	if env.err != nil {
		return Config{}, env.err
	}

	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(env.str("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(env.str("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// The uptrace DSN can ride along in standard OTLP headers
// ("uptrace-dsn=...") when the env is configured for a generic OTLP
// exporter.
func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), "\"'")
	}
	return ""
}
