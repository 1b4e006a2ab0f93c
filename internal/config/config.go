package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"claims-backoffice/internal/domain/claim"
)

type Config struct {
	AppPort string

	DBDriver      string
	MySQLHost     string
	MySQLPort     string
	MySQLDB       string
	MySQLUser     string
	MySQLPass     string
	PostgresDSN   string
	DBAutoMigrate bool

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	MaxUploadBytes    int64

	JWTSecret         string
	SessionTTLSecs    int
	SessionCookieName string
	CookieSecure      bool

	ClaimTransitions string
	StatsRefreshCron string

	LogLevel  string
	LogFormat string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getbool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		DBDriver:  strings.ToLower(getenv("DB_DRIVER", "mysql")),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "claims"),
		MySQLUser: getenv("MYSQL_USER", "claims"),
		MySQLPass: getenv("MYSQL_PASS", "claims"),

		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		DBAutoMigrate: getbool("DB_AUTO_MIGRATE", true),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getint("REDIS_DB", 0),
		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          getenv("S3_REGION", "us-east-1"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"), // e.g. http://minio:9000
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		MaxUploadBytes:    int64(getint("MAX_UPLOAD_BYTES", 25<<20)),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		SessionTTLSecs:    getint("SESSION_TTL_SECONDS", 12*60*60),
		SessionCookieName: getenv("SESSION_COOKIE_NAME", "session"),
		CookieSecure:      getbool("COOKIE_SECURE", false),

		ClaimTransitions: strings.ToLower(getenv("CLAIM_TRANSITIONS", "permissive")),
		StatsRefreshCron: getenv("STATS_REFRESH_CRON", "@every 1m"),

		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenv("LOG_FORMAT", "json")),
	}
	return c
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("missing POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.S3Bucket == "" {
		return errors.New("missing S3_BUCKET")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	if c.SessionTTLSecs <= 0 {
		return errors.New("SESSION_TTL_SECONDS must be positive")
	}
	if _, err := claim.ParsePolicy(c.ClaimTransitions); err != nil {
		return fmt.Errorf("CLAIM_TRANSITIONS: %w", err)
	}
	return nil
}

func (c *Config) SessionTTL() time.Duration { return time.Duration(c.SessionTTLSecs) * time.Second }

// multipartOverhead covers form fields and part headers around an upload.
const multipartOverhead = 1 << 20

// MaxRequestBytes bounds any /api request body: one upload plus its
// multipart framing.
func (c *Config) MaxRequestBytes() int64 { return c.MaxUploadBytes + multipartOverhead }

// BodyLimit renders MaxRequestBytes in the form echo's BodyLimit parses.
func (c *Config) BodyLimit() string { return strconv.FormatInt(c.MaxRequestBytes(), 10) + "B" }

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

// TransitionPolicy assumes Validate has passed; anything else reads as permissive.
func (c *Config) TransitionPolicy() claim.Policy {
	if p, err := claim.ParsePolicy(c.ClaimTransitions); err == nil {
		return p
	}
	return claim.PolicyPermissive
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
