package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de persistencia soportados (STORAGE_DRIVER).
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
	DriverS3       = "s3"
)

const DefaultStorageTimeout = 10 * time.Second

type Config struct {
	AppName   string
	Port      string
	LogLevel  string
	LogFormat string

	StorageDriver  string
	StoragePath    string // archivo (sqlite) o directorio (file, badger)
	StorageTimeout time.Duration
	DBDSN          string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool
	S3Prefix    string

	RedisAddr    string
	RedisChannel string
	WebhookURL   string
	WebhookToken string

	PetsFile string
	TimeZone string
	APIToken string
}

// FromEnv lee la configuración de variables de entorno con valores por defecto.
// Sin STORAGE_DRIVER: postgres si hay DB_DSN, memoria si no.
func FromEnv() (Config, error) {
	c := Config{
		AppName:        env("APP_NAME", "pet-health"),
		Port:           env("PORT", "8080"),
		LogLevel:       env("LOG_LEVEL", "info"),
		LogFormat:      env("LOG_FORMAT", "text"),
		StorageDriver:  strings.ToLower(env("STORAGE_DRIVER", "")),
		StoragePath:    env("STORAGE_PATH", ""),
		StorageTimeout: DefaultStorageTimeout,
		DBDSN:          env("DB_DSN", ""),
		S3Bucket:       env("S3_BUCKET", ""),
		S3Region:       env("S3_REGION", ""),
		S3Endpoint:     env("S3_ENDPOINT", ""),
		S3Prefix:       env("S3_PREFIX", "pet-health/"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisChannel:   env("REDIS_CHANNEL", "pet_health.changes"),
		WebhookURL:     env("WEBHOOK_URL", ""),
		WebhookToken:   env("WEBHOOK_TOKEN", ""),
		PetsFile:       env("PETS_FILE", ""),
		TimeZone:       env("TIME_ZONE", ""),
		APIToken:       env("API_TOKEN", ""),
	}

	if v := env("STORAGE_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("STORAGE_TIMEOUT: %w", err)
		}
		c.StorageTimeout = d
	}
	if v := env("S3_PATH_STYLE", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("S3_PATH_STYLE: %w", err)
		}
		c.S3PathStyle = b
	}

	if c.StorageDriver == "" {
		c.StorageDriver = DriverMemory
		if c.DBDSN != "" {
			c.StorageDriver = DriverPostgres
		}
	}
	return c, nil
}

// Validate revisa que el driver elegido tenga lo que necesita.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverMemory:
	case DriverFile, DriverBadger, DriverSQLite:
		if strings.TrimSpace(c.StoragePath) == "" {
			return fmt.Errorf("STORAGE_PATH required for %s storage", c.StorageDriver)
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return errors.New("DB_DSN required for postgres storage")
		}
	case DriverS3:
		if strings.TrimSpace(c.S3Bucket) == "" {
			return errors.New("S3_BUCKET required for s3 storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.StorageTimeout < 0 {
		return errors.New("STORAGE_TIMEOUT must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location es la zona usada para "hoy" en los sensores (TIME_ZONE, por defecto la local).
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.TimeZone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("TIME_ZONE: %w", err)
	}
	return loc, nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}
