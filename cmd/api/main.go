package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pet-health/internal/platform/config"
)

// @title Pet Health API
// @version 1.0
// @description Registro de salud de mascotas y sensores derivados.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, envErr := config.FromEnv()

	root := &cobra.Command{
		Use:           "pet-health",
		Short:         "Registro de salud de mascotas con sensores derivados",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return cfg.Validate()
		},
	}

	// Los flags pisan las variables de entorno.
	f := root.PersistentFlags()
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text|json")
	f.StringVar(&cfg.StorageDriver, "storage-driver", cfg.StorageDriver,
		fmt.Sprintf("%s|%s|%s|%s|%s|%s", config.DriverMemory, config.DriverFile, config.DriverSQLite,
			config.DriverPostgres, config.DriverBadger, config.DriverS3))
	f.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "archivo o directorio para file/sqlite/badger")
	f.DurationVar(&cfg.StorageTimeout, "storage-timeout", cfg.StorageTimeout, "timeout por operación de persistencia")
	f.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "DSN de Postgres")
	f.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "bucket para el driver s3")
	f.StringVar(&cfg.PetsFile, "pets-file", cfg.PetsFile, "YAML con las mascotas y sus medicamentos")
	f.StringVar(&cfg.TimeZone, "time-zone", cfg.TimeZone, "zona IANA para los conteos diarios")

	root.AddCommand(newServeCmd(&cfg), newDumpCmd(&cfg))
	return root
}
