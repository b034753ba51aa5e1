package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Brink        Brink        `mapstructure:",squash"`
	TimeService  TimeService  `mapstructure:",squash"`
	TenantAuth   TenantAuth   `mapstructure:",squash"`
	Reporting    Reporting    `mapstructure:",squash"`
	LocationSync LocationSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Brink holds the endpoints of the three PAR Brink SOAP services.
type Brink struct {
	SalesURL       string `mapstructure:"brink_sales_url"`
	LaborURL       string `mapstructure:"brink_labor_url"`
	SettingsURL    string `mapstructure:"brink_settings_url"`
	TimeoutSeconds int    `mapstructure:"brink_timeout_seconds"`
}

// TimeService holds the external timezone service endpoint used by the
// business-date resolver's primary path.
type TimeService struct {
	URL            string `mapstructure:"time_service_url"`
	TimeoutSeconds int    `mapstructure:"time_service_timeout_seconds"`
}

type TenantAuth struct {
	TimeoutSeconds int `mapstructure:"tenant_auth_timeout_seconds"`
}

type Reporting struct {
	// MaxConcurrentFetches bounds the POS fan-out per report request.
	MaxConcurrentFetches int `mapstructure:"reporting_max_concurrent_fetches"`
}

type LocationSync struct {
	CronSchedule string `mapstructure:"location_sync_cron"`
	Enabled      bool   `mapstructure:"location_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/brink_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BRINK_SALES_URL", "https://api.brinkpos.net/Sales2.svc")
	viper.SetDefault("BRINK_LABOR_URL", "https://api.brinkpos.net/Labor2.svc")
	viper.SetDefault("BRINK_SETTINGS_URL", "https://api.brinkpos.net/Settings2.svc")
	viper.SetDefault("BRINK_TIMEOUT_SECONDS", 15)

	viper.SetDefault("TIME_SERVICE_URL", "https://worldtimeapi.org/api")
	viper.SetDefault("TIME_SERVICE_TIMEOUT_SECONDS", 5)

	viper.SetDefault("TENANT_AUTH_TIMEOUT_SECONDS", 10)

	viper.SetDefault("REPORTING_MAX_CONCURRENT_FETCHES", 3)

	viper.SetDefault("LOCATION_SYNC_CRON", "*/15 * * * *") // every 15 minutes
	viper.SetDefault("LOCATION_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from:", location)
			return
		}
	}

	logrus.Debug("no .env file found, relying on process environment")
}
