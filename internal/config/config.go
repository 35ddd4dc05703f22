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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	YouTube          YouTube          `mapstructure:",squash"`
	Sync             Sync             `mapstructure:",squash"`
	AnalyticsSyncJob AnalyticsSyncJob `mapstructure:",squash"`
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

type YouTube struct {
	ClientSecretFile string `mapstructure:"youtube_client_secret_file"`
	TokenFile        string `mapstructure:"youtube_token_file"`
}

type Sync struct {
	CacheFile          string `mapstructure:"sync_cache_file"`
	OutputDir          string `mapstructure:"sync_output_dir"`
	PageSize           int64  `mapstructure:"sync_page_size"`
	MonthsPerSegment   int    `mapstructure:"sync_months_per_segment"`
	PageIntervalMillis int    `mapstructure:"sync_page_interval_ms"`
	MirrorEnabled      bool   `mapstructure:"sync_mirror_enabled"`
}

type AnalyticsSyncJob struct {
	CronSchedule string `mapstructure:"analytics_sync_cron"`
	Enabled      bool   `mapstructure:"analytics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ytanalytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("YOUTUBE_CLIENT_SECRET_FILE", "secrets/client_secret.json")
	viper.SetDefault("YOUTUBE_TOKEN_FILE", "secrets/youtube-token.json")

	viper.SetDefault("SYNC_CACHE_FILE", "data/daily_analytics_cache.csv")
	viper.SetDefault("SYNC_OUTPUT_DIR", "data")
	viper.SetDefault("SYNC_PAGE_SIZE", 200)           // Resultados por página na API de analytics
	viper.SetDefault("SYNC_MONTHS_PER_SEGMENT", 4)    // Meses por segmento de consulta
	viper.SetDefault("SYNC_PAGE_INTERVAL_MS", 200)    // Intervalo entre páginas para respeitar a cota por segundo
	viper.SetDefault("SYNC_MIRROR_ENABLED", false)    // Espelhar linhas no PostgreSQL

	// Defaults para o modo daemon de sincronização diária
	viper.SetDefault("ANALYTICS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ANALYTICS_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar as localizações mais comuns para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
