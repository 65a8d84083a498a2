package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Telegram   Telegram   `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	Retention  Retention  `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
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

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"-"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	RequestTimeout int       `mapstructure:"meta_request_timeout_seconds"`
	RequestsPerSec float64   `mapstructure:"meta_requests_per_second"`
}

type Telegram struct {
	APIURL      string `mapstructure:"telegram_api_url"`
	BotToken    string `mapstructure:"telegram_bot_token"`
	AdminChatID int64  `mapstructure:"telegram_admin_chat_id"`
}

type ReportSync struct {
	CronSchedule     string `mapstructure:"report_sync_cron"`
	ToleranceMinutes int    `mapstructure:"report_sync_tolerance_minutes"`
	MaxConcurrent    int    `mapstructure:"report_sync_max_concurrent"`
	Enabled          bool   `mapstructure:"report_sync_enabled"`
}

type Retention struct {
	CronSchedule  string `mapstructure:"retention_cron"`
	LeadDays      int    `mapstructure:"retention_lead_days"`
	CacheDays     int    `mapstructure:"retention_cache_days"`
	Enabled       bool   `mapstructure:"retention_enabled"`
	MaxConcurrent int    `mapstructure:"retention_max_concurrent"`
}

type Cache struct {
	SummaryTTLSeconds   int `mapstructure:"cache_summary_ttl_seconds"`
	CampaignsTTLSeconds int `mapstructure:"cache_campaigns_ttl_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/targetbot")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_LONG_LIVED_TOKEN", "")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_REQUESTS_PER_SECOND", 5.0)

	viper.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "your_bot_token")
	viper.SetDefault("TELEGRAM_ADMIN_CHAT_ID", 0)

	// Defaults do agendador de relatórios
	viper.SetDefault("REPORT_SYNC_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("REPORT_SYNC_TOLERANCE_MINUTES", 5)
	viper.SetDefault("REPORT_SYNC_MAX_CONCURRENT", 3)
	viper.SetDefault("REPORT_SYNC_ENABLED", true)

	// Defaults da varredura de retenção
	viper.SetDefault("RETENTION_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("RETENTION_LEAD_DAYS", 90)
	viper.SetDefault("RETENTION_CACHE_DAYS", 14)
	viper.SetDefault("RETENTION_ENABLED", true)
	viper.SetDefault("RETENTION_MAX_CONCURRENT", 3)

	// TTLs do cache de métricas (staleness é verificada na leitura)
	viper.SetDefault("CACHE_SUMMARY_TTL_SECONDS", 600)
	viper.SetDefault("CACHE_CAMPAIGNS_TTL_SECONDS", 1800)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
