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
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Meta               Meta               `mapstructure:",squash"`
	InsightSync        InsightSync        `mapstructure:",squash"`
	SuggestionAnalysis SuggestionAnalysis `mapstructure:",squash"`
	Notifier           Notifier           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
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
	BaseURL     string `mapstructure:"meta_base_url"`
	AccessToken string `mapstructure:"meta_access_token"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`

	// Timeout das chamadas HTTP individuais (criação de relatório, consulta
	// de status e download do resultado usam o mesmo cliente)
	HTTPTimeoutSeconds int `mapstructure:"meta_http_timeout_seconds"`

	// Orçamento do loop de polling de relatórios assíncronos
	ReportPollIntervalSeconds int `mapstructure:"meta_report_poll_interval_seconds"`
	ReportPollMaxAttempts     int `mapstructure:"meta_report_poll_max_attempts"`
}

type InsightSync struct {
	CronSchedule      string `mapstructure:"insight_sync_cron"`
	LookbackDays      int    `mapstructure:"insight_sync_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"insight_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"insight_sync_enabled"`
}

type SuggestionAnalysis struct {
	CronSchedule string `mapstructure:"suggestion_analysis_cron"`
	Enabled      bool   `mapstructure:"suggestion_analysis_enabled"`
}

type Notifier struct {
	WebhookURL     string `mapstructure:"notifier_webhook_url"`
	TimeoutSeconds int    `mapstructure:"notifier_timeout_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adscaler")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_REPORT_POLL_INTERVAL_SECONDS", 10) // 10 segundos entre consultas de status
	viper.SetDefault("META_REPORT_POLL_MAX_ATTEMPTS", 30)     // ~5 minutos de orçamento total

	viper.SetDefault("INSIGHT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("INSIGHT_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("SUGGESTION_ANALYSIS_CRON", "0 6 * * *") // Depois da sincronização
	viper.SetDefault("SUGGESTION_ANALYSIS_ENABLED", false)

	viper.SetDefault("NOTIFIER_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFIER_TIMEOUT_SECONDS", 5)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

// HTTPTimeout retorna o timeout configurado para o cliente HTTP da Meta.
func (m Meta) HTTPTimeout() time.Duration {
	return time.Duration(m.HTTPTimeoutSeconds) * time.Second
}

// ReportPollInterval retorna o intervalo entre tentativas do polling.
func (m Meta) ReportPollInterval() time.Duration {
	return time.Duration(m.ReportPollIntervalSeconds) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
