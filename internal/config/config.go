package config

import (
	"context"
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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	YouTube         YouTube         `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	SMTP            SMTP            `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Render          Render          `mapstructure:",squash"`
	Matching        Matching        `mapstructure:",squash"`
	AutoContactSync AutoContactSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type YouTube struct {
	APIKey       string `mapstructure:"youtube_api_key"`
	RecentVideos int64  `mapstructure:"youtube_recent_videos"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type SMTP struct {
	Host     string `mapstructure:"smtp_host"`
	Port     int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"smtp_username"`
	Password string `mapstructure:"smtp_password"`
	From     string `mapstructure:"smtp_from"`
	FromName string `mapstructure:"smtp_from_name"`
}

type Redis struct {
	URL       string        `mapstructure:"redis_url"`
	SearchTTL time.Duration `mapstructure:"redis_search_ttl"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type Matching struct {
	DefaultMaxResults  int     `mapstructure:"matching_default_max_results"`
	DefaultMinFitScore float64 `mapstructure:"matching_default_min_fit_score"`
	ConversionRate     float64 `mapstructure:"matching_conversion_rate"`
}

type AutoContactSync struct {
	CronSchedule string        `mapstructure:"auto_contact_sync_cron"`
	Timeout      time.Duration `mapstructure:"auto_contact_sync_timeout"`
	Enabled      bool          `mapstructure:"auto_contact_sync_enabled"`
}

func (s SMTP) Configured() bool {
	return s.Host != "" && s.From != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/influencer_match?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("YOUTUBE_API_KEY", "")
	viper.SetDefault("YOUTUBE_RECENT_VIDEOS", 10)

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-pro")

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("SMTP_FROM_NAME", "Influencer Match")

	viper.SetDefault("REDIS_URL", "")          // Cache de busca desligado quando vazio
	viper.SetDefault("REDIS_SEARCH_TTL", "6h") // Validade das buscas de canais em cache

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("MATCHING_DEFAULT_MAX_RESULTS", 20)
	viper.SetDefault("MATCHING_DEFAULT_MIN_FIT_SCORE", 0.5)
	viper.SetDefault("MATCHING_CONVERSION_RATE", 0.02)

	viper.SetDefault("AUTO_CONTACT_SYNC_CRON", "0 */2 * * *") // A cada duas horas
	viper.SetDefault("AUTO_CONTACT_SYNC_TIMEOUT", "30m")
	viper.SetDefault("AUTO_CONTACT_SYNC_ENABLED", false)

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

	if config.Render.ServiceID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		secretsByName, err := NewRenderClient(config).ListSecrets(ctx, config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
		applySecrets(config, secretsByName)
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

// applySecrets preenche apenas as chaves que não vieram do ambiente
func applySecrets(config *Config, secretsByName map[string]string) {
	fill := func(target *string, name string) {
		if value, ok := secretsByName[name]; ok && *target == "" {
			*target = value
		}
	}

	fill(&config.YouTube.APIKey, "youtube_api_key")
	fill(&config.Gemini.APIKey, "gemini_api_key")
	fill(&config.SMTP.Password, "smtp_password")
	fill(&config.Database.Password, "database_password")
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
