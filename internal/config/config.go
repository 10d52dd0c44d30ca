package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres  = "postgres"
	StoreDriverPostgREST = "postgrest"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Store        Store        `mapstructure:",squash"`
	PostgREST    PostgREST    `mapstructure:",squash"`
	Money        Money        `mapstructure:",squash"`
	Snapshot     Snapshot     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	DailySummary DailySummary `mapstructure:",squash"`
	Goals        Goals        `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Store escolhe a implementação de RecordStore usada pela aplicação
type Store struct {
	Driver string `mapstructure:"store_driver"`
}

// PostgREST configura o acesso ao banco gerenciado via REST (compatível com Supabase)
type PostgREST struct {
	URL      string        `mapstructure:"postgrest_url"`
	APIKey   string        `mapstructure:"postgrest_api_key"`
	Timeout  time.Duration `mapstructure:"postgrest_timeout"`
	PageSize int           `mapstructure:"postgrest_page_size"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

// Money define a convenção de moeda usada na formatação dos valores
type Money struct {
	Symbol   string `mapstructure:"money_symbol"`
	Language string `mapstructure:"money_language"`
	Mask     string `mapstructure:"money_mask"`
}

type Snapshot struct {
	TTL time.Duration `mapstructure:"snapshot_ttl"`
}

type Auth struct {
	Enabled              bool          `mapstructure:"auth_enabled"`
	Secret               string        `mapstructure:"auth_secret"`
	OperatorName         string        `mapstructure:"auth_operator_name"`
	OperatorPasswordHash string        `mapstructure:"auth_operator_password_hash"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
}

type DailySummary struct {
	CronSchedule string `mapstructure:"daily_summary_cron"`
	LookbackDays int    `mapstructure:"daily_summary_lookback_days"`
	Enabled      bool   `mapstructure:"daily_summary_enabled"`
}

// Goals são as metas de faturamento do painel. Vazio ou zero desliga a meta.
type Goals struct {
	Daily         string          `mapstructure:"goal_daily"`
	Monthly       string          `mapstructure:"goal_monthly"`
	DailyAmount   decimal.Decimal `mapstructure:"-"`
	MonthlyAmount decimal.Decimal `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dropos?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)

	viper.SetDefault("POSTGREST_URL", "http://localhost:3000")
	viper.SetDefault("POSTGREST_API_KEY", "")
	viper.SetDefault("POSTGREST_TIMEOUT", "15s")
	viper.SetDefault("POSTGREST_PAGE_SIZE", 1000) // não pode exceder o max-rows do servidor

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("MONEY_SYMBOL", "R$")
	viper.SetDefault("MONEY_LANGUAGE", "en-US")
	viper.SetDefault("MONEY_MASK", "R$ ****")

	viper.SetDefault("SNAPSHOT_TTL", "1m") // 0 desliga o cache

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_OPERATOR_NAME", "Operador Alfa")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("DAILY_SUMMARY_CRON", "0 1 * * *") // Todos os dias à 1h da manhã
	viper.SetDefault("DAILY_SUMMARY_LOOKBACK_DAYS", 1)
	viper.SetDefault("DAILY_SUMMARY_ENABLED", false)

	viper.SetDefault("GOAL_DAILY", "")
	viper.SetDefault("GOAL_MONTHLY", "")

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

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize preenche os campos derivados e valida combinações inválidas
func (c *Config) finalize() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("config: timezone inválida %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverPostgREST:
	default:
		return fmt.Errorf("config: store_driver desconhecido %q", c.Store.Driver)
	}

	if c.Auth.Enabled && c.Auth.OperatorPasswordHash == "" {
		return fmt.Errorf("config: auth_operator_password_hash é obrigatório quando auth_enabled=true")
	}

	if c.Goals.DailyAmount, err = parseGoal("goal_daily", c.Goals.Daily); err != nil {
		return err
	}
	if c.Goals.MonthlyAmount, err = parseGoal("goal_monthly", c.Goals.Monthly); err != nil {
		return err
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

func parseGoal(name, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("config: %s inválida %q", name, raw)
	}
	return amount, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
