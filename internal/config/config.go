package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Shopify     Shopify     `mapstructure:",squash"`
	FlourCloud  FlourCloud  `mapstructure:",squash"`
	Telegram    Telegram    `mapstructure:",squash"`
	Anthropic   Anthropic   `mapstructure:",squash"`
	Google      Google      `mapstructure:",squash"`
	DailyReport DailyReport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host  string `mapstructure:"host"`
	Port  string `mapstructure:"port"`
	Token string `mapstructure:"ops_api_token"`
}

type Shopify struct {
	Store       string `mapstructure:"shopify_store"`
	AccessToken string `mapstructure:"shopify_access_token"`
	APIVersion  string `mapstructure:"shopify_api_version"`
	BaseURL     string `mapstructure:"-"`
}

type FlourCloud struct {
	URL         string `mapstructure:"flour_cloud_url"`
	AccessToken string `mapstructure:"flour_cloud_token"`
	PageSize    int    `mapstructure:"flour_cloud_page_size"`
}

type Telegram struct {
	BotToken          string  `mapstructure:"telegram_bot_token"`
	AllowedUserIDsRaw string  `mapstructure:"allowed_user_ids"`
	DailyReportChatID int64   `mapstructure:"daily_report_chat_id"`
	AllowedUserIDs    []int64 `mapstructure:"-"`
}

type Anthropic struct {
	APIKey  string `mapstructure:"anthropic_api_key"`
	BaseURL string `mapstructure:"anthropic_base_url"`
	Model   string `mapstructure:"anthropic_model"`
}

type Google struct {
	ServiceAccountFile string   `mapstructure:"google_service_account_file"`
	ServiceAccountJSON string   `mapstructure:"google_service_account_json"`
	RestaurantSheetID  string   `mapstructure:"restaurant_sheet_id"`
	SupplierSheetID    string   `mapstructure:"supplier_sheet_id"`
	GmailInboxesRaw    string   `mapstructure:"gmail_inboxes"`
	GmailInboxes       []string `mapstructure:"-"`
}

type DailyReport struct {
	Time           string `mapstructure:"daily_report_time"`
	RetryAttempts  int    `mapstructure:"daily_report_retry_attempts"`
	BackoffSeconds int    `mapstructure:"daily_report_backoff_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("OPS_API_TOKEN", "")

	viper.SetDefault("LOG_LEVEL", "info")
	// O POS e o relatório diário operam em datas civis de Berlim
	viper.SetDefault("APP_TIMEZONE", "Europe/Berlin")

	viper.SetDefault("SHOPIFY_STORE", "")
	viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "")
	viper.SetDefault("SHOPIFY_API_VERSION", "2024-10")

	viper.SetDefault("FLOUR_CLOUD_URL", "https://flour.host/v3")
	viper.SetDefault("FLOUR_CLOUD_TOKEN", "")
	viper.SetDefault("FLOUR_CLOUD_PAGE_SIZE", 1000)

	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("ALLOWED_USER_IDS", "")     // vazio libera todos os usuários
	viper.SetDefault("DAILY_REPORT_CHAT_ID", 0) // zero desabilita o relatório diário

	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001")

	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "service_account.json")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	viper.SetDefault("RESTAURANT_SHEET_ID", "")
	viper.SetDefault("SUPPLIER_SHEET_ID", "")
	viper.SetDefault("GMAIL_INBOXES", "")

	viper.SetDefault("DAILY_REPORT_TIME", "04:00")        // horário local de Berlim
	viper.SetDefault("DAILY_REPORT_RETRY_ATTEMPTS", 3)    // tentativas por fonte
	viper.SetDefault("DAILY_REPORT_BACKOFF_SECONDS", 300) // 5 minutos entre tentativas
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

	config.Shopify.BaseURL = fmt.Sprintf(
		"https://%s/admin/api/%s",
		config.Shopify.Store,
		config.Shopify.APIVersion,
	)

	config.Telegram.AllowedUserIDs, err = parseUserIDs(config.Telegram.AllowedUserIDsRaw)
	if err != nil {
		return nil, err
	}

	config.Google.GmailInboxes = splitList(config.Google.GmailInboxesRaw)

	return config, nil
}

// parseUserIDs interpreta a lista de IDs autorizados separados por vírgula
func parseUserIDs(raw string) ([]int64, error) {
	ids := make([]int64, 0)
	for _, part := range splitList(raw) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("id de usuário inválido em ALLOWED_USER_IDS: %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func splitList(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
