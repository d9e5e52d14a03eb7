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

	"github.com/adpilot/adpilot-api/internal/domain"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	OpenAI       OpenAI       `mapstructure:",squash"`
	Stripe       Stripe       `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	Credits      Credits      `mapstructure:",squash"`
	CacheCleanup CacheCleanup `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
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

type OpenAI struct {
	BaseURL        string        `mapstructure:"openai_base_url"`
	APIKey         string        `mapstructure:"openai_api_key"`
	Model          string        `mapstructure:"openai_model"`
	ImageModel     string        `mapstructure:"openai_image_model"`
	TimeoutSeconds int           `mapstructure:"openai_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

type Stripe struct {
	SecretKey     string `mapstructure:"stripe_secret_key"`
	WebhookSecret string `mapstructure:"stripe_webhook_secret"`
	SuccessURL    string `mapstructure:"stripe_success_url"`
	CancelURL     string `mapstructure:"stripe_cancel_url"`
}

type Cache struct {
	AnalysisTTLDays int `mapstructure:"cache_analysis_ttl_days"`
	AdTTLHours      int `mapstructure:"cache_ad_ttl_hours"`
}

// AnalysisTTL is the retention of globally shared analysis entries.
func (c Cache) AnalysisTTL() time.Duration {
	return time.Duration(c.AnalysisTTLDays) * 24 * time.Hour
}

// AdTTL is the short per-user retention that absorbs retries of ad
// generations without charging twice.
func (c Cache) AdTTL() time.Duration {
	return time.Duration(c.AdTTLHours) * time.Hour
}

type Credits struct {
	WelcomeGrant           int  `mapstructure:"credits_welcome_grant"`
	CampaignCreationCost   int  `mapstructure:"credits_campaign_creation_cost"`
	MetaAdGenerationCost   int  `mapstructure:"credits_meta_ad_generation_cost"`
	ImageGenerationCost    int  `mapstructure:"credits_image_generation_cost"`
	AnalysisCost           int  `mapstructure:"credits_analysis_cost"`
	ChargeOnDegradedResult bool `mapstructure:"credits_charge_on_degraded_result"`
}

// CostFor resolves the credit price and ledger action for one generation of
// the given kind on the given platform.
func (c Credits) CostFor(kind domain.GenerationKind, platform domain.Platform) (int, domain.CreditAction) {
	switch kind {
	case domain.KindWebsiteAnalysis, domain.KindAudienceAnalysis:
		return c.AnalysisCost, domain.ActionAIOptimization
	case domain.KindAdImage:
		return c.ImageGenerationCost, domain.ActionImageGeneration
	default:
		if platform == domain.PlatformMeta {
			return c.MetaAdGenerationCost, domain.ActionMetaAdGeneration
		}
		return c.CampaignCreationCost, domain.ActionCampaignCreation
	}
}

type CacheCleanup struct {
	CronSchedule string `mapstructure:"cache_cleanup_cron"`
	Enabled      bool   `mapstructure:"cache_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adpilot")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_IMAGE_MODEL", "dall-e-3")
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 60)

	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("STRIPE_SUCCESS_URL", "https://app.adpilot.io/billing/success")
	viper.SetDefault("STRIPE_CANCEL_URL", "https://app.adpilot.io/billing/cancel")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Analysis results are URL-keyed and safe to keep for a month; ad copy
	// entries only exist to absorb same-user retries.
	viper.SetDefault("CACHE_ANALYSIS_TTL_DAYS", 30)
	viper.SetDefault("CACHE_AD_TTL_HOURS", 24)

	viper.SetDefault("CREDITS_WELCOME_GRANT", 10)
	viper.SetDefault("CREDITS_CAMPAIGN_CREATION_COST", 5)
	viper.SetDefault("CREDITS_META_AD_GENERATION_COST", 5)
	viper.SetDefault("CREDITS_IMAGE_GENERATION_COST", 3)
	viper.SetDefault("CREDITS_ANALYSIS_COST", 2)
	// Matches the observed upstream behavior: a degraded (fallback) result
	// still costs credits. Set to false to refund on the degraded path.
	viper.SetDefault("CREDITS_CHARGE_ON_DEGRADED_RESULT", true)

	viper.SetDefault("CACHE_CLEANUP_CRON", "0 4 * * *")
	viper.SetDefault("CACHE_CLEANUP_ENABLED", true)

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
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

	config.OpenAI.Timeout = time.Duration(config.OpenAI.TimeoutSeconds) * time.Second

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
		logrus.Warn("Could not resolve the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("No .env file found in any known location")
}
