package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/spf13/viper"
)

type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Terabox   TeraboxConfig   `mapstructure:"terabox"`
	Admission AdmissionConfig `mapstructure:"admission"`
	Transfer  TransferConfig  `mapstructure:"transfer"`
	Store     StoreConfig     `mapstructure:"store"`
	Redis     RedisConfig     `mapstructure:"redis"`
	S3        S3Config        `mapstructure:"s3"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Server    ServerConfig    `mapstructure:"server"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
	Log       LogConfig       `mapstructure:"log"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	// AdminIDs は TELEGRAM_ADMIN_IDS="1,2" のようにカンマ区切りでも指定できる
	AdminIDs []string `mapstructure:"admin_ids"`
	// MembershipChatID が0の場合、参加確認を行わない
	MembershipChatID int64 `mapstructure:"membership_chat_id"`
	// ArchiveChatID が0の場合、アーカイブチャットへの転送を行わない
	ArchiveChatID int64 `mapstructure:"archive_chat_id"`
	// WebhookURL が空の場合はロングポーリングで更新を受け取る
	WebhookURL           string        `mapstructure:"webhook_url"`
	WebhookSecret        string        `mapstructure:"webhook_secret"`
	APIEndpoint          string        `mapstructure:"api_endpoint"`
	PollTimeout          time.Duration `mapstructure:"poll_timeout"`
	MaxConcurrentUpdates int           `mapstructure:"max_concurrent_updates"`
	// DrainTimeout は停止時に処理中の更新の完了を待つ上限
	DrainTimeout time.Duration `mapstructure:"drain_timeout"`
}

type TeraboxConfig struct {
	Cookie            string `mapstructure:"cookie"`
	BaseURL           string `mapstructure:"base_url"`
	DerivedAPIEnabled bool   `mapstructure:"derived_api_enabled"`
}

type AdmissionConfig struct {
	Cooldown      time.Duration `mapstructure:"cooldown"`
	TokenValidity time.Duration `mapstructure:"token_validity"`
}

type TransferConfig struct {
	SizeLimitBytes int64         `mapstructure:"size_limit_bytes"`
	TempDir        string        `mapstructure:"temp_dir"`
	ResolveTimeout time.Duration `mapstructure:"resolve_timeout"`
	ArchiveTimeout time.Duration `mapstructure:"archive_timeout"`
	// ArchiveMinThroughput はアーカイブのタイムアウトをファイルサイズに応じて延ばすための最低速度 (バイト/秒)
	ArchiveMinThroughput int64         `mapstructure:"archive_min_throughput"`
	ProgressInterval     time.Duration `mapstructure:"progress_interval"`
	AdultKeywords        []string      `mapstructure:"adult_keywords"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type S3Config struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	Region          string `mapstructure:"region"`
	Prefix          string `mapstructure:"prefix"`
}

type CacheConfig struct {
	ResolutionTTL time.Duration `mapstructure:"resolution_ttl"`
	LRUSize       int           `mapstructure:"lru_size"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	TrustProxy        bool          `mapstructure:"trust_proxy"`
	TrustedProxyCIDRs []string      `mapstructure:"trusted_proxy_cidrs"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type BroadcastConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

var defaults = map[string]any{
	"telegram.bot_token":              "",
	"telegram.admin_ids":              []string{},
	"telegram.membership_chat_id":     0,
	"telegram.archive_chat_id":        0,
	"telegram.webhook_url":            "",
	"telegram.webhook_secret":         "",
	"telegram.api_endpoint":           "",
	"telegram.poll_timeout":           "60s",
	"telegram.max_concurrent_updates": 16,
	"telegram.drain_timeout":          "60s",

	"terabox.cookie":              "",
	"terabox.base_url":            "https://www.terabox.com",
	"terabox.derived_api_enabled": true,

	"admission.cooldown":       "60s",
	"admission.token_validity": "24h",

	"transfer.size_limit_bytes":       int64(2 << 30),
	"transfer.temp_dir":               "downloads",
	"transfer.resolve_timeout":        "30s",
	"transfer.archive_timeout":        "15s",
	"transfer.archive_min_throughput": int64(1 << 20),
	"transfer.progress_interval":      "3s",
	"transfer.adult_keywords":         []string{"porn", "xxx", "sex", "hentai", "nudity", "adult"},

	"store.path": "bot_database.json",

	"redis.enabled":  false,
	"redis.host":     "localhost",
	"redis.port":     6379,
	"redis.password": "",
	"redis.db":       0,

	"s3.enabled":           false,
	"s3.endpoint":          "",
	"s3.access_key_id":     "",
	"s3.secret_access_key": "",
	"s3.bucket_name":       "",
	"s3.region":            "us-east-1",
	"s3.prefix":            "archive",

	"cache.resolution_ttl": "5m",
	"cache.lru_size":       256,

	"server.port":                8080,
	"server.trust_proxy":         false,
	"server.trusted_proxy_cidrs": []string{},
	"server.shutdown_timeout":    "10s",

	"broadcast.enabled":         true,
	"broadcast.rate_per_second": 10.0,

	"log.level": "info",
}

// Load はカレントディレクトリの config.yaml と環境変数から設定を読み込む。
// 環境変数はキーの "." を "_" に置き換えた大文字名 (例: TELEGRAM_BOT_TOKEN)
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate は必須項目と値の範囲を確認する
func (c *Config) Validate() error {
	var errs []error
	if c.Telegram.BotToken == "" {
		errs = append(errs, errors.New("telegram.bot_token is required"))
	}
	if _, err := domain.ParsePrivilegedSet(c.Telegram.AdminIDs); err != nil {
		errs = append(errs, fmt.Errorf("telegram.admin_ids: %w", err))
	}
	if c.Telegram.WebhookURL != "" && c.Telegram.WebhookSecret == "" {
		errs = append(errs, errors.New("telegram.webhook_secret is required when telegram.webhook_url is set"))
	}
	if c.Telegram.MaxConcurrentUpdates <= 0 {
		errs = append(errs, errors.New("telegram.max_concurrent_updates must be positive"))
	}
	if c.Telegram.DrainTimeout <= 0 {
		errs = append(errs, errors.New("telegram.drain_timeout must be positive"))
	}
	if c.Transfer.SizeLimitBytes <= 0 {
		errs = append(errs, errors.New("transfer.size_limit_bytes must be positive"))
	}
	if c.Transfer.ArchiveMinThroughput <= 0 {
		errs = append(errs, errors.New("transfer.archive_min_throughput must be positive"))
	}
	if c.Admission.Cooldown < 0 {
		errs = append(errs, errors.New("admission.cooldown must not be negative"))
	}
	if c.Admission.TokenValidity <= 0 {
		errs = append(errs, errors.New("admission.token_validity must be positive"))
	}
	if c.Redis.Enabled && c.Redis.Host == "" {
		errs = append(errs, errors.New("redis.host is required when redis is enabled"))
	}
	if c.S3.Enabled && (c.S3.BucketName == "" || c.S3.Region == "") {
		errs = append(errs, errors.New("s3.bucket_name and s3.region are required when s3 is enabled"))
	}
	if c.Broadcast.RatePerSecond <= 0 {
		errs = append(errs, errors.New("broadcast.rate_per_second must be positive"))
	}
	return errors.Join(errs...)
}

func (c TelegramConfig) String() string {
	return fmt.Sprintf("TelegramConfig{BotToken: ***, AdminIDs: %v, MembershipChatID: %d, ArchiveChatID: %d, WebhookURL: %s, WebhookSecret: ***, PollTimeout: %s, MaxConcurrentUpdates: %d}",
		c.AdminIDs, c.MembershipChatID, c.ArchiveChatID, c.WebhookURL, c.PollTimeout, c.MaxConcurrentUpdates)
}

func (c TeraboxConfig) String() string {
	return fmt.Sprintf("TeraboxConfig{Cookie: ***, BaseURL: %s, DerivedAPIEnabled: %t}",
		c.BaseURL, c.DerivedAPIEnabled)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Enabled: %t, Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Enabled, c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Enabled: %t, Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, BucketName: %s, Region: %s, Prefix: %s}",
		c.Enabled, c.Endpoint, c.AccessKeyID, c.BucketName, c.Region, c.Prefix)
}
