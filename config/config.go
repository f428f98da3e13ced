package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	SQLite     SQLiteConfig

	Telegram        TelegramConfig
	Gemini          GeminiConfig
	SemanticScholar SemanticScholarConfig

	Assistant AssistantConfig
	Scanner   ScannerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path string
}

type TelegramConfig struct {
	BotToken        string
	WebhookURL      string
	ChatID          string
	RateLimitPerMin int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type SemanticScholarConfig struct {
	APIKey string
}

// AssistantConfig holds the research-assistant defaults that seed the
// settings store on first boot.
type AssistantConfig struct {
	Timezone      string
	ThesisTopic   string
	PaperKeywords []string
}

// ScannerConfig controls the daily paper scan and digest jobs.
type ScannerConfig struct {
	MaxPapersPerDay int
	ScanTime        string // "HH:MM" local
	DigestTime      string // "HH:MM" local
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.SQLite.Path = viper.GetString("sqlite.path")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.ChatID = viper.GetString("telegram.chat_id")
	cfg.Telegram.RateLimitPerMin = viper.GetInt("telegram.rate_limit_per_min")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgChat := viper.GetString("telegram_chat_id"); tgChat != "" {
		cfg.Telegram.ChatID = tgChat
	}

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	cfg.SemanticScholar.APIKey = viper.GetString("semantic_scholar.api_key")
	if ssKey := viper.GetString("semantic_scholar_api_key"); ssKey != "" {
		cfg.SemanticScholar.APIKey = ssKey
	}

	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.ThesisTopic = viper.GetString("assistant.thesis_topic")
	cfg.Assistant.PaperKeywords = splitKeywords(viper.GetString("assistant.paper_keywords"))

	cfg.Scanner.MaxPapersPerDay = viper.GetInt("scanner.max_papers_per_day")
	cfg.Scanner.ScanTime = viper.GetString("scanner.scan_time")
	cfg.Scanner.DigestTime = viper.GetString("scanner.digest_time")

	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram.bot_token is required")
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("sqlite.path", "data/assistant.db")
	viper.SetDefault("telegram.rate_limit_per_min", 60)
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("assistant.timezone", "Europe/Istanbul")
	viper.SetDefault("assistant.thesis_topic",
		"SAR despeckling and vision-language models for remote sensing.")
	viper.SetDefault("assistant.paper_keywords",
		"SAR,synthetic aperture radar,despeckling,vision-language model,remote sensing")
	viper.SetDefault("scanner.max_papers_per_day", 30)
	viper.SetDefault("scanner.scan_time", "07:30")
	viper.SetDefault("scanner.digest_time", "08:30")
}

func splitKeywords(value string) []string {
	var keywords []string
	for _, kw := range strings.Split(value, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
