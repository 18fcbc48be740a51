/**
* Name: 			config.go
* Description: 		서버 설정 로딩
* Workflow: 		기본값 -> config.yaml -> 환경변수(.env 포함) 순으로 덮어쓰기
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// placeholderAPIKey is what the sample .env ships with; it counts as unset.
const placeholderAPIKey = "your_api_key_here"

const devJWTSecret = "default_secret_key"

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	AI        AIConfig        `yaml:"ai"`
	Speech    SpeechConfig    `yaml:"speech"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Insights  InsightsConfig  `yaml:"insights"`
	Blob      BlobConfig      `yaml:"blob"`
	Events    EventsConfig    `yaml:"events"`
	Archive   ArchiveConfig   `yaml:"archive"`

	// Warnings collects non-fatal problems found while loading (e.g. missing secrets).
	Warnings []string `yaml:"-"`
}

type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type AIConfig struct {
	Provider string        `yaml:"provider"` // gemini | http | none
	Model    string        `yaml:"model"`
	BaseURL  string        `yaml:"base_url"` // only for provider http
	APIKey   string        `yaml:"-"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Enabled reports whether an AI vendor can be called at all.
func (a AIConfig) Enabled() bool {
	switch a.Provider {
	case "gemini":
		return a.APIKey != ""
	case "http":
		return a.BaseURL != ""
	default:
		return false
	}
}

type SpeechConfig struct {
	Enabled         bool   `yaml:"enabled"`
	CredentialsFile string `yaml:"-"`
	LanguageCode    string `yaml:"language_code"`
	VoiceName       string `yaml:"voice_name"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"-"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
	AdminKey  string        `yaml:"-"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type InsightsConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	CheckInterval   time.Duration `yaml:"check_interval"`
	Concurrency     int           `yaml:"concurrency"`
}

type BlobConfig struct {
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// Enabled reports whether uploads to object storage are configured.
func (b BlobConfig) Enabled() bool {
	return b.Bucket != "" && b.AccessKey != "" && b.SecretKey != ""
}

type EventsConfig struct {
	AMQPURL  string `yaml:"-"`
	Exchange string `yaml:"exchange"`
}

type ArchiveConfig struct {
	DataDir    string `yaml:"data_dir"`
	FFmpegPath string `yaml:"ffmpeg_path"`
}

func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   120 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{Path: "./pravartak.db"},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
		AI: AIConfig{
			Provider: "gemini",
			Model:    "gemini-2.0-flash",
			Timeout:  60 * time.Second,
		},
		Speech: SpeechConfig{
			LanguageCode: "en-IN",
			VoiceName:    "en-IN-Wavenet-A",
		},
		Auth: AuthConfig{TokenTTL: 24 * time.Hour},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             10,
		},
		Insights: InsightsConfig{
			RefreshInterval: 7 * 24 * time.Hour,
			CheckInterval:   time.Hour,
			Concurrency:     3,
		},
		Blob:    BlobConfig{Region: "auto"},
		Events:  EventsConfig{Exchange: "career_events"},
		Archive: ArchiveConfig{DataDir: "data", FFmpegPath: "ffmpeg"},
	}
}

// Load builds the configuration. A missing .env or yaml file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.finalize()
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		} else {
			c.Warnings = append(c.Warnings, "ignoring invalid SERVER_PORT "+v)
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("AI_PROVIDER"); v != "" {
		c.AI.Provider = v
	}
	if v := os.Getenv("AI_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("AI_BASE_URL"); v != "" {
		c.AI.BaseURL = v
	}
	c.AI.APIKey = os.Getenv("GEMINI_API_KEY")

	c.Speech.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	c.Auth.JWTSecret = os.Getenv("JWT_SECRET_KEY")
	c.Auth.AdminKey = os.Getenv("ADMIN_API_KEY")
	c.Blob.AccessKey = os.Getenv("S3_ACCESS_KEY")
	c.Blob.SecretKey = os.Getenv("S3_SECRET_KEY")
	if v := os.Getenv("S3_BUCKET"); v != "" {
		c.Blob.Bucket = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		c.Blob.Endpoint = v
	}
	c.Events.AMQPURL = os.Getenv("RABBITMQ_URL")
}

func (c *Config) finalize() {
	if c.AI.APIKey == placeholderAPIKey {
		c.AI.APIKey = ""
	}
	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))
	if !c.AI.Enabled() {
		c.Warnings = append(c.Warnings, "AI provider is not configured; fallback responses will be used")
	}

	if c.Auth.JWTSecret == "" {
		c.Auth.JWTSecret = devJWTSecret
		c.Warnings = append(c.Warnings, "JWT_SECRET_KEY is not set; using the development default")
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	// STT/TTS need service account credentials.
	if c.Speech.Enabled && c.Speech.CredentialsFile == "" {
		c.Speech.Enabled = false
		c.Warnings = append(c.Warnings, "speech enabled but GOOGLE_APPLICATION_CREDENTIALS is not set; disabling")
	}

	if c.Insights.RefreshInterval <= 0 {
		c.Insights.RefreshInterval = 7 * 24 * time.Hour
	}
	if c.Insights.CheckInterval <= 0 {
		c.Insights.CheckInterval = time.Hour
	}
	if c.Insights.Concurrency <= 0 {
		c.Insights.Concurrency = 3
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = 1
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 10
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
