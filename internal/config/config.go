package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Redis      RedisConfig
	Vocabulary VocabularyConfig
	Quiz       QuizConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AllowOrigins string
}

type LoggerConfig struct {
	Env   string
	Level string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// VocabularyConfig selects where lesson sets are loaded from.
// Source is "file" (JSON documents) or "sqlite".
type VocabularyConfig struct {
	Source        string
	BeginnerPath  string
	AdvancedPath  string
	SQLitePath    string
	DefaultLesson string
}

type QuizConfig struct {
	HistoryLimit  int
	HistoryView   int
	SessionTTL    time.Duration
	SweepInterval time.Duration
	SummaryTTL    time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "20s")
	v.SetDefault("server.allow_origins", "*")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("vocabulary.source", "file")
	v.SetDefault("vocabulary.beginner_path", "data/beginner-words.json")
	v.SetDefault("vocabulary.advanced_path", "data/words.json")
	v.SetDefault("vocabulary.sqlite_path", "data/vocabulary.db")
	v.SetDefault("vocabulary.default_lesson", "advanced")

	v.SetDefault("quiz.history_limit", 500)
	v.SetDefault("quiz.history_view", 10)
	v.SetDefault("quiz.session_ttl", "2h")
	v.SetDefault("quiz.sweep_interval", "5m")
	v.SetDefault("quiz.summary_ttl", "24h")
}

// LoadConfig reads config.yaml from the working directory or ./config if one
// exists, then applies environment overrides (e.g. SERVER_PORT,
// REDIS_ADDRESS, VOCABULARY_SOURCE).
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Vocabulary: VocabularyConfig{
			Source:        strings.ToLower(v.GetString("vocabulary.source")),
			BeginnerPath:  v.GetString("vocabulary.beginner_path"),
			AdvancedPath:  v.GetString("vocabulary.advanced_path"),
			SQLitePath:    v.GetString("vocabulary.sqlite_path"),
			DefaultLesson: strings.ToLower(v.GetString("vocabulary.default_lesson")),
		},
		Quiz: QuizConfig{
			HistoryLimit:  v.GetInt("quiz.history_limit"),
			HistoryView:   v.GetInt("quiz.history_view"),
			SessionTTL:    v.GetDuration("quiz.session_ttl"),
			SweepInterval: v.GetDuration("quiz.sweep_interval"),
			SummaryTTL:    v.GetDuration("quiz.summary_ttl"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values viper cannot type-check on its own.
func (c *Config) Validate() error {
	switch c.Vocabulary.Source {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unsupported vocabulary source %q: expected file or sqlite", c.Vocabulary.Source)
	}
	switch c.Vocabulary.DefaultLesson {
	case "beginner", "advanced":
	default:
		return fmt.Errorf("unsupported default lesson %q: expected beginner or advanced", c.Vocabulary.DefaultLesson)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Quiz.HistoryView <= 0 {
		return fmt.Errorf("quiz.history_view must be positive, got %d", c.Quiz.HistoryView)
	}
	if c.Quiz.HistoryLimit < 0 {
		return fmt.Errorf("quiz.history_limit must not be negative, got %d", c.Quiz.HistoryLimit)
	}
	return nil
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}
