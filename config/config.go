package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGroqURL       = "https://api.groq.com/openai/v1/chat/completions"
	DefaultTable         = "blogs"
	DefaultRedisTopicKey = "blog:topics"

	StoreSupabase = "supabase"
	StorePostgres = "postgres"
	StoreLocal    = "local"
)

var DefaultTopics = []string{"AI in Healthcare", "AI in Education", "AI in Marketing", "AI in Finance", "AI in Real Estate"}

var DefaultOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://your-vercel-domain.vercel.app"}

// Config is read once at start-up and handed to every component that needs it.
type Config struct {
	Env string

	GroqAPIKey string
	GroqModel  string
	GroqURL    string
	GroqRPM    int

	StoreDriver   string
	SupabaseURL   string
	SupabaseKey   string
	SupabaseTable string
	DatabaseURL   string
	DBMigrate     bool

	RedisURL      string
	RedisTopicKey string
	Topics        []string

	CORSOrigins  []string
	HTTPTimeout  time.Duration
	GenerateCron string
}

// Load builds a Config from the environment. Required secrets have no
// fallback: a missing one is an error.
func Load() (*Config, error) {
	cfg := &Config{
		Env:           getEnv("APP_ENV", "dev"),
		GroqAPIKey:    os.Getenv("GROQ_API_KEY"),
		GroqModel:     os.Getenv("GROQ_MODEL"),
		GroqURL:       getEnv("GROQ_API_URL", DefaultGroqURL),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", StoreSupabase)),
		SupabaseURL:   strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseKey:   os.Getenv("SUPABASE_KEY"),
		SupabaseTable: getEnv("SUPABASE_TABLE", DefaultTable),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMigrate:     os.Getenv("DB_MIGRATE") == "true",
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisTopicKey: getEnv("TOPICS_REDIS_KEY", DefaultRedisTopicKey),
		CORSOrigins:   DefaultOrigins,
		GenerateCron:  os.Getenv("GENERATE_CRON"),
	}

	var errs []error
	if cfg.GroqAPIKey == "" {
		errs = append(errs, errors.New("GROQ_API_KEY is required"))
	}
	if cfg.GroqModel == "" {
		errs = append(errs, errors.New("GROQ_MODEL is required"))
	}

	switch cfg.StoreDriver {
	case StoreSupabase:
		if cfg.SupabaseURL == "" {
			errs = append(errs, errors.New("SUPABASE_URL is required when STORE_DRIVER=supabase"))
		}
		if cfg.SupabaseKey == "" {
			errs = append(errs, errors.New("SUPABASE_KEY is required when STORE_DRIVER=supabase"))
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORE_DRIVER=postgres"))
		}
	case StoreLocal:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver))
	}

	if v := os.Getenv("GROQ_RPM"); v != "" {
		rpm, err := strconv.Atoi(v)
		if err != nil || rpm < 0 {
			errs = append(errs, fmt.Errorf("invalid GROQ_RPM %q", v))
		}
		cfg.GroqRPM = rpm
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v, err))
		}
		cfg.HTTPTimeout = d
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = SplitList(v)
	}

	topics, err := loadTopics()
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Topics = topics

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// KeyPreview returns the first 20 characters of the store key followed by
// "..." when the key is longer than that.
func (c *Config) KeyPreview() string {
	return KeyPreview(c.SupabaseKey)
}

func KeyPreview(key string) string {
	runes := []rune(key)
	if len(runes) > 20 {
		return string(runes[:20]) + "..."
	}
	return key
}

type topicsFile struct {
	Topics []string `yaml:"topics"`
}

// LoadTopicsFile reads a YAML document of the form `topics: [a, b]`.
func LoadTopicsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f topicsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	topics := compact(f.Topics)
	if len(topics) == 0 {
		return nil, fmt.Errorf("%s: no topics", path)
	}
	return topics, nil
}

func loadTopics() ([]string, error) {
	if path := os.Getenv("TOPICS_FILE"); path != "" {
		return LoadTopicsFile(path)
	}
	if v := os.Getenv("TOPICS"); v != "" {
		if topics := SplitList(v); len(topics) > 0 {
			return topics, nil
		}
	}
	return append([]string(nil), DefaultTopics...), nil
}

// SplitList splits a comma separated value, dropping blank items.
func SplitList(v string) []string {
	return compact(strings.Split(v, ","))
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
