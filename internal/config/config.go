package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2342
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "wortkiste"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
)

// AppConfig holds runtime startup configuration loaded from YAML,
// overridable through WK_* environment variables.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	DSN            string                `yaml:"dsn"` // MySQL DSN
	Database       DatabaseRuntimeConfig `yaml:"database"`
	RedisURL       string                `yaml:"redis_url"`
	Env            string                `yaml:"env"` // "development" | "production"
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
	AdminPassword  string                `yaml:"admin_password"` // plain or bcrypt hash
	Timezone       string                `yaml:"timezone"`
	AI             AIConfig              `yaml:"ai"`
}

type DatabaseRuntimeConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

// AIConfig selects the oracle providers. The server runs without any
// provider; review and completion then report a configuration error while
// the rest of the API keeps working.
type AIConfig struct {
	Providers         []AIProvider       `yaml:"providers"`
	ReviewModel       *AIModelAssignment `yaml:"review_model,omitempty"`
	CompletionModel   *AIModelAssignment `yaml:"completion_model,omitempty"`
	AlternativesModel *AIModelAssignment `yaml:"alternatives_model,omitempty"`
}

type AIModelAssignment struct {
	ProviderID string `yaml:"provider_id"`
	Model      string `yaml:"model"`
}

type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // OpenAI | OpenAI-Compatible | Anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint,omitempty"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// Load reads the YAML config file (if present), applies environment
// overrides and defaults, and validates the result.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := envString("WK_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := envString("WK_DSN"); v != "" {
		c.DSN = v
	}
	if v := envString("WK_DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := envString("WK_DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Database.Port = p
		}
	}
	if v := envString("WK_DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := envString("WK_DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := envString("WK_DB_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := envString("WK_REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := envString("WK_ENV"); v != "" {
		c.Env = v
	}
	if v := envString("WK_ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}
	if v := envString("WK_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := envString("WK_ADMIN_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := envString("WK_TIMEZONE"); v != "" {
		c.Timezone = v
	}

	// Single-provider shortcut: WK_AI_API_KEY (+ optional type/model/endpoint)
	// prepends an enabled provider without needing a YAML providers list.
	if key := envString("WK_AI_API_KEY"); key != "" {
		p := AIProvider{
			ID:           "env",
			Name:         "env",
			Type:         envString("WK_AI_PROVIDER"),
			APIKey:       key,
			Endpoint:     envString("WK_AI_ENDPOINT"),
			DefaultModel: envString("WK_AI_MODEL"),
			Enabled:      true,
		}
		c.AI.Providers = append([]AIProvider{p}, c.AI.Providers...)
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.DSN == "" {
		c.DSN = c.Database.buildDSN()
	}
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}

// OracleConfigured reports whether at least one enabled AI provider with a
// non-empty API key exists.
func (c *AppConfig) OracleConfigured() bool {
	for _, p := range c.AI.Providers {
		if p.Enabled && strings.TrimSpace(p.APIKey) != "" {
			return true
		}
	}
	return false
}

func (d DatabaseRuntimeConfig) buildDSN() string {
	if strings.TrimSpace(d.DSN) != "" {
		return d.DSN
	}
	host := d.Host
	if host == "" {
		host = defaultDBHost
	}
	port := d.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := d.User
	if user == "" {
		user = defaultDBUser
	}
	password := d.Password
	if password == "" {
		password = defaultDBPassword
	}
	name := d.Name
	if name == "" {
		name = defaultDBName
	}
	charset := d.Charset
	if charset == "" {
		charset = defaultDBCharset
	}
	loc := d.Loc
	if loc == "" {
		loc = defaultDBLoc
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=%s",
		user, password, host, port, name, charset, loc)
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
