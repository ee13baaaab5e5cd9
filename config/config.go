package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultAllowedEmailDomain = "centime.com"

type Configuration struct {
	ApiPort  string `json:"api_port" yaml:"api_port"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	Database string `json:"database" yaml:"database"` // "sqlite3" ou "postgres"
	DbPath   string `json:"db_path" yaml:"db_path"`
	DbHost   string `json:"db_host" yaml:"db_host"`
	DbPort   string `json:"db_port" yaml:"db_port"`
	DbUser   string `json:"db_user" yaml:"db_user"`
	DbName   string `json:"db_name" yaml:"db_name"`
	DbPass   string `json:"db_pass" yaml:"db_pass"`

	Backend struct {
		BaseURL        string `json:"base_url" yaml:"base_url"`
		TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
	} `json:"backend" yaml:"backend"`

	Auth struct {
		AllowedEmailDomain string `json:"allowed_email_domain" yaml:"allowed_email_domain"`
		SessionTTLHours    int    `json:"session_ttl_hours" yaml:"session_ttl_hours"`
		CookieName         string `json:"cookie_name" yaml:"cookie_name"`
		CookieSecure       bool   `json:"cookie_secure" yaml:"cookie_secure"`
	} `json:"auth" yaml:"auth"`

	UI struct {
		DefaultPageSize int `json:"default_page_size" yaml:"default_page_size"`
	} `json:"ui" yaml:"ui"`

	Cors struct {
		AllowedOrigin string `json:"allowed_origin" yaml:"allowed_origin"`
	} `json:"cors" yaml:"cors"`
}

// Load reads a JSON or YAML file (chosen by extension), fills defaults and
// applies environment overrides. An empty path yields the defaults.
func Load(path string) (Configuration, error) {
	var c Configuration
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(b, &c)
		default:
			err = json.Unmarshal(b, &c)
		}
		if err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	c.applyDefaults()
	c.applyEnvOverrides()
	return c, nil
}

func (c *Configuration) applyDefaults() {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/testdesk.db"
	}
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8000/api"
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = 30
	}
	if c.Auth.AllowedEmailDomain == "" {
		c.Auth.AllowedEmailDomain = DefaultAllowedEmailDomain
	}
	if c.Auth.SessionTTLHours <= 0 {
		c.Auth.SessionTTLHours = 24
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "testdesk_session"
	}
	if c.UI.DefaultPageSize <= 0 {
		c.UI.DefaultPageSize = 10
	}
	if c.Cors.AllowedOrigin == "" {
		c.Cors.AllowedOrigin = "*"
	}
}

// applyEnvOverrides lets deployments change the basics without a new file.
func (c *Configuration) applyEnvOverrides() {
	if v := getenv("PORT"); v != "" {
		c.ApiPort = v
	}
	if v := getenv("BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := getenv("BACKEND_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Backend.TimeoutSeconds = n
		}
	}
	// the browser build used REACT_APP_ALLOWED_EMAIL_DOMAIN; both names are honored
	if v := getenv("REACT_APP_ALLOWED_EMAIL_DOMAIN"); v != "" {
		c.Auth.AllowedEmailDomain = v
	}
	if v := getenv("ALLOWED_EMAIL_DOMAIN"); v != "" {
		c.Auth.AllowedEmailDomain = v
	}
	if v := getenv("DATABASE"); v != "" {
		c.Database = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")
	c.Auth.AllowedEmailDomain = strings.TrimPrefix(strings.TrimSpace(c.Auth.AllowedEmailDomain), "@")
}

func (c Configuration) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

func (c Configuration) SessionTTL() time.Duration {
	return time.Duration(c.Auth.SessionTTLHours) * time.Hour
}

func getenv(k string) string {
	return strings.TrimSpace(os.Getenv(k))
}
