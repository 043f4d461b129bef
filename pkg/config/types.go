package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Backends     BackendsConfig   `mapstructure:"backends"`
	Brightcove   BrightcoveConfig `mapstructure:"brightcove"`
	Wistia       WistiaConfig     `mapstructure:"wistia"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	EnableWAL             bool          `mapstructure:"enable_wal"`
	EnableForeignKeys     bool          `mapstructure:"enable_foreign_keys"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// BackendsConfig contains platform adapter endpoint settings
type BackendsConfig struct {
	Timeout    time.Duration           `mapstructure:"timeout"`
	YouTube    YouTubeBackendConfig    `mapstructure:"youtube"`
	Brightcove BrightcoveBackendConfig `mapstructure:"brightcove"`
	Wistia     WistiaBackendConfig     `mapstructure:"wistia"`
}

// YouTubeBackendConfig contains YouTube endpoint overrides
type YouTubeBackendConfig struct {
	TimedTextURL string `mapstructure:"timed_text_url"`
}

// BrightcoveBackendConfig contains Brightcove endpoint overrides
type BrightcoveBackendConfig struct {
	OAuthURL string `mapstructure:"oauth_url"`
	CMSURL   string `mapstructure:"cms_url"`
}

// WistiaBackendConfig contains Wistia endpoint overrides
type WistiaBackendConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// BrightcoveConfig contains the course-wide Brightcove credentials
type BrightcoveConfig struct {
	Token     string `mapstructure:"token"`
	AccountID string `mapstructure:"account_id"`
}

// WistiaConfig contains the course-wide Wistia credentials
type WistiaConfig struct {
	Token string `mapstructure:"token"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled   bool           `mapstructure:"enabled"`
	Endpoints map[string]int `mapstructure:"endpoints"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool     `mapstructure:"enable_cors"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	CORSMethods     []string `mapstructure:"cors_methods"`
	CORSHeaders     []string `mapstructure:"cors_headers"`
	EnableRequestID bool     `mapstructure:"enable_request_id"`
	EnableRecovery  bool     `mapstructure:"enable_recovery"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
