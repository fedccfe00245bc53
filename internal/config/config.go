// Package config loads uibridge settings from defaults, an optional yaml file
// and UIBRIDGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. UIBRIDGE_SERVER_PORT.
const EnvPrefix = "UIBRIDGE"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"     yaml:"server"`
	Wait      WaitConfig      `mapstructure:"wait"       yaml:"wait"`
	Keys      KeysConfig      `mapstructure:"keys"       yaml:"keys"`
	Recorder  RecorderConfig  `mapstructure:"recorder"   yaml:"recorder"`
	Workflow  WorkflowConfig  `mapstructure:"workflow"   yaml:"workflow"`
	Logger    LoggerConfig    `mapstructure:"logger"     yaml:"logger"`
	LogBuffer LogBufferConfig `mapstructure:"log_buffer" yaml:"log_buffer"`
	Metrics   MetricsConfig   `mapstructure:"metrics"    yaml:"metrics"`
}

type ServerConfig struct {
	Host     string `mapstructure:"host"     yaml:"host"`
	Port     int    `mapstructure:"port"     yaml:"port"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

// Addr is the listen address for the command server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type WaitConfig struct {
	PollInterval   time.Duration `mapstructure:"poll_interval"   yaml:"poll_interval"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout" yaml:"default_timeout"`
}

type KeysConfig struct {
	DefaultDelay time.Duration `mapstructure:"default_delay" yaml:"default_delay"`
}

type RecorderConfig struct {
	TextInputClasses []string `mapstructure:"text_input_classes" yaml:"text_input_classes"`
}

type WorkflowConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LoggerConfig controls the zap logger built by observability.NewLogger.
type LoggerConfig struct {
	Level       string `mapstructure:"level"        yaml:"level"`
	Format      string `mapstructure:"format"       yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file"     yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size"     yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups"  yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"      yaml:"max_age"`
	Compress    bool   `mapstructure:"compress"     yaml:"compress"`
}

type LogBufferConfig struct {
	Size int `mapstructure:"size" yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	// -- Server --
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5557)
	v.SetDefault("server.endpoint", "http://127.0.0.1:5557/api/command")

	// -- Automation --
	v.SetDefault("wait.poll_interval", "100ms")
	v.SetDefault("wait.default_timeout", "5s")
	v.SetDefault("keys.default_delay", "100ms")
	v.SetDefault("recorder.text_input_classes", []string{"QLineEdit", "QTextEdit", "QPlainTextEdit", "QComboBox"})
	v.SetDefault("workflow.dir", "workflows")

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "uibridge")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("log_buffer.size", 100)
	v.SetDefault("metrics.enabled", true)
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load builds a viper instance from defaults, the environment and, when path
// is non-empty, the given yaml file.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates the settings held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// expandPaths resolves a leading ~ in filesystem settings.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Workflow.Dir, &c.Logger.LogFile} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Endpoint != "" {
		if u, err := url.Parse(c.Server.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("server.endpoint must be an absolute URL, got %q", c.Server.Endpoint)
		}
	}
	if c.Wait.PollInterval <= 0 {
		return errors.New("wait.poll_interval must be positive")
	}
	if c.Wait.DefaultTimeout < 0 {
		return errors.New("wait.default_timeout must not be negative")
	}
	if c.Keys.DefaultDelay < 0 {
		return errors.New("keys.default_delay must not be negative")
	}
	if c.Workflow.Dir == "" {
		return errors.New("workflow.dir is required")
	}
	if c.LogBuffer.Size <= 0 {
		return errors.New("log_buffer.size must be a positive integer")
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	return nil
}
