package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	Pacing PacingConfig `yaml:"pacing" mapstructure:"pacing"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SourceConfig configures the NAVPS report endpoint.
type SourceConfig struct {
	Endpoint    string `yaml:"endpoint" mapstructure:"endpoint"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// PacingConfig configures the fixed delay between report requests.
type PacingConfig struct {
	DelaySecs int `yaml:"delay_secs" mapstructure:"delay_secs"`
}

// OutputConfig configures where reports are saved.
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Format  string `yaml:"format" mapstructure:"format"`
	Summary string `yaml:"summary" mapstructure:"summary"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("NAVPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.endpoint", "http://pifa.com.ph/factsfignavps.asp")
	v.SetDefault("source.user_agent", "navps-cli/1.0")
	v.SetDefault("source.timeout_secs", 30)
	v.SetDefault("pacing.delay_secs", 5)
	v.SetDefault("output.dir", "Reports")
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.summary", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "csv", "xlsx":
	default:
		return eris.Errorf("config: unsupported output.format %q", c.Output.Format)
	}
	if c.Pacing.DelaySecs < 0 {
		return eris.Errorf("config: pacing.delay_secs must not be negative, got %d", c.Pacing.DelaySecs)
	}
	if c.Source.TimeoutSecs <= 0 {
		return eris.Errorf("config: source.timeout_secs must be positive, got %d", c.Source.TimeoutSecs)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	if cfg.File != "" {
		zapCfg.OutputPaths = append(zapCfg.OutputPaths, cfg.File)
		zapCfg.ErrorOutputPaths = append(zapCfg.ErrorOutputPaths, cfg.File)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
