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
	Dataset   DatasetConfig   `yaml:"dataset" mapstructure:"dataset"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Classify  ClassifyConfig  `yaml:"classify" mapstructure:"classify"`
	Recommend RecommendConfig `yaml:"recommend" mapstructure:"recommend"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DatasetConfig configures the two tabular inputs and the join.
type DatasetConfig struct {
	Constituents string `yaml:"constituents" mapstructure:"constituents"`
	Prices       string `yaml:"prices" mapstructure:"prices"`
	JoinKey      string `yaml:"join_key" mapstructure:"join_key"`
	YTDColumn    string `yaml:"ytd_column" mapstructure:"ytd_column"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ClassifyConfig configures the sector classification phase.
type ClassifyConfig struct {
	TaxonomyFile string `yaml:"taxonomy_file" mapstructure:"taxonomy_file"`
}

// RecommendConfig configures the recommendation phase.
type RecommendConfig struct {
	TopSectors         int   `yaml:"top_sectors" mapstructure:"top_sectors"`
	CompaniesPerSector int   `yaml:"companies_per_sector" mapstructure:"companies_per_sector"`
	MaxTokens          int64 `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ENRICH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset.constituents", "nasdaq100.csv")
	v.SetDefault("dataset.prices", "nasdaq100_price_change.csv")
	v.SetDefault("dataset.join_key", "symbol")
	v.SetDefault("dataset.ytd_column", "ytd")
	// Empty defaults register the keys so AutomaticEnv can fill them.
	v.SetDefault("anthropic.key", "")
	v.SetDefault("classify.taxonomy_file", "")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("recommend.top_sectors", 3)
	v.SetDefault("recommend.companies_per_sector", 3)
	v.SetDefault("recommend.max_tokens", 2048)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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

	return &cfg, nil
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

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
