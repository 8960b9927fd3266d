// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads paintquote configuration from a YAML file, the
// environment and built-in defaults, and installs the global zap logger.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/paintquote/pkg/types"
)

// EnvPrefix prefixes every environment override, e.g.
// PAINTQUOTE_ENGINE_DEFAULT_MARKUP_PERCENT=15.
const EnvPrefix = "PAINTQUOTE"

// Config holds the full application configuration.
type Config struct {
	Engine   types.EngineConfig `yaml:"engine" mapstructure:"engine"`
	History  HistoryConfig      `yaml:"history" mapstructure:"history"`
	Log      LogConfig          `yaml:"log" mapstructure:"log"`
	VocabDir string             `yaml:"vocab_dir" mapstructure:"vocab_dir"`
}

// HistoryConfig locates the quote history database.
type HistoryConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration. When path is empty, paintquote.yaml is looked up
// in the working directory and ~/.config/paintquote/. A missing file is not
// an error; an explicit path that cannot be read is.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("paintquote")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "paintquote"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, eris.Wrap(err, "config: validate engine")
	}

	zap.L().Debug("config: loaded", zap.String("file", v.ConfigFileUsed()))
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	e := types.DefaultEngineConfig()
	v.SetDefault("engine.default_labor_rate_per_sqft", e.DefaultLaborRatePerSqft)
	v.SetDefault("engine.default_markup_percent", e.DefaultMarkupPercent)
	v.SetDefault("engine.default_ceiling_height", e.DefaultCeilingHeight)
	v.SetDefault("engine.default_spread_rate", e.DefaultSpreadRate)
	v.SetDefault("engine.default_coats", e.DefaultCoats)
	v.SetDefault("engine.default_paint_cost_per_gallon", e.DefaultPaintCostPerGallon)
	v.SetDefault("engine.default_primer_cost_per_gallon", e.DefaultPrimerCostPerGallon)
	v.SetDefault("engine.primer_spread_rate", e.PrimerSpreadRate)
	v.SetDefault("engine.per_unit_area_constants.door", e.PerUnitAreaConstants.Door)
	v.SetDefault("engine.per_unit_area_constants.window", e.PerUnitAreaConstants.Window)
	v.SetDefault("engine.per_unit_area_constants.trim_linear_foot", e.PerUnitAreaConstants.TrimLinearFoot)
	v.SetDefault("engine.known_brands", e.KnownBrands)
	v.SetDefault("engine.known_finishes", e.KnownFinishes)

	v.SetDefault("history.dir", "data/history")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("vocab_dir", ".paintquote/vocab")
}

// InitLogger builds a zap logger from cfg and installs it as the global
// logger. Format "console" gives human-readable output; anything else JSON.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(lvl)
	zapCfg.OutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
