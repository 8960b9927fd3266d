// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paintquote CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/paintquote/internal/config"
	"github.com/pdiddy/paintquote/internal/vocab"
	"github.com/pdiddy/paintquote/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// appConfig is loaded once in PersistentPreRunE and read-only afterwards.
var appConfig *config.Config

// rootCmd is the base command for the paintquote CLI.
var rootCmd = &cobra.Command{
	Use:   "paintquote",
	Short: "Turn free-form painting job descriptions into priced quotes",
	Long: `paintquote reads an unstructured description of a painting job, the way a
contractor would dictate it, and prints a structured, priced quote: areas,
gallons, material and labor costs, and a line-item breakdown.

Configuration comes from paintquote.yaml (./ or ~/.config/paintquote/),
PAINTQUOTE_* environment variables, and flags. Extra brand and finish names
can be dropped into the vocab directory as brands.txt and finishes.txt.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
		}
		if err := config.InitLogger(cfg.Log); err != nil {
			return err
		}

		if cmd.Flags().Changed("vocab-dir") {
			cfg.VocabDir, _ = cmd.Flags().GetString("vocab-dir")
		}
		v, err := vocab.Load(cfg.VocabDir)
		if err != nil {
			return err
		}
		cfg.Engine = v.Apply(cfg.Engine)

		appConfig = cfg
		zap.L().Info("paintquote: configured",
			zap.String("vocab_dir", cfg.VocabDir),
			zap.Int("brands", len(cfg.Engine.KnownBrands)),
			zap.Int("finishes", len(cfg.Engine.KnownFinishes)),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paintquote.yaml or ~/.config/paintquote/paintquote.yaml)")
	rootCmd.PersistentFlags().String("vocab-dir", "", "directory with brands.txt and finishes.txt")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console or json)")
}

// engineConfig returns the loaded engine configuration, or the stock one
// when no command loaded it.
func engineConfig() types.EngineConfig {
	if appConfig == nil {
		return types.DefaultEngineConfig()
	}
	return appConfig.Engine
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
