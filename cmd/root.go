// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"helium/internal/config"
	"helium/internal/loader"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagPlayer  string
	flagNoMagic bool
	flagNoOnTop bool
	flagPrint   bool
	flagJSON    bool
	flagDebug   bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "helium [url]",
	Short: "Load video pages in a floating player, rewritten to their embed form",
	Long: `Helium hands a URL to a media player or browser. Links to YouTube, Twitch,
Vimeo, Youku and DailyMotion pages are rewritten to the platform's embeddable
player first, keeping the start offset where there is one.

Without an argument helium prompts for a URL, prefilled with the home page.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              openRun,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player: mpv | vlc | iina | celluloid | browser")
	rootCmd.PersistentFlags().BoolVar(&flagNoMagic, "no-magic", false, "Load URLs as given, without embed rewrites")
	rootCmd.PersistentFlags().BoolVar(&flagNoOnTop, "no-ontop", false, "Do not keep the player window on top")
	rootCmd.PersistentFlags().BoolVarP(&flagPrint, "print", "p", false, "Print the resolved URL instead of loading it")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Print the resolved target as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(handleCmd)
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(magicCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}
	if flagNoMagic {
		cfg.MagicURLs = false
	}
	if flagNoOnTop {
		cfg.OnTop = false
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogging(cfg.Debug)
	log.WithFields(log.Fields{
		"player": cfg.Player,
		"magic":  cfg.MagicURLs,
		"ontop":  cfg.OnTop,
	}).Debug("configuration loaded")

	return nil
}

func setupLogging(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func loaderOptions() loader.Options {
	return loader.Options{Magic: cfg.MagicURLs}
}

// styled reports whether w is a terminal worth colouring.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
