package cmd

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"helium/internal/loader"
	"helium/internal/media"
	"helium/internal/player"
	"helium/internal/ui"
)

// openRun is the default command: helium [url]
func openRun(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		var err error
		input, err = ui.Input("Enter Destination URL", cfg.HomePage)
		if err != nil {
			return err
		}
	}

	target, err := loader.FromInput(input, loaderOptions())
	if err != nil {
		return err
	}
	return deliver(cmd, target)
}

// deliver prints the target when --print or --json is set and loads it
// in the configured player otherwise.
func deliver(cmd *cobra.Command, target media.Target) error {
	log.WithFields(log.Fields{
		"input":    target.Input,
		"url":      target.URL,
		"platform": target.Platform,
	}).Debug("resolved target")

	out := cmd.OutOrStdout()
	switch {
	case flagJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(target)
	case flagPrint:
		fmt.Fprintln(out, ui.FormatTarget(target, styled(out)))
		return nil
	}

	p := player.New(cfg.Player)
	if !p.Available() {
		return fmt.Errorf("player %q not found in PATH", cfg.Player)
	}

	log.WithField("player", p.Name()).Debug("launching player")
	if err := p.Play(target, player.Options{OnTop: cfg.OnTop}); err != nil {
		return fmt.Errorf("loading %s: %w", target.URL, err)
	}
	return nil
}
