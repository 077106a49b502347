package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"helium/internal/magic"
	"helium/internal/media"
	"helium/internal/ui"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <url>...",
	Short: "Print the embed form of each URL, or the URL unchanged",
	Long: `Rewrite prints one line per argument. URLs that no platform recognizes,
including malformed ones, are printed unchanged. Magic rewriting is always
applied here, regardless of the magic_urls setting.`,
	Args: cobra.MinimumNArgs(1),
	RunE: rewriteRun,
}

func rewriteRun(cmd *cobra.Command, args []string) error {
	targets := make([]media.Target, 0, len(args))
	for _, arg := range args {
		targets = append(targets, rewriteTarget(arg))
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(targets)
	}

	pretty := styled(out)
	for _, t := range targets {
		fmt.Fprintln(out, ui.FormatTarget(t, pretty))
	}
	return nil
}

// rewriteTarget applies the magic rewrite to raw without any validation,
// falling back to raw itself.
func rewriteTarget(raw string) media.Target {
	target := media.Target{Input: raw, URL: raw}
	if res, ok := magic.Resolve(raw); ok {
		target.URL = res.URL.String()
		target.Platform = res.Platform
		target.Rewritten = true
	}
	return target
}
