package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"helium/internal/loader"
	"helium/internal/media"
	"helium/internal/ui"
	"helium/internal/urlutil"
)

// maxScanBytes caps how much text scan reads.
const maxScanBytes = 10 * 1024 * 1024

var flagOpen bool

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Find URLs in text and print their resolved form",
	Long: `Scan reads a file (or stdin when no file or "-" is given), finds every
http(s) URL in it and prints each one resolved. With --open one of them is
loaded, chosen with fzf when there are several.`,
	Args: cobra.MaximumNArgs(1),
	RunE: scanRun,
}

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Load the URL on the clipboard",
	Long: `Paste reads the system clipboard, which may hold a whole text selection,
picks the URLs out of it and loads one, chosen with fzf when there are
several. If the clipboard holds no absolute URL, its text is treated as
typed input.`,
	Args: cobra.NoArgs,
	RunE: pasteRun,
}

func init() {
	scanCmd.Flags().BoolVarP(&flagOpen, "open", "o", false, "Load one of the found URLs")
}

func scanRun(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxScanBytes))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	targets := targetsFromText(string(data))
	if len(targets) == 0 {
		return fmt.Errorf("no URLs found")
	}

	if flagOpen {
		return pickAndDeliver(cmd, targets)
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

func pasteRun(cmd *cobra.Command, args []string) error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("reading clipboard: %w", err)
	}

	targets := targetsFromText(text)
	if len(targets) == 0 {
		target, err := loader.FromInput(text, loaderOptions())
		if err != nil {
			return fmt.Errorf("clipboard holds no URL: %w", err)
		}
		return deliver(cmd, target)
	}
	return pickAndDeliver(cmd, targets)
}

// targetsFromText resolves every URL found in text. URLs the loader
// rejects are skipped.
func targetsFromText(text string) []media.Target {
	var targets []media.Target
	for _, raw := range urlutil.FindURLs(text) {
		target, err := loader.FromURL(raw, loaderOptions())
		if err != nil {
			log.WithFields(log.Fields{"url": raw, "err": err}).Debug("skipping URL")
			continue
		}
		targets = append(targets, target)
	}
	return targets
}

func pickAndDeliver(cmd *cobra.Command, targets []media.Target) error {
	items := make([]string, len(targets))
	for i, t := range targets {
		items[i] = t.Title()
	}

	idx, err := ui.Select("Load", items)
	if err != nil {
		return err
	}
	return deliver(cmd, targets[idx])
}
