package cmd

import (
	"github.com/spf13/cobra"

	"helium/internal/loader"
	"helium/internal/urlutil"
)

var handleCmd = &cobra.Command{
	Use:   "handle <helium://url>",
	Short: "Load a URL delivered through the helium:// scheme",
	Long: `Handle is the target of the helium:// URL scheme registration. Everything
after "helium://" is loaded as if it had been typed, so both
helium://https://vimeo.com/76979871 and helium://vimeo.com/76979871 work.`,
	Args: cobra.ExactArgs(1),
	RunE: handleRun,
}

func handleRun(cmd *cobra.Command, args []string) error {
	raw, err := urlutil.TrimAppScheme(args[0])
	if err != nil {
		return err
	}

	target, err := loader.FromInput(raw, loaderOptions())
	if err != nil {
		return err
	}
	return deliver(cmd, target)
}
