package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"helium/internal/config"
	"helium/internal/loader"
	"helium/internal/magic"
	"helium/internal/urlutil"
)

var flagOpenHome bool

var homeCmd = &cobra.Command{
	Use:   "home [url]",
	Short: "Show or set the home page",
	Long: `Home prints the configured home page. Given a URL it stores it as the new
home page, adding http:// when no scheme is present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: homeRun,
}

var magicCmd = &cobra.Command{
	Use:       "magic [on|off]",
	Short:     "Show or toggle magic URL rewriting",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE:      magicRun,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "helium %s\n", Version)
	},
}

func init() {
	homeCmd.Flags().BoolVarP(&flagOpenHome, "open", "o", false, "Load the home page")
}

func homeRun(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		input := strings.TrimSpace(args[0])
		if err := urlutil.ValidateInput(input); err != nil {
			return err
		}
		home := magic.EnsureScheme(input)

		// Save from the file's values, not the flag-merged ones.
		err := updateConfig(func(c *config.Config) { c.HomePage = home })
		if err != nil {
			return err
		}
		cfg.HomePage = home
	}

	if flagOpenHome {
		target, err := loader.FromURL(cfg.HomePage, loaderOptions())
		if err != nil {
			return err
		}
		return deliver(cmd, target)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cfg.HomePage)
	return nil
}

func magicRun(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		enabled := args[0] == "on"
		if err := updateConfig(func(c *config.Config) { c.MagicURLs = enabled }); err != nil {
			return err
		}
		cfg.MagicURLs = enabled
	}

	state := "off"
	if cfg.MagicURLs {
		state = "on"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "magic URLs: %s\n", state)
	return nil
}

// updateConfig applies fn to the config file's current contents and saves.
func updateConfig(fn func(*config.Config)) error {
	fileCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	fn(fileCfg)
	if err := fileCfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
