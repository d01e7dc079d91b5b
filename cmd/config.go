package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bgdnvk/parley/internal/browser"
	"github.com/bgdnvk/parley/internal/cli"
)

const defaultConfig = `# Parley Configuration
# Every key can also be set as PARLEY_<SECTION>_<KEY>, e.g. PARLEY_LOG_LEVEL=debug.

debug: false

log:
  level: warn        # debug, info, warn, error
  format: console    # console or json

seed: 0              # 0 picks a random seed per run

story:
  template_path: template.txt

wiki:
  base_url: https://en.wikipedia.org/w/api.php
  summary_length: 1800
  timeout: 0s        # 0s waits for the server indefinitely
  user_agent: ""

browser:
  dry_run: false
  command: ""        # e.g. "firefox --new-tab"; empty uses the platform opener

transcript:
  path: ""           # e.g. ~/.parley/transcript.db; empty disables recording
  max_turns: 500
`

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage parley configuration",
	Long:  `Create and inspect the parley configuration file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a default configuration file in your home directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configPath := filepath.Join(home, ".parley.yaml")
		out := cmd.OutOrStdout()

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(out, "Configuration file already exists at %s\n", configPath)
			return nil
		}

		if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}

		fmt.Fprintf(out, "Configuration file created at %s\n", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective settings after merging defaults, the config file, environment and flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "Configuration file: %s\n\n", used)
		} else {
			fmt.Fprintln(out, "No configuration file found. Run 'parley config init' to create one.")
			fmt.Fprintln(out)
		}

		content, err := yaml.Marshal(viper.AllSettings())
		if err != nil {
			return fmt.Errorf("error encoding settings: %w", err)
		}
		fmt.Fprint(out, string(content))

		if viper.GetBool("browser.dry_run") {
			return nil
		}
		launcher := browser.NewSystemLauncher(viper.GetString("browser.command"), nil)
		console := cli.NewConsole(cmd.InOrStdin(), out)
		console.PrintDependencyStatus([]cli.DependencyStatus{
			cli.NewDependencyChecker().CheckOpener(launcher.Command()),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
