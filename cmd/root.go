package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "A small conversational agent for the terminal",
	Long: `Parley reads one line at a time and answers it: small talk about how it is
doing, reactions to what you tell it about yourself, encyclopedia lookups,
opening websites ("search github.com find cobra") and short generated stories.

Running parley without a subcommand starts the interactive chat.`,
	SilenceUsage: true,
	RunE:         runChat,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.parley.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output (routing decisions and collaborator calls)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: console or json (default console)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for reply selection; 0 picks a random seed")
	rootCmd.PersistentFlags().String("template", "", "story template file (default template.txt)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "print website URLs without launching a browser")
	rootCmd.PersistentFlags().String("transcript", "", "SQLite file to record turns in (disabled when empty)")
	rootCmd.PersistentFlags().String("wiki-url", "", "encyclopedia API URL (or set PARLEY_WIKI_URL)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("story.template_path", rootCmd.PersistentFlags().Lookup("template"))
	viper.BindPFlag("browser.dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	viper.BindPFlag("transcript.path", rootCmd.PersistentFlags().Lookup("transcript"))
	viper.BindPFlag("wiki.base_url", rootCmd.PersistentFlags().Lookup("wiki-url"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("debug", false)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("seed", 0)
	viper.SetDefault("story.template_path", "template.txt")
	viper.SetDefault("wiki.summary_length", 1800)
	viper.SetDefault("wiki.timeout", "0s")
	viper.SetDefault("wiki.user_agent", "")
	viper.SetDefault("browser.dry_run", false)
	viper.SetDefault("browser.command", "")
	viper.SetDefault("transcript.max_turns", 500)
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".parley")
	}

	viper.SetEnvPrefix("PARLEY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
