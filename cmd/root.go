package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/sprout/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Animated ASCII potato growth",
	Long: `Sprout grows a potato plant stage by stage, from seed to maturity, as
ASCII art over a layered soil background. Frames are shown on the terminal,
exported to a text file, or both.`,
	PersistentPreRunE: initConfig,
	RunE:              runGrow,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// flagKeys maps persistent flags to their config keys.
var flagKeys = map[string]string{
	"speed":   "growth_speed",
	"width":   "canvas_width",
	"height":  "canvas_height",
	"variety": "variety",
	"output":  "output_format",
	"file":    "output_file",
	"catalog": "catalog",
	"pack":    "variety_pack",
	"journal": "journal_file",
	"verbose": "verbose",
}

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "JSON config file (default .sprout.json)")
	pf.Float64P("speed", "s", 2.0, "seconds between growth stages")
	pf.StringP("variety", "v", "russet", "potato variety (russet, yukon_gold, red, fingerling)")
	pf.IntP("width", "w", 40, "canvas width")
	pf.Int("height", 20, "canvas height")
	pf.StringP("output", "o", config.OutputTerminal, "output format: terminal, file, or both")
	pf.StringP("file", "f", "", "output file name (default potato_growth.txt)")
	pf.Bool("no-colors", false, "disable color output")
	pf.String("catalog", "registry", "pattern source: registry or builtin")
	pf.String("pack", "", "TOML variety pack merged into the registry")
	pf.String("journal", "", "append a JSONL run journal to this file")
	pf.Bool("verbose", false, "debug logging")
}

// initConfig binds the flags to viper and reads the config file. Flags only
// override the file when they are set explicitly.
func initConfig(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}
	if noColors, _ := flags.GetBool("no-colors"); noColors {
		viper.Set("show_colors", false)
	}

	viper.SetEnvPrefix("SPROUT")
	viper.AutomaticEnv()

	cfgFile, _ := flags.GetString("config")
	return config.ReadFile(cfgFile)
}

// loadConfig loads and validates the configuration for a command.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
