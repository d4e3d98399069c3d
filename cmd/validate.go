package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/sprout/internal/catalog"
	"github.com/papapumpkin/sprout/internal/ui"
)

var errPackInvalid = errors.New("variety pack has errors")

var validateCmd = &cobra.Command{
	Use:   "validate <pack.toml>...",
	Short: "Check TOML variety packs",
	Long: `Parses each variety pack and reports errors, plus any stages a variety
leaves undefined (those render as a "?" placeholder).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := ui.New(cmd.OutOrStdout(), cfg.ShowColors)

	ok := true
	for _, path := range args {
		pack, err := catalog.LoadPack(path)
		p.PackResult(path, pack, err)
		if err != nil {
			ok = false
		}
	}
	if !ok {
		return errPackInvalid
	}
	return nil
}
