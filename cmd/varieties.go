package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/sprout/internal/catalog"
	"github.com/papapumpkin/sprout/internal/ui"
)

var varietiesCmd = &cobra.Command{
	Use:   "varieties",
	Short: "List the registered potato varieties",
	Long: `Lists the stock varieties plus any from the configured --pack. Unknown
variety names fall back to the one marked (default). The listing always comes
from the variety registry; --catalog builtin has no named varieties.`,
	Args: cobra.NoArgs,
	RunE: runVarieties,
}

func init() {
	varietiesCmd.Flags().Bool("show", false, "print every stage pattern of each variety")
	rootCmd.AddCommand(varietiesCmd)
}

func runVarieties(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The builtin catalog has no named varieties, so the listing always
	// reads the registry regardless of --catalog.
	reg, err := catalog.LoadRegistry(cfg.VarietyPack)
	if err != nil {
		return err
	}

	p := ui.New(cmd.OutOrStdout(), cfg.ShowColors)
	show, _ := cmd.Flags().GetBool("show")
	if !show {
		p.Varieties(reg.Names(), reg.Fallback())
		return nil
	}
	for _, name := range reg.Names() {
		p.VarietyPatterns(reg.Lookup(name))
	}
	return nil
}
