package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/sprout/internal/catalog"
	"github.com/papapumpkin/sprout/internal/compositor"
	"github.com/papapumpkin/sprout/internal/growth"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single growth stage frame",
	Long: `Composes one frame for the chosen stage and prints it to stdout without
clearing the screen or waiting. Canvas size, variety, and catalog come from the
usual flags and config file.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("stage", growth.Maturity.String(), "stage to render ("+stageNames()+")")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("stage")
	stage, err := growth.ParseStage(name)
	if err != nil {
		return fmt.Errorf("%w (want one of %s)", err, stageNames())
	}

	cat, err := catalog.New(cfg.Catalog, cfg.VarietyPack)
	if err != nil {
		return err
	}
	frame := compositor.Render(cat.Pattern(cfg.Variety, stage), cfg.CanvasWidth, cfg.CanvasHeight)
	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}

func stageNames() string {
	stages := growth.Stages()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
