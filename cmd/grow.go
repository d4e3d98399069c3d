package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/sprout/internal/catalog"
	"github.com/papapumpkin/sprout/internal/compositor"
	"github.com/papapumpkin/sprout/internal/config"
	"github.com/papapumpkin/sprout/internal/export"
	"github.com/papapumpkin/sprout/internal/growth"
	"github.com/papapumpkin/sprout/internal/logging"
	"github.com/papapumpkin/sprout/internal/sequencer"
	"github.com/papapumpkin/sprout/internal/telemetry"
	"github.com/papapumpkin/sprout/internal/ui"
)

func runGrow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	return grow(cfg, cmd.OutOrStdout(), logger, time.Sleep)
}

// grow performs one pass through every growth stage, sending frames to the
// sinks selected by cfg.OutputFormat.
func grow(cfg config.Config, out io.Writer, logger *slog.Logger, sleep func(time.Duration)) (err error) {
	cat, err := catalog.New(cfg.Catalog, cfg.VarietyPack)
	if err != nil {
		return err
	}

	var journal *telemetry.Emitter
	if cfg.JournalFile != "" {
		journal, err = telemetry.NewEmitter(cfg.JournalFile, uuid.NewString())
		if err != nil {
			return err
		}
		defer closeJournal(journal, &err)
	}

	logger.Info("starting potato growth simulation", "variety", cfg.Variety, "catalog", cfg.Catalog, "output", cfg.OutputFormat)
	if err := journal.Record(telemetry.KindRunStart, "", map[string]any{
		"variety": cfg.Variety,
		"catalog": cfg.Catalog,
		"output":  cfg.OutputFormat,
		"width":   cfg.CanvasWidth,
		"height":  cfg.CanvasHeight,
	}); err != nil {
		return err
	}

	var (
		sinks []sequencer.Sink
		doc   *export.Document
		delay time.Duration
	)
	if cfg.Terminal() {
		sinks = append(sinks, ui.NewTerminal(out, cfg.CanvasWidth, cfg.ShowColors))
		delay = cfg.Delay()
	}
	if cfg.File() {
		doc = export.NewDocument(cfg.OutputPath())
		sinks = append(sinks, doc)
	}
	if journal != nil {
		sinks = append(sinks, telemetry.Journal{Emitter: journal})
	}

	frame := func(stage growth.Stage) string {
		return compositor.Render(cat.Pattern(cfg.Variety, stage), cfg.CanvasWidth, cfg.CanvasHeight)
	}

	runner := &sequencer.Runner{Sleep: sleep, Logger: logger}
	if err := runner.Run(growth.Stages(), frame, sinks, delay); err != nil {
		return err
	}

	if doc != nil {
		logger.Info("animation saved", "path", doc.Path, "stages", doc.Frames(), "size", humanize.Bytes(uint64(doc.Len())))
		if err := journal.Record(telemetry.KindExportWritten, "", map[string]any{
			"path":  doc.Path,
			"bytes": doc.Len(),
		}); err != nil {
			return err
		}
	}
	if err := journal.Record(telemetry.KindRunDone, "", nil); err != nil {
		return err
	}
	logger.Info("potato growth simulation completed")
	return nil
}

// closeJournal closes the journal and reports a close failure through errp
// unless an earlier error is already set.
func closeJournal(journal *telemetry.Emitter, errp *error) {
	if cerr := journal.Close(); cerr != nil && *errp == nil {
		*errp = cerr
	}
}
