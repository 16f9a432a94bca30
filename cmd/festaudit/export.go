package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nurpe/festival-audit/internal/config"
	"github.com/nurpe/festival-audit/internal/logger"
	"github.com/nurpe/festival-audit/internal/service"
)

var exportArgs struct {
	format string
	out    string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the audit report as PDF or the dashboard data as XLSX",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportArgs.format, "format", service.FormatPDF, "pdf or xlsx")
	exportCmd.Flags().StringVar(&exportArgs.out, "out", "", "output file (default: the export's own file name)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.NewWithWriter(cfg.Environment, os.Stderr)

	app, err := newApp(cfg, log)
	if err != nil {
		return err
	}

	result, err := app.Export(exportArgs.format)
	if err != nil {
		return err
	}

	path := exportArgs.out
	if path == "" {
		path = result.FileName
	}
	if err := os.WriteFile(path, result.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("bytes", len(result.Content)).Msg("export written")
	return nil
}
