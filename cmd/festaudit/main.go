package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/festival-audit/internal/config"
	"github.com/nurpe/festival-audit/internal/excel"
	"github.com/nurpe/festival-audit/internal/pdf"
	"github.com/nurpe/festival-audit/internal/repository"
	"github.com/nurpe/festival-audit/internal/service"
	"github.com/nurpe/festival-audit/internal/session"
)

var rootCmd = &cobra.Command{
	Use:           "festaudit",
	Short:         "Festival environmental audit app",
	Long:          "Serve the festival audit app over HTTP, run it in the terminal, or export its report data.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, tuiCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the service graph shared by every command.
func newApp(cfg *config.Config, log zerolog.Logger) (*service.AppService, error) {
	repo, err := repository.NewSampleRepository()
	if err != nil {
		return nil, fmt.Errorf("load sample data: %w", err)
	}
	sessions := session.New(cfg.Session.TTL, cfg.Session.CleanupInterval)
	return service.NewAppService(repo, sessions, pdf.NewGenerator(), excel.NewGenerator(), log), nil
}
