package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/cli/migrate"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "Portal de Chamados - multi-tenant IT support ticketing",
		Long:  `Portal de Chamados is a multi-tenant support ticketing portal with a guided ticket wizard, company and equipment registries, and PDF reporting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
