package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stellar-wallet-server",
		Short:        "Stellar wallet authentication and payments API",
		Version:      buildVersion,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(versionTemplate())

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newKeygenCmd(),
		newSignCmd(),
	)

	return root
}

func versionTemplate() string {
	tmpl := `Build version: %s
Build date: %s
Build commit: %s
`

	return fmt.Sprintf(tmpl, buildVersion, buildDate, buildCommit)
}
