// Package cli defines the respite command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/respite/internal/config"
	"github.com/alexanderramin/respite/internal/service"
)

// App holds the dependencies shared by all CLI commands.
type App struct {
	Svc *service.Wellness
	Cfg *config.Config
	Log *slog.Logger
}

// NewRootCmd creates the top-level "respite" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "respite",
		Short:         "Workload-aware wellness backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newAnalyzeCmd(app),
		newBreaksCmd(app),
		newCheckinCmd(app),
	)

	return root
}
