package cli

import (
	"github.com/spf13/cobra"
)

func newBreaksCmd(app *App) *cobra.Command {
	var (
		user       string
		autoInsert bool
	)

	cmd := &cobra.Command{
		Use:   "breaks",
		Short: "Plan today's breaks and print the proposals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				user = app.Cfg.DefaultUserID
			}
			result := app.Svc.ScheduleBreaks(cmd.Context(), user, autoInsert)
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user to plan for (defaults to the configured user)")
	cmd.Flags().BoolVar(&autoInsert, "auto-insert", false, "write the proposed breaks to the calendar")
	return cmd
}
