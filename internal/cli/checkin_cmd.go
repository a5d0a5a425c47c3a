package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/respite/internal/domain"
)

func newCheckinCmd(app *App) *cobra.Command {
	var (
		user   string
		mood   int
		energy int
		stress int
		focus  int
	)

	cmd := &cobra.Command{
		Use:   "checkin <morning|afternoon|evening>",
		Short: "Record a check-in from the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := domain.CheckinPeriod(args[0])
			if !domain.IsValidPeriod(period) {
				return fmt.Errorf("unknown period %q", args[0])
			}
			if user == "" {
				user = app.Cfg.DefaultUserID
			}

			payload := map[string]any{
				"mood":   mood,
				"energy": energy,
				"stress": stress,
			}
			if cmd.Flags().Changed("focus") {
				payload["focus"] = focus
			}

			result, err := app.Svc.RecordCheckin(cmd.Context(), user, period, payload)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user to record for (defaults to the configured user)")
	cmd.Flags().IntVar(&mood, "mood", 5, "mood 1-10")
	cmd.Flags().IntVar(&energy, "energy", 5, "energy 1-10")
	cmd.Flags().IntVar(&stress, "stress", 5, "stress 1-10")
	cmd.Flags().IntVar(&focus, "focus", 5, "focus 1-10")
	return cmd
}
