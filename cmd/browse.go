package cmd

import (
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/snackbar"
	"github.com/jellytv/jellytv/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse <series id>",
	Short: "Browse the seasons and episodes of a series interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		notifier := tui.NewNotifier()
		errs := snackbar.NewQueue()
		loader, client := newLoader(snackbar.Tee(notifier, onlyErrors(errs)))

		handleErr(tui.Run(cmd.Context(), &tui.Options{
			Series:   jellyfin.BaseItemDto{Id: args[0]},
			Loader:   loader,
			Notifier: notifier,
			WebURL:   client.WebURL,
		}))

		// Toasts vanish with the alternate screen; keep the errors visible.
		printNotifications(errs)
	},
}

// onlyErrors forwards error messages to n and ignores the rest.
func onlyErrors(n snackbar.Notifier) snackbar.Notifier {
	return snackbar.NotifierFunc(func(m snackbar.Message) {
		if m.Color == snackbar.ColorError {
			n.Push(m)
		}
	})
}
