package cmd

import (
	"encoding/json"

	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/snackbar"
	"github.com/jellytv/jellytv/tvshows"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.Flags().BoolP("json", "j", false, "Print the loaded state as JSON")
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <season id>",
	Short: "Load the episodes of a single season",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		queue := snackbar.NewQueue()
		loader, _ := newLoader(queue)

		loader.Dispatch(cmd.Context(), tvshows.LoadEpisodes{Season: jellyfin.BaseItemDto{Id: args[0]}})

		state := loader.State()
		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(state.Snapshot()))
		} else {
			printEpisodes(cmd.OutOrStdout(), lo.Flatten(state.SeasonEpisodes()))
		}

		flushNotifications(queue)
	},
}
