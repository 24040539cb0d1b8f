package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jellytv/jellytv/icon"
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/open"
	"github.com/jellytv/jellytv/snackbar"
	"github.com/jellytv/jellytv/tvshows"
	"github.com/jellytv/jellytv/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seasonsCmd)

	seasonsCmd.Flags().BoolP("json", "j", false, "Print the loaded state as JSON")
	seasonsCmd.Flags().StringP("grep", "g", "", "Only print episodes whose name fuzzily matches")
	seasonsCmd.Flags().BoolP("web", "w", false, "Open the series in the web client instead")
	seasonsCmd.MarkFlagsMutuallyExclusive("json", "grep", "web")
}

var seasonsCmd = &cobra.Command{
	Use:     "seasons <series id>",
	Short:   "Load the seasons of a series and the episodes of each season",
	Example: "  jellytv seasons 4a9c0e1d2b3f4a5c8e7d6b5a4c3d2e1f --grep pilot",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			query  = lo.Must(cmd.Flags().GetString("grep"))
			web    = lo.Must(cmd.Flags().GetBool("web"))
			queue  = snackbar.NewQueue()
			series = jellyfin.BaseItemDto{Id: args[0]}
		)

		loader, client := newLoader(queue)

		if web {
			handleErr(open.Start(client.WebURL(series.Id)))
			return
		}

		erase := func() {}
		if !asJson {
			erase = util.PrintErasable(fmt.Sprintf("%s Loading seasons...", icon.Get(icon.Progress)))
		}
		loader.Dispatch(cmd.Context(), tvshows.LoadSeasons{Item: series})
		loader.Wait()
		erase()

		state := loader.State()
		switch {
		case asJson:
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(state.Snapshot()))
		case query != "":
			printEpisodes(cmd.OutOrStdout(), state.FindEpisodes(query))
		default:
			printSeasons(cmd.OutOrStdout(), state)
		}

		flushNotifications(queue)
	},
}
