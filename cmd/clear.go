package cmd

import (
	"fmt"
	"os"

	"github.com/jellytv/jellytv/icon"
	"github.com/jellytv/jellytv/session"
	"github.com/jellytv/jellytv/util"
	"github.com/jellytv/jellytv/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func deletePath(path func() string) func() error {
	return func() error {
		if err := util.Delete(path()); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), deletePath(where.Cache)},
	{"logs directory", "logs", mo.Some("l"), deletePath(where.Logs)},
	{"session", "session", mo.Some("s"), session.Delete},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached files, logs or the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
