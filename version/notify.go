package version

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jellytv/jellytv/color"
	"github.com/jellytv/jellytv/constant"
	"github.com/jellytv/jellytv/icon"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/style"
	"github.com/jellytv/jellytv/util"
	"github.com/spf13/viper"
)

// Notify prints a notice on w when a newer release than constant.Version exists.
func Notify(w io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(you're on %s)", constant.Version)),
		style.Faint("https://github.com/jellytv/jellytv/releases/tag/v"+latest),
	)
}
