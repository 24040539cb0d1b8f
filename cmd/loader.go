package cmd

import (
	"os"
	"time"

	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/network"
	"github.com/jellytv/jellytv/session"
	"github.com/jellytv/jellytv/snackbar"
	"github.com/jellytv/jellytv/tvshows"
	"github.com/spf13/viper"
)

func configureNetwork() {
	network.Configure(time.Duration(viper.GetInt(key.APITimeout)) * time.Second)
}

// newClient returns an API client authenticated as s.
func newClient(s *session.Session) (*jellyfin.Client, error) {
	configureNetwork()

	return jellyfin.New(
		s.Server,
		jellyfin.WithToken(s.Token()),
		jellyfin.WithDevice(viper.GetString(key.APIDeviceName), s.DeviceID),
	)
}

// newLoader resolves the session and wires a loader reporting to notifier. Failures are fatal.
func newLoader(notifier snackbar.Notifier) (*tvshows.Loader, *jellyfin.Client) {
	s, err := session.Resolve()
	handleErr(err)

	client, err := newClient(s)
	handleErr(err)

	return tvshows.NewLoader(client, s, notifier, nil), client
}

// printNotifications prints the queued notifications on stderr and reports whether any is an error.
func printNotifications(queue *snackbar.Queue) (failed bool) {
	printer := snackbar.NewPrinter(os.Stderr)
	for _, m := range queue.Drain() {
		failed = failed || m.Color == snackbar.ColorError
		printer.Push(m)
	}
	return
}

// flushNotifications prints the queued notifications and exits with status 1 if any is an error.
func flushNotifications(queue *snackbar.Queue) {
	if printNotifications(queue) {
		os.Exit(1)
	}
}
