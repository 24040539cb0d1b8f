package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
	"github.com/jellytv/jellytv/color"
	"github.com/jellytv/jellytv/icon"
	"github.com/jellytv/jellytv/jellyfin"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/log"
	"github.com/jellytv/jellytv/session"
	"github.com/jellytv/jellytv/style"
	"github.com/jellytv/jellytv/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("user", "u", "", "User name to log in as")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to a Jellyfin server",
	Long: `Log in to a Jellyfin server with a user name and password.
The access token is kept in the system keyring, the server and user in the session file.`,
	Run: func(cmd *cobra.Command, args []string) {
		server := viper.GetString(key.ServerURL)
		if server == "" {
			input := survey.Input{
				Message: "Server URL:",
				Default: "http://localhost:8096",
			}
			handleErr(survey.AskOne(&input, &server, survey.WithValidator(survey.Required)))
		}

		user := lo.Must(cmd.Flags().GetString("user"))
		if user == "" {
			input := survey.Input{Message: "User:"}
			handleErr(survey.AskOne(&input, &user, survey.WithValidator(survey.Required)))
		}

		var password string
		handleErr(survey.AskOne(&survey.Password{Message: "Password:"}, &password))

		configureNetwork()
		deviceID := uuid.NewString()
		client, err := jellyfin.New(
			strings.TrimSpace(server),
			jellyfin.WithDevice(viper.GetString(key.APIDeviceName), deviceID),
		)
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Logging in...", icon.Get(icon.Progress)))
		result, err := client.AuthenticateByName(cmd.Context(), user, password)
		erase()
		switch {
		case jellyfin.IsUnauthorized(err):
			err = errors.New("invalid user name or password")
		case jellyfin.IsNotFound(err):
			err = fmt.Errorf("no Jellyfin server found at %s", server)
		}
		handleErr(err)

		handleErr(session.Save(&session.Session{
			Server:   strings.TrimSpace(server),
			User:     result.User.Id,
			UserName: result.User.Name,
			DeviceID: deviceID,
		}, result.AccessToken))
		log.Infof("logged in to %s as %s", server, result.User.Name)

		fmt.Printf(
			"%s logged in as %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(result.User.Name),
		)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session and its access token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(session.Delete())
		fmt.Printf("%s logged out\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolP("offline", "o", false, "Print the stored session without asking the server")
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the user requests are made for",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := session.Resolve()
		handleErr(err)

		name, id := s.UserName, s.UserID()
		if !lo.Must(cmd.Flags().GetBool("offline")) {
			client, err := newClient(s)
			handleErr(err)

			user, err := client.CurrentUser(cmd.Context())
			handleErr(err)
			name, id = user.Name, user.Id
		}

		fmt.Printf("%s %s %s\n", icon.Get(icon.User), style.Bold(lo.CoalesceOrEmpty(name, id)), style.Faint(id))
		fmt.Printf("%s %s\n", style.Faint("on"), style.Fg(color.Accent)(s.Server))
	},
}
