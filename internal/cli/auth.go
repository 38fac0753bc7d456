package cli

import (
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the platform and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := app.promptLine("Email")
			if err != nil {
				return err
			}
			password, err := promptPassword(app.out, "Password")
			if err != nil {
				return err
			}

			res, err := app.API.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := app.Manager.Login(res.Token); err != nil {
				return err
			}

			app.printf("Logged in as %s (%s)\n", res.User.Name, res.User.Role)
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Manager.Logout(); err != nil {
				return err
			}
			app.printf("Logged out\n")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := app.Manager.Session()
			if sess == nil {
				app.printf("Not logged in\n")
				return nil
			}
			app.printf("%s (%s), session expires %s\n",
				sess.Name, sess.Role, sess.ExpiresAt.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}
}
