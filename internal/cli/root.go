package cli

import (
	"github.com/spf13/cobra"

	"github.com/edupract/exam_platform/internal/client"
	"github.com/edupract/exam_platform/internal/session"
)

// NewRootCmd assembles the examctl command tree. The App is initialized in
// PersistentPreRunE, after flags and config have been resolved.
func NewRootCmd(app *App) *cobra.Command {
	var (
		configPath string
		serverURL  string
	)

	root := &cobra.Command{
		Use:           "examctl",
		Short:         "Command-line client for the exam practice platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				if p, err := client.DefaultConfigPath(); err == nil {
					path = p
				}
			}
			cfg, err := client.LoadConfig(path)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			if cfg.TokenFile == "" {
				p, err := session.DefaultStorePath()
				if err != nil {
					return err
				}
				cfg.TokenFile = p
			}

			app.Init(cfg, session.NewFileStore(cfg.TokenFile))
			return app.Restore()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default: user config dir)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "platform API base URL (overrides config)")

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newUsersCmd(app),
		newCoursesCmd(app),
	)
	return root
}
