package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/session"
)

// requireRoles runs the client-side route guard before a command. The server
// re-checks authoritatively; this only gives a friendlier local answer.
func requireRoles(app *App, allowed ...models.Role) error {
	switch app.Guard.Decide(allowed...) {
	case session.GrantAccess:
		return nil
	case session.RedirectToLogin:
		return fmt.Errorf("not logged in, run: examctl login")
	case session.RedirectToForbidden:
		return fmt.Errorf("your role does not permit this command")
	default:
		return fmt.Errorf("session is still loading")
	}
}

func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List platform users (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoles(app, models.RoleAdmin); err != nil {
				return err
			}
			users, err := app.API.Users(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range users {
				app.printf("%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			}
			return nil
		},
	}
}

func newCoursesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoles(app, models.AllRoles()...); err != nil {
				return err
			}
			courses, err := app.API.Courses(cmd.Context())
			if err != nil {
				return err
			}
			for _, course := range courses {
				app.printf("%d\t%s\n", course.ID, course.Name)
			}
			return nil
		},
	}
}
