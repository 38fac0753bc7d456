// Package cli implements the examctl commands. examctl is the terminal
// counterpart of the web client: it logs in against the platform API, keeps
// the session token between runs and gates role-restricted commands through
// the same guard semantics the web client uses for protected routes.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/edupract/exam_platform/internal/client"
	"github.com/edupract/exam_platform/internal/session"
)

type App struct {
	API     *client.Client
	Manager *session.Manager
	Guard   *session.Guard

	in  *bufio.Reader
	out io.Writer
}

func NewApp(cfg client.Config, store session.Store, in io.Reader, out io.Writer) *App {
	app := &App{
		in:  bufio.NewReader(in),
		out: out,
	}
	app.Init(cfg, store)
	return app
}

// Init wires the session manager, guard and API client. Split from NewApp
// so the root command can defer it until flags and config are resolved.
func (a *App) Init(cfg client.Config, store session.Store) {
	a.Manager = session.NewManager(store)
	a.Guard = session.NewGuard(a.Manager)
	a.API = client.New(cfg.ServerURL, a.Manager.Token)
	if a.in == nil {
		a.in = bufio.NewReader(os.Stdin)
	}
	if a.out == nil {
		a.out = os.Stdout
	}
}

// Restore loads the persisted session before any command runs.
func (a *App) Restore() error {
	return a.Manager.Restore()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) promptLine(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword is an indirection so tests can swap the terminal read.
var promptPassword = func(out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
