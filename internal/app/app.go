package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/medichat/medichat-client/internal/chat"
	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/fitness"
	"github.com/medichat/medichat-client/internal/logger"
	"github.com/medichat/medichat-client/internal/media"
	"github.com/medichat/medichat-client/internal/profile"
)

// Input abstracts line reading so screens can be driven by tests
type Input interface {
	Prompt(prompt string) (string, error)
	Password(prompt string) (string, error)
	Close() error
}

// LinerInput reads from the terminal with history and editing
type LinerInput struct {
	state *liner.State
}

func NewLinerInput() *LinerInput {
	s := liner.NewLiner()
	s.SetCtrlCAborts(true)
	return &LinerInput{state: s}
}

func (l *LinerInput) Prompt(prompt string) (string, error) {
	return l.state.Prompt(prompt)
}

func (l *LinerInput) Password(prompt string) (string, error) {
	return l.state.PasswordPrompt(prompt)
}

func (l *LinerInput) Close() error {
	return l.state.Close()
}

// Dependencies holds everything the screens act on
type Dependencies struct {
	Sessions     domain.SessionStore
	Gateway      domain.Gateway
	Conversation *chat.Conversation
	Recorder     *media.Recorder
	Tracker      *fitness.Tracker
	Profiles     *profile.Service
}

// App is the route-driven terminal client. It owns no domain state of its
// own: screens read and mutate the injected stores and services.
type App struct {
	deps   Dependencies
	input  Input
	out    io.Writer
	router *Router
	errors *apperrors.Handler
}

func New(deps Dependencies, input Input, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{
		deps:   deps,
		input:  input,
		out:    out,
		router: NewRouter(),
		errors: apperrors.NewHandler(logger.GetLogger()),
	}
}

// Run drives the navigation loop from the home screen until quit
func (a *App) Run(ctx context.Context) error {
	defer a.input.Close()

	route := RouteHome
	for route != RouteQuit {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		screen := a.router.Resolve(route)

		// Auth gating: protected screens bounce to the matching login
		if screen.RequiresAdmin && !a.deps.Sessions.IsAdmin() {
			a.printf("Admin access required.\n")
			route = RouteAdminLogin
			continue
		}
		if screen.RequiresAuth && !a.deps.Sessions.IsLoggedIn() {
			a.printf("Please log in first.\n")
			route = RouteLogin
			continue
		}

		next, err := screen.Run(ctx, a)
		if err != nil {
			a.errors.Handle(ctx, err)
			a.printf("! %s\n", apperrors.UserMessage(err))
		}
		if next == "" {
			next = RouteHome
		}
		route = next
	}

	a.printf("Goodbye.\n")
	return nil
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt reads one line, mapping liner's abort to a quit request
func (a *App) prompt(p string) (string, bool) {
	line, err := a.input.Prompt(p)
	if err != nil {
		return "", false
	}
	return line, true
}

// logout clears the session after a best-effort server call
func (a *App) logout(ctx context.Context) string {
	if a.deps.Sessions.IsLoggedIn() {
		if err := a.deps.Gateway.Logout(ctx); err != nil {
			logger.Warn("Logout cleanup failed", "error", err)
		}
	}
	if err := a.deps.Sessions.Logout(); err != nil {
		a.printf("! %s\n", apperrors.UserMessage(err))
	}
	a.deps.Conversation.Clear()
	a.printf("Logged out.\n")
	return RouteLogin
}
