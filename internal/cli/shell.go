// Package cli is the line-oriented client shell. Each command belongs to a
// screen, and only commands of screens reachable in the current session
// state run.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmynk/scribe/internal/account"
	"github.com/mmynk/scribe/internal/biometric"
	"github.com/mmynk/scribe/internal/history"
	"github.com/mmynk/scribe/internal/identity"
	"github.com/mmynk/scribe/internal/pipeline"
	"github.com/mmynk/scribe/internal/session"
	"github.com/mmynk/scribe/internal/tui"
)

// Identity is the identity client surface the shell needs beyond the
// account flows.
type Identity interface {
	VerifyEmail(ctx context.Context, code string) error
	ConfirmPasswordReset(ctx context.Context, code, newPassword string) error
	SendEmailVerification(ctx context.Context) error
	Reload(ctx context.Context) error
}

// Deps wires the shell.
type Deps struct {
	In     *bufio.Reader
	Out    io.Writer
	Logger *slog.Logger

	Identity  Identity
	Gate      *session.Gate
	Account   *account.Service
	Biometric *biometric.Flow
	Pipeline  *pipeline.Pipeline
	Feed      *history.Feed
	Remote    *history.Remote
	// Dashboard answers the upload picker while the TUI owns the terminal.
	Dashboard *tui.LinePrompt
}

// Shell reads commands until EOF or quit.
type Shell struct {
	Deps

	mu          sync.Mutex
	pendingPath string
	inDashboard bool
}

func New(deps Deps) *Shell {
	return &Shell{Deps: deps}
}

type command struct {
	name   string
	args   string
	help   string
	screen session.Screen
	// any marks commands available in every state.
	any    bool
	run    func(s *Shell, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "login", args: "<email>", help: "sign in with email and password", screen: session.ScreenLogin, run: (*Shell).login},
	{name: "biometric", help: "sign in with saved credentials", screen: session.ScreenLogin, run: (*Shell).biometricLogin},
	{name: "register", args: "<email> [display name]", help: "create an account", screen: session.ScreenRegistration, run: (*Shell).register},
	{name: "verify", args: "<code>", help: "apply an email verification code", any: true, run: (*Shell).verify},
	{name: "resend", help: "send the verification email again", any: true, run: (*Shell).resend},
	{name: "refresh", help: "reload the account after verifying", any: true, run: (*Shell).refresh},
	{name: "reset", args: "<email>", help: "email a password reset link", screen: session.ScreenResetPassword, run: (*Shell).reset},
	{name: "reset-confirm", args: "<code>", help: "set a new password from a reset code", screen: session.ScreenResetPassword, run: (*Shell).resetConfirm},
	{name: "record", help: "start recording", screen: session.ScreenDashboard, run: (*Shell).record},
	{name: "stop", help: "stop recording and transcribe", screen: session.ScreenDashboard, run: (*Shell).stop},
	{name: "upload", args: "[path]", help: "transcribe an audio file", screen: session.ScreenDashboard, run: (*Shell).upload},
	{name: "status", help: "show the pipeline state", screen: session.ScreenDashboard, run: (*Shell).status},
	{name: "history", args: "[n]", help: "list recent transcriptions", screen: session.ScreenHistory, run: (*Shell).history},
	{name: "watch", help: "open the live dashboard", screen: session.ScreenHistory, run: (*Shell).watch},
	{name: "logout", help: "sign out", screen: session.ScreenDashboard, run: (*Shell).logout},
	{name: "whoami", help: "show the session", any: true, run: (*Shell).whoami},
}

// Run executes commands until EOF, "quit" or ctx ends.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("Scribe. Type \"help\" for commands.\n")
	for {
		if ctx.Err() != nil {
			return nil
		}
		s.printf("%s> ", s.promptLabel())
		line, err := s.In.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if quit := s.Exec(ctx, line); quit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Exec runs one command line. It reports whether the shell should exit.
func (s *Shell) Exec(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "quit", "exit":
		return true
	case "help", "?":
		s.help()
		return false
	}

	for _, c := range commands {
		if c.name != name {
			continue
		}
		r := s.Gate.Reachability()
		if !c.any && !session.Reachable(r, c.screen) {
			s.printf("%s is not available %s.\n", name, describe(r))
			return false
		}
		if err := c.run(s, ctx, args); err != nil {
			s.printf("%s\n", err.Error())
		}
		return false
	}
	s.printf("Unknown command %q. Type \"help\".\n", name)
	return false
}

func (s *Shell) help() {
	r := s.Gate.Reachability()
	for _, c := range commands {
		if !c.any && !session.Reachable(r, c.screen) {
			continue
		}
		usage := c.name
		if c.args != "" {
			usage += " " + c.args
		}
		s.printf("  %-28s %s\n", usage, c.help)
	}
	s.printf("  %-28s %s\n", "quit", "exit the shell")
}

func (s *Shell) promptLabel() string {
	switch r := s.Gate.Reachability().(type) {
	case session.Authenticated:
		return r.Session.Name()
	case session.Pending:
		return "..."
	default:
		return "scribe"
	}
}

func describe(r session.Reachability) string {
	switch r.(type) {
	case session.Authenticated:
		return "while signed in"
	case session.Pending:
		return "until the session is checked"
	default:
		return "until you sign in with a verified email"
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// readLine prompts for one line of input.
func (s *Shell) readLine(label string) (string, error) {
	s.printf("%s", label)
	line, err := s.In.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PickPath is the path picker's prompt. An argument given to "upload"
// answers it directly; the dashboard answers it while open.
func (s *Shell) PickPath(ctx context.Context, label string) (string, error) {
	s.mu.Lock()
	path := s.pendingPath
	s.pendingPath = ""
	dashboard := s.inDashboard
	s.mu.Unlock()

	switch {
	case path != "":
		return path, nil
	case dashboard && s.Dashboard != nil:
		return s.Dashboard.Prompt(ctx, label)
	default:
		return s.readLine(label)
	}
}

func need(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

// ensure identity.Client satisfies Identity.
var _ Identity = (*identity.Client)(nil)
