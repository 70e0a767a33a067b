package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/scribe/internal/account"
	"github.com/mmynk/scribe/internal/biometric"
	"github.com/mmynk/scribe/internal/history"
	"github.com/mmynk/scribe/internal/pipeline"
	"github.com/mmynk/scribe/internal/session"
	"github.com/mmynk/scribe/internal/tui"
)

func (s *Shell) login(ctx context.Context, args []string) error {
	if err := need(args, 1, "login <email>"); err != nil {
		return err
	}
	password, err := s.readLine("Password: ")
	if err != nil {
		return err
	}

	res, err := s.Account.Login(ctx, args[0], password)
	if err != nil {
		return err
	}
	s.printf("Welcome, %s.\n", session.FromUser(res.User).Name())

	if res.OfferBiometrics && s.Biometric != nil {
		answer, err := s.readLine("Enable biometric login for next time? [y/N]: ")
		if err == nil && isYes(answer) {
			if err := s.Biometric.Enroll(strings.TrimSpace(args[0]), password); err != nil {
				s.Logger.Error("Biometric enrollment failed", "error", err)
				s.printf("Could not save credentials.\n")
			} else {
				s.printf("Biometric login enabled!\n")
			}
		}
	}
	return nil
}

func (s *Shell) biometricLogin(ctx context.Context, _ []string) error {
	if s.Biometric == nil {
		return errors.New(biometric.Message(biometric.ErrUnavailable))
	}
	user, err := s.Biometric.Unlock(ctx)
	if err != nil {
		return errors.New(biometric.Message(err))
	}
	s.printf("Welcome, %s.\n", session.FromUser(user).Name())
	return nil
}

func (s *Shell) register(ctx context.Context, args []string) error {
	if err := need(args, 1, "register <email> [display name]"); err != nil {
		return err
	}
	password, err := s.readLine("Password: ")
	if err != nil {
		return err
	}
	if err := s.Account.Register(ctx, args[0], password, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	s.printf("%s\n", account.RegisterMessage)
	return nil
}

func (s *Shell) verify(ctx context.Context, args []string) error {
	if err := need(args, 1, "verify <code>"); err != nil {
		return err
	}
	if err := s.Identity.VerifyEmail(ctx, args[0]); err != nil {
		return err
	}
	s.printf("Email verified. You can log in now.\n")
	return nil
}

func (s *Shell) resend(ctx context.Context, _ []string) error {
	if err := s.Identity.SendEmailVerification(ctx); err != nil {
		return err
	}
	s.printf("Verification email sent.\n")
	return nil
}

func (s *Shell) refresh(ctx context.Context, _ []string) error {
	if err := s.Identity.Reload(ctx); err != nil {
		return err
	}
	s.printf("Session: %s.\n", describeSession(s.Gate))
	return nil
}

func (s *Shell) reset(ctx context.Context, args []string) error {
	email := ""
	if len(args) > 0 {
		email = args[0]
	}
	if err := s.Account.ResetPassword(ctx, email); err != nil {
		return err
	}
	s.printf("%s\n", account.ResetMessage)
	return nil
}

func (s *Shell) resetConfirm(ctx context.Context, args []string) error {
	if err := need(args, 1, "reset-confirm <code>"); err != nil {
		return err
	}
	password, err := s.readLine("New password: ")
	if err != nil {
		return err
	}
	if err := s.Identity.ConfirmPasswordReset(ctx, args[0], password); err != nil {
		return err
	}
	s.printf("Password updated. You can log in now.\n")
	return nil
}

func (s *Shell) record(ctx context.Context, _ []string) error {
	if err := s.Pipeline.StartRecording(ctx); err != nil {
		return err
	}
	s.printf("Recording... type \"stop\" to finish.\n")
	return nil
}

func (s *Shell) stop(ctx context.Context, _ []string) error {
	if s.Pipeline.Snapshot().State != pipeline.Recording {
		s.printf("Not recording.\n")
		return nil
	}
	s.printf("Transcribing...\n")
	if err := s.Pipeline.StopRecording(ctx); err != nil {
		return err
	}
	s.printResult()
	return nil
}

func (s *Shell) upload(ctx context.Context, args []string) error {
	if len(args) > 0 {
		s.mu.Lock()
		s.pendingPath = strings.Join(args, " ")
		s.mu.Unlock()
	}
	err := s.Pipeline.Upload(ctx)
	s.mu.Lock()
	s.pendingPath = ""
	s.mu.Unlock()
	if err != nil {
		return err
	}

	st := s.Pipeline.Snapshot()
	if st.State == pipeline.Idle {
		s.printf("%s\n", st.Message)
		return nil
	}
	s.printResult()
	return nil
}

func (s *Shell) printResult() {
	st := s.Pipeline.Snapshot()
	s.printf("\n%s\n\n", st.Transcript)
	if st.Model != "" {
		s.printf("model: %s\n", st.Model)
	}
}

func (s *Shell) status(_ context.Context, _ []string) error {
	st := s.Pipeline.Snapshot()
	s.printf("state: %s\n", st.State)
	if st.Message != "" {
		s.printf("message: %s\n", st.Message)
	}
	if p := st.Persist.String(); p != "" {
		s.printf("history: %s\n", p)
	}
	return nil
}

func (s *Shell) history(ctx context.Context, args []string) error {
	limit := 20
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return errors.New("usage: history [n]")
		}
		limit = n
	}
	entries, err := s.Remote.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.printf("No transcriptions yet.\n")
		return nil
	}
	now := time.Now()
	for _, e := range entries {
		s.printf("  %-12s %s\n", history.Since(e.CreatedAt, now), e.Text)
	}
	return nil
}

func (s *Shell) watch(ctx context.Context, _ []string) error {
	sess, ok := s.Gate.Current()
	if !ok {
		return pipeline.ErrUnauthenticated
	}
	s.mu.Lock()
	s.inDashboard = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inDashboard = false
		s.mu.Unlock()
	}()
	return tui.Run(ctx, s.Pipeline, s.Feed, s.Dashboard, sess.Name())
}

func (s *Shell) logout(ctx context.Context, _ []string) error {
	if s.Pipeline.Snapshot().State == pipeline.Recording {
		if err := s.Pipeline.StopRecording(ctx); err != nil {
			s.Logger.Warn("Finishing recording before logout failed", "error", err)
		}
	}
	if err := s.Account.Logout(ctx); err != nil {
		return err
	}
	s.printf("Signed out.\n")
	return nil
}

func (s *Shell) whoami(_ context.Context, _ []string) error {
	s.printf("%s\n", describeSession(s.Gate))
	return nil
}

func describeSession(g *session.Gate) string {
	sess, ok := g.Session()
	switch {
	case !g.Ready():
		return "checking"
	case !ok:
		return "signed out"
	case !sess.EmailVerified:
		return sess.Email + " (email not verified)"
	default:
		return sess.Email + " (verified)"
	}
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
