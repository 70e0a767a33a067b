package service

import (
	"fmt"
	"net/http"

	"github.com/mmynk/scribe/internal/auth"
)

// ActionHandler serves the links embedded in verification and reset emails.
//
//	GET /auth/action?mode=verifyEmail&oobCode=...   marks the email verified
//	GET /auth/action?mode=resetPassword&oobCode=... shows the reset code
func (s *AuthService) ActionHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		code := r.URL.Query().Get("oobCode")
		switch r.URL.Query().Get("mode") {
		case "verifyEmail":
			user, err := s.verifyEmail(r.Context(), code)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintln(w, "This verification link is invalid or has expired.")
				s.logger.Warn("Verification link rejected", "error", err)
				return
			}
			fmt.Fprintf(w, "Your email %s has been verified. You can now log in.\n", user.Email)
		case "resetPassword":
			if _, err := s.jwtManager.ValidateAction(code, auth.PurposeResetPassword); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintln(w, "This password reset link is invalid or has expired.")
				return
			}
			fmt.Fprintf(w, "Choose a new password with:\n\n  scribe reset-confirm %s\n", code)
		default:
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "Unknown action.")
		}
	})
}
