package session

// Reachability is one of Pending, Unauthenticated or Authenticated.
type Reachability interface {
	reachability()
}

// Pending means no auth-state notification has arrived yet.
type Pending struct{}

// Unauthenticated means nobody is signed in, or the signed-in user has not
// verified their email.
type Unauthenticated struct{}

// Authenticated carries the verified session.
type Authenticated struct {
	Session Session
}

func (Pending) reachability()         {}
func (Unauthenticated) reachability() {}
func (Authenticated) reachability()   {}

// Screen is a top-level client screen.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegistration
	ScreenResetPassword
	ScreenDashboard
	ScreenHistory
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegistration:
		return "registration"
	case ScreenResetPassword:
		return "reset-password"
	case ScreenDashboard:
		return "dashboard"
	case ScreenHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Screens returns the screens reachable in r.
func Screens(r Reachability) []Screen {
	switch r.(type) {
	case Authenticated:
		return []Screen{ScreenDashboard, ScreenHistory}
	case Unauthenticated:
		return []Screen{ScreenLogin, ScreenRegistration, ScreenResetPassword}
	default:
		return nil
	}
}

// Reachable reports whether screen is in Screens(r).
func Reachable(r Reachability, screen Screen) bool {
	for _, s := range Screens(r) {
		if s == screen {
			return true
		}
	}
	return false
}
