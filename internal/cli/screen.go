package cli

import "github.com/dmitrijs2005/hotelres/internal/services"

// Screen identifies which set of commands the REPL offers.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenAdminDashboard
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenHome:
		return "home"
	case ScreenAdminDashboard:
		return "admin"
	default:
		return "unknown"
	}
}

// RouteAfterLogin picks the post-login screen from the outcome's role flag.
// It is the only place the role decides navigation.
func RouteAfterLogin(outcome *services.LoginOutcome) Screen {
	if outcome.IsAdmin {
		return ScreenAdminDashboard
	}
	return ScreenHome
}
