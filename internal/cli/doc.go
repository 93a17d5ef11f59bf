// Package cli provides the interactive hotelres front desk console.
//
// It wires configuration, the credential database, the auth service and the
// session, then runs a REPL whose commands depend on the current screen:
//
//	login screen:     signup, login, help, exit
//	home screen:      whoami, logout, help, exit
//	admin dashboard:  logout, help, exit
//
// A successful login moves to the screen chosen by RouteAfterLogin. Only
// ordinary users are committed to the session; the admin dashboard does not
// populate it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
