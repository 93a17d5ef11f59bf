package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hotelres/internal/common"
	"github.com/dmitrijs2005/hotelres/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const msgLoginFailed = "login failed: invalid email or password"

// Signup prompts for the signup form fields and creates a non-admin account.
// The screen does not change; the user logs in afterwards.
//
// Both terminal buffers are wiped before returning. The strings handed to the
// service are copies and stay in memory until collected. The returned error
// is the service error; a message has already been printed for it.
func (a *App) Signup(ctx context.Context) error {
	req := services.SignupRequest{}
	var err error

	if req.FirstName, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	// Immutable copies; the wipe below does not reach them.
	req.Password, req.ConfirmPassword = string(password), string(confirm)

	if err := a.authService.Signup(ctx, req); err != nil {
		fmt.Fprintln(a.out, signupFailureMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Account created. You can log in now.")
	return nil
}

// Login prompts for credentials and, on success, switches to the screen
// returned by RouteAfterLogin. Ordinary users are stored in the session.
//
// Unknown email and wrong password print the same message. Only the terminal
// buffer is wiped; the string passed to the service is an unwiped copy.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	outcome, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			fmt.Fprintln(a.out, msgLoginFailed)
		} else {
			a.logger.Error(ctx, "login error", "error", err)
			fmt.Fprintln(a.out, "login failed: please try again later")
		}
		return err
	}

	a.screen = RouteAfterLogin(outcome)
	if a.screen == ScreenHome {
		a.session.SetUser(outcome.Identity)
		fmt.Fprintf(a.out, "Welcome, %s!\n", outcome.Identity.DisplayName())
	} else {
		fmt.Fprintln(a.out, "Welcome to the admin dashboard.")
	}
	return nil
}

// Logout clears the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	a.session.Clear()
	a.screen = ScreenLogin
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the identity stored in the session.
func (a *App) WhoAmI(ctx context.Context) error {
	id, ok := a.session.GetUser()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", id.DisplayName(), id.Email)
	return nil
}

func signupFailureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrorPasswordMismatch):
		return "signup failed: passwords do not match"
	case errors.Is(err, common.ErrorValidation):
		return "signup failed: " + err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		return "signup failed: an account with this email already exists"
	case errors.Is(err, common.ErrorPersistenceFailed):
		return "signup failed: the account could not be saved"
	default:
		return "signup failed: please try again later"
	}
}
