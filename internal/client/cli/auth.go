package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/epicrobotics/academy-cli/internal/client/services"
	"github.com/epicrobotics/academy-cli/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the signup fields and creates an account. On success
// the session manager has already persisted the issued token, so the user
// is logged in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.session.Register(ctx, services.Registration{Email: email, Password: password, Name: name})
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Welcome, %s!\n", resp.User.ProfileData.Name)
	return nil
}

// Login prompts for credentials and authenticates against the backend.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.session.Login(ctx, services.Credentials{Email: email, Password: password})
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", resp.User.Email, resp.User.Role)
	return nil
}

// Logout ends the session. The local token is cleared even when the server
// call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// WhoAmI prints the current identity snapshot.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s>\n", user.ProfileData.Name, user.Email)
	fmt.Printf("Role: %s\n", user.Role)
	if user.ProfileData.Bio != "" {
		fmt.Printf("Bio: %s\n", user.ProfileData.Bio)
	}
	return nil
}

// RefreshSession re-fetches the profile from the backend so the local
// snapshot picks up server-side changes (e.g. a role upgrade).
func (a *App) RefreshSession(ctx context.Context) error {
	if err := a.session.Refresh(ctx); err != nil {
		log.Printf("Session refresh failed: %s", err.Error())
		return err
	}
	fmt.Println("Session refreshed")
	return nil
}

// SessionStatus decodes the stored token and prints its claims alongside
// the connectivity mode. The decode is informational only; the backend
// remains the authority on token validity.
func (a *App) SessionStatus(ctx context.Context) error {
	tok, err := a.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if tok == "" {
		fmt.Println("No stored token")
		return nil
	}

	info, err := session.ParseTokenInfo(tok)
	if err != nil {
		log.Printf("Stored token is not decodable: %s", err.Error())
		return err
	}

	fmt.Printf("Subject: %s\n", info.Subject)
	if !info.IssuedAt.IsZero() {
		fmt.Printf("Issued: %s\n", info.IssuedAt.Format(time.RFC3339))
	}
	if !info.ExpiresAt.IsZero() {
		fmt.Printf("Expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
		if info.Expired(time.Now()) {
			fmt.Println("Token is expired; next request will fail with 401")
		}
	}
	fmt.Printf("Mode: %s\n", a.currentMode())
	return nil
}

// EditProfile updates the free-form profile fields. Empty answers leave the
// corresponding field unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "Bio (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.auth.UpdateProfile(ctx, services.ProfileUpdate{Name: name, Bio: bio, Phone: phone}); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.session.Refresh(ctx); err != nil {
		return err
	}
	fmt.Println("Profile updated")
	return nil
}

// ChangePassword rotates the account password.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getSimpleText(a.reader, "Current password", os.Stdout)
	if err != nil {
		return err
	}
	next, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.UpdatePassword(ctx, services.PasswordUpdate{CurrentPassword: current, NewPassword: next})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(msg.Message)
	return nil
}

// ForgotPassword requests a reset email for the given address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	msg, err := a.auth.RequestPasswordReset(ctx, email)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(msg.Message)
	return nil
}

// ResetPassword completes a reset using the emailed token.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	msg, err := a.auth.ResetPassword(ctx, services.PasswordReset{Token: token, Password: password})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println(msg.Message)
	return nil
}

// DeleteAccount permanently removes the account after confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Type DELETE to permanently remove your account", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "DELETE" {
		fmt.Println("Aborted")
		return nil
	}

	if _, err := a.auth.DeleteAccount(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Account deleted")
	return nil
}
