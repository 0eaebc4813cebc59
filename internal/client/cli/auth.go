package cli

import (
	"context"
	"os"

	"github.com/avolkovs/wpcloud/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, password and an optional display name and
// creates a new account. On success the user is sent back to the login flow;
// no session is established.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	displayName, err := getSimpleText(a.reader, "Display name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, email, string(password), displayName); err != nil {
		return err
	}

	printlnFn("Account created. You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session is
// persisted by the auth service and the catalog is loaded right away so the
// user lands on their file list.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	owner := sess.Identity.OwnerID()
	if owner == "" {
		printlnFn("User not found in session. Please login again.")
		return a.auth.Logout(ctx)
	}

	printlnFn("Logged in as", owner)
	return a.Refresh(ctx)
}

// Logout clears the persisted session and resets the view: catalog,
// selection, tags and the preview handle all go.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.files = nil
	a.setSelection("", nil)
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the ownerId scoping the current session's files.
func (a *App) Whoami(ctx context.Context) error {
	owner := a.store.OwnerID()
	if owner == "" {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn("Logged in as:", owner)
	return nil
}
