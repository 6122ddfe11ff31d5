package cli

import (
	"context"
	"fmt"
)

// Register creates a new account and establishes its session straight away,
// the same as logging in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	account, err := a.directory.Register(ctx, email, password, name)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.sessions.Establish(ctx, account); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.log.Info(ctx, "account registered", "id", account.ID)
	fmt.Fprintf(a.out, "Welcome, %s!\n", account.Name)
	return nil
}

// Login authenticates and establishes the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	account, err := a.directory.Authenticate(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.sessions.Establish(ctx, account); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", account.Name)
	return nil
}

// Logout ends the session after confirmation.
func (a *App) Logout(ctx context.Context) error {
	if _, ok := a.currentAccount(ctx); !ok {
		return nil
	}

	if !confirm(a.reader, "Are you sure you want to logout?", a.out) {
		return nil
	}

	if err := a.sessions.End(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
