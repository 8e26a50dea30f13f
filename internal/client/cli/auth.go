package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account on the server.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.client.Register(ctx, userName, string(password)); err != nil {
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts for credentials, authenticates against the server and, on
// success, starts the synchronized suite and activity contexts.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	userID, err := a.client.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	a.userID = userID

	if err := a.startContexts(ctx); err != nil {
		log.Printf("initial sync failed, cached data may be stale: %s", err.Error())
	}
	log.Printf("Login successful")
	return nil
}

// Logout tears down the synchronized contexts and drops the session tokens.
// Durable selection slots stay in place for the next login.
func (a *App) Logout(ctx context.Context) error {
	a.stopContexts()
	a.client.Logout()
	a.userName = ""
	a.userID = ""
	return nil
}
