package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Run executes the login command: exchanges credentials for a session and
// stores it for later commands.
func (c *LoginCmd) Run(deps *Dependencies) error {
	fmt.Fprint(deps.Stdout, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	password = strings.TrimRight(password, "\r\n")

	session, err := deps.Auth.PasswordGrant(deps.Ctx, c.Email, password)
	if err != nil {
		return err
	}

	if err := deps.Sessions.Save(session); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Logged in as %s\n", c.Email)
	return nil
}

// Run executes the logout command.
func (c *LogoutCmd) Run(deps *Dependencies) error {
	if err := deps.Sessions.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, "Logged out")
	return nil
}
